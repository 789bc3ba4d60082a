package controller

import (
	"strconv"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/service"
	"acadplan_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	PlanService *service.PlanService
}

func NewPlanController(planService *service.PlanService) *PlanController {
	return &PlanController{PlanService: planService}
}

// @Summary Create a teaching plan
// @Tags plans
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /plans [post]
func (c *PlanController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Subject    string `json:"subject" binding:"required"`
		Cycle      string `json:"cycle"`
		Objectives string `json:"objectives"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan := &model.Plan{
		Teacher:    claims.Name,
		Subject:    req.Subject,
		Cycle:      req.Cycle,
		Objectives: req.Objectives,
	}
	if err := c.PlanService.Create(plan); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, plan)
}

// @Summary List teaching plans
// @Tags plans
// @Produce json
// @Security ApiKeyAuth
// @Param cycle query string false "school cycle, e.g. 2025-2026"
// @Param teacher query string false "teacher name"
// @Success 200 {object} util.Response
// @Router /plans [get]
func (c *PlanController) List(ctx *gin.Context) {
	plans, err := c.PlanService.List(ctx.Query("cycle"), ctx.Query("teacher"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, plans)
}

// @Summary List the current cycle's plans
// @Tags plans
// @Produce json
// @Security ApiKeyAuth
// @Param teacher query string false "teacher name"
// @Success 200 {object} util.Response
// @Router /plans/current [get]
func (c *PlanController) ListCurrent(ctx *gin.Context) {
	plans, err := c.PlanService.ListCurrentCycle(ctx.Query("teacher"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, plans)
}

// @Summary Plan history for a teacher across cycles
// @Tags plans
// @Produce json
// @Security ApiKeyAuth
// @Param teacher query string true "teacher name"
// @Success 200 {object} util.Response
// @Router /plans/history [get]
func (c *PlanController) History(ctx *gin.Context) {
	teacher := ctx.Query("teacher")
	if teacher == "" {
		util.BadRequest(ctx, "teacher parameter required")
		return
	}
	plans, err := c.PlanService.History(teacher)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, plans)
}

// @Summary Get a plan by id
// @Tags plans
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "plan id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /plans/{id} [get]
func (c *PlanController) Get(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}
	plan, err := c.PlanService.GetByID(id)
	if err != nil {
		util.NotFound(ctx, util.ErrPlanNotFound.Error())
		return
	}
	util.Success(ctx, plan)
}

// @Summary Update a plan
// @Tags plans
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "plan id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /plans/{id} [put]
func (c *PlanController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	var req struct {
		Subject    string           `json:"subject"`
		Objectives string           `json:"objectives"`
		Status     model.PlanStatus `json:"status" binding:"omitempty,oneof=draft submitted"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.PlanService.Update(id, claims, req.Subject, req.Objectives, req.Status)
	if err != nil {
		switch err {
		case util.ErrPlanNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrPermissionDenied:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, plan)
}

// @Summary Review a submitted plan (approve or reject)
// @Tags plans
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "plan id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /plans/{id}/review [put]
func (c *PlanController) Review(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	var req struct {
		Status   model.PlanStatus `json:"status" binding:"required,oneof=approved rejected"`
		Feedback string           `json:"feedback"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.PlanService.Review(id, req.Status, req.Feedback, claims.Name)
	if err != nil {
		if err == util.ErrPlanNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, plan)
}

// @Summary Delete a plan
// @Tags plans
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "plan id"
// @Success 200 {object} util.Response
// @Router /plans/{id} [delete]
func (c *PlanController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	if err := c.PlanService.Delete(id, claims); err != nil {
		switch err {
		case util.ErrPlanNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrPermissionDenied:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

func parseID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return 0, err
	}
	return uint(id), nil
}
