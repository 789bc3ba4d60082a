package controller

import (
	"acadplan_backend/internal/model"
	"acadplan_backend/internal/service"
	"acadplan_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary File a progress report
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /progress [post]
func (c *ProgressController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Subject         string  `json:"subject" binding:"required"`
		Cycle           string  `json:"cycle"`
		PercentComplete float64 `json:"percentComplete" binding:"min=0,max=100"`
		Notes           string  `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress := &model.Progress{
		Teacher:         claims.Name,
		Subject:         req.Subject,
		Cycle:           req.Cycle,
		PercentComplete: req.PercentComplete,
		Notes:           req.Notes,
	}
	if err := c.ProgressService.Create(progress); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, progress)
}

// @Summary List progress reports
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param cycle query string false "school cycle"
// @Param teacher query string false "teacher name"
// @Success 200 {object} util.Response
// @Router /progress [get]
func (c *ProgressController) List(ctx *gin.Context) {
	reports, err := c.ProgressService.List(ctx.Query("cycle"), ctx.Query("teacher"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, reports)
}

// @Summary Update a progress report
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "progress report id"
// @Success 200 {object} util.Response
// @Router /progress/{id} [put]
func (c *ProgressController) Update(ctx *gin.Context) {
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
		PercentComplete *float64         `json:"percentComplete" binding:"omitempty,min=0,max=100"`
		Compliance      model.Compliance `json:"compliance" binding:"omitempty,oneof=compliant partial noncompliant"`
		Notes           string           `json:"notes"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.Update(id, claims, req.PercentComplete, req.Compliance, req.Notes)
	if err != nil {
		switch err {
		case util.ErrProgressNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrPermissionDenied:
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}

// @Summary Delete a progress report
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "progress report id"
// @Success 200 {object} util.Response
// @Router /progress/{id} [delete]
func (c *ProgressController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	if err := c.ProgressService.Delete(id, claims); err != nil {
		switch err {
		case util.ErrProgressNotFound:
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
