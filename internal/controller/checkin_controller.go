package controller

import (
	"strconv"

	"acadplan_backend/internal/service"
	"acadplan_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CheckinController struct {
	CheckinService *service.CheckinService
}

func NewCheckinController(checkinService *service.CheckinService) *CheckinController {
	return &CheckinController{CheckinService: checkinService}
}

// @Summary Record today's geolocated check-in
// @Tags checkins
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /checkins [post]
func (c *CheckinController) Checkin(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Latitude  float64 `json:"latitude" binding:"required,min=-90,max=90"`
		Longitude float64 `json:"longitude" binding:"required,min=-180,max=180"`
		Accuracy  float64 `json:"accuracy" binding:"omitempty,min=0"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	checkin, err := c.CheckinService.Checkin(claims.UserID, req.Latitude, req.Longitude, req.Accuracy)
	if err != nil {
		if err == util.ErrAlreadyCheckedIn {
			util.Error(ctx, 409, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, checkin)
}

// @Summary Current user's check-in history
// @Tags checkins
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "max records, default 30"
// @Success 200 {object} util.Response
// @Router /checkins [get]
func (c *CheckinController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			util.BadRequest(ctx, "invalid limit")
			return
		}
		limit = parsed
	}

	history, err := c.CheckinService.History(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, history)
}
