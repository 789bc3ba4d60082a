package controller

import (
	"strconv"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/service"
	"acadplan_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EvidenceController struct {
	EvidenceService *service.EvidenceService
}

func NewEvidenceController(evidenceService *service.EvidenceService) *EvidenceController {
	return &EvidenceController{EvidenceService: evidenceService}
}

// @Summary Register evidence with an optional backing file
// @Tags evidence
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param name formData string true "evidence name"
// @Param accreditedHours formData number false "accredited hours"
// @Param file formData file false "backing document"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /evidence [post]
func (c *EvidenceController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	name := ctx.PostForm("name")
	if name == "" {
		util.BadRequest(ctx, "name is required")
		return
	}

	hours := 0.0
	if raw := ctx.PostForm("accreditedHours"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			util.BadRequest(ctx, "invalid accreditedHours")
			return
		}
		hours = parsed
	}

	evidence := &model.Evidence{
		Teacher:         claims.Name,
		Cycle:           ctx.PostForm("cycle"),
		Name:            name,
		AccreditedHours: hours,
	}

	// file is optional, evidence without a document stays pending
	file, _ := ctx.FormFile("file")

	if err := c.EvidenceService.Create(ctx.Request.Context(), evidence, file); err != nil {
		if err == util.ErrUnsupportedFileType {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, evidence)
}

// @Summary List evidence records
// @Tags evidence
// @Produce json
// @Security ApiKeyAuth
// @Param cycle query string false "school cycle"
// @Param teacher query string false "teacher name"
// @Success 200 {object} util.Response
// @Router /evidence [get]
func (c *EvidenceController) List(ctx *gin.Context) {
	records, err := c.EvidenceService.List(ctx.Query("cycle"), ctx.Query("teacher"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// @Summary Validate or reject an evidence record
// @Tags evidence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "evidence id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /evidence/{id}/validate [post]
func (c *EvidenceController) Validate(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	var req struct {
		Status model.EvidenceStatus `json:"status" binding:"required,oneof=validated rejected"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	evidence, err := c.EvidenceService.Validate(id, req.Status)
	if err != nil {
		if err == util.ErrEvidenceNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, evidence)
}
