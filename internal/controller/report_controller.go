package controller

import (
	"context"
	"net/http"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/service"
	"acadplan_backend/internal/util"
	"acadplan_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

// ReportSource produces derived reports for the endpoint layer.
type ReportSource interface {
	GetInstitutionalReport(ctx context.Context, cycle string) (*model.InstitutionalReport, error)
	GetTeacherReport(ctx context.Context, teacher, cycle string) (*model.TeacherReport, error)
}

type ReportController struct {
	ReportService ReportSource
	ExportService *service.ExportService
	UserService   *service.UserService
}

func NewReportController(reportService ReportSource, exportService *service.ExportService, userService *service.UserService) *ReportController {
	return &ReportController{
		ReportService: reportService,
		ExportService: exportService,
		UserService:   userService,
	}
}

// @Summary Institutional report
// @Description Aggregated report over every teacher's plans, progress and evidence
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Param cycle query string false "School cycle, e.g. 2024-2025"
// @Success 200 {object} util.Response
// @Router /reports/institutional [get]
func (c *ReportController) GetInstitutional(ctx *gin.Context) {
	cycle := ctx.Query("cycle")

	report, err := c.ReportService.GetInstitutionalReport(ctx.Request.Context(), cycle)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// @Summary Per-teacher report
// @Description Counts and average progress for one teacher
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Param teacher query string true "Teacher name"
// @Param cycle query string false "School cycle"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /reports/teacher [get]
func (c *ReportController) GetTeacher(ctx *gin.Context) {
	teacher := ctx.Query("teacher")
	if teacher == "" {
		util.BadRequest(ctx, "teacher parameter required")
		return
	}
	cycle := ctx.Query("cycle")

	report, err := c.ReportService.GetTeacherReport(ctx.Request.Context(), teacher, cycle)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// @Summary Export a report
// @Description Streams an institutional or per-teacher report as PDF or Excel
// @Tags reports
// @Produce application/octet-stream
// @Security ApiKeyAuth
// @Param type query string true "Report type" Enums(institutional, teacher)
// @Param format query string true "Export format" Enums(pdf, excel)
// @Param cycle query string false "School cycle"
// @Param teacher query string false "Teacher name (required when type=teacher)"
// @Success 200 {file} binary
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /reports/export [get]
func (c *ReportController) Export(ctx *gin.Context) {
	reportType := ctx.Query("type")
	format := normalizeFormat(ctx.Query("format"))
	cycle := ctx.Query("cycle")
	teacher := ctx.Query("teacher")

	var (
		file *service.ExportFile
		err  error
	)

	switch reportType {
	case service.ReportTypeInstitutional:
		report, rerr := c.ReportService.GetInstitutionalReport(ctx.Request.Context(), cycle)
		if rerr != nil {
			err = rerr
		} else {
			file, err = c.ExportService.RenderInstitutional(format, report, exportTitle(reportType, cycle))
		}
	case service.ReportTypeTeacher:
		if teacher == "" {
			util.BadRequest(ctx, "teacher parameter required")
			return
		}
		report, rerr := c.ReportService.GetTeacherReport(ctx.Request.Context(), teacher, cycle)
		if rerr != nil {
			err = rerr
		} else {
			file, err = c.ExportService.RenderTeacher(format, report, exportTitle(reportType, cycle))
		}
	default:
		util.BadRequest(ctx, util.ErrInvalidReportType.Error())
		return
	}

	if err != nil {
		switch err {
		case util.ErrNoData:
			util.NotFound(ctx, err.Error())
		case util.ErrUnsupportedFormat:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.ReportExportCounter.WithLabelValues(reportType, format).Inc()

	ctx.Header("Content-Disposition", `attachment; filename=`+file.Filename)
	ctx.Data(http.StatusOK, file.ContentType, file.Bytes)
}

// @Summary Teacher names for report filters
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /reports/teachers [get]
func (c *ReportController) GetTeacherNames(ctx *gin.Context) {
	names, err := c.UserService.ListTeacherNames(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, names)
}

// normalizeFormat maps the HTTP query vocabulary onto the renderer's.
// "excel" is the public name of the spreadsheet format.
func normalizeFormat(format string) string {
	switch format {
	case "excel", service.FormatSpreadsheet:
		return service.FormatSpreadsheet
	default:
		return format
	}
}

func exportTitle(reportType, cycle string) string {
	if cycle == "" {
		cycle = "general"
	}
	return "reporte-" + reportType + "-" + cycle
}
