package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/service"
	"acadplan_backend/internal/util"
	"acadplan_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

// A controller with nil services: every test below must fail validation
// before any service call happens, so a nil dereference means the request
// reached past the guard it should have stopped at.
func newBareReportController() *ReportController {
	return NewReportController(nil, service.NewExportService(), nil)
}

func performRequest(handler gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/test", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) util.Response {
	t.Helper()
	var resp util.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp
}

func TestGetTeacherRequiresTeacherParam(t *testing.T) {
	c := newBareReportController()

	w := performRequest(c.GetTeacher, "/test?cycle=2025-2026")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Message != "teacher parameter required" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestExportRejectsInvalidReportType(t *testing.T) {
	c := newBareReportController()

	for _, target := range []string{
		"/test?type=global&format=pdf",
		"/test?format=pdf",
		"/test?type=Institutional&format=pdf",
	} {
		w := performRequest(c.Export, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, w.Code)
			continue
		}
		resp := decodeEnvelope(t, w)
		if resp.Message != "invalid report type" {
			t.Errorf("%s: message = %q", target, resp.Message)
		}
	}
}

func TestExportTeacherTypeRequiresTeacherParam(t *testing.T) {
	c := newBareReportController()

	w := performRequest(c.Export, "/test?type=teacher&format=pdf")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Message != "teacher parameter required" {
		t.Errorf("message = %q", resp.Message)
	}
}

// emptyReportSource yields reports derived from empty record sets, the
// state a scope with no matching data produces.
type emptyReportSource struct{}

func (emptyReportSource) GetInstitutionalReport(_ context.Context, cycle string) (*model.InstitutionalReport, error) {
	return service.BuildInstitutionalReport(nil, nil, nil, util.AllPeriods), nil
}

func (emptyReportSource) GetTeacherReport(_ context.Context, teacher, cycle string) (*model.TeacherReport, error) {
	return service.BuildTeacherReport(teacher, nil, nil, nil, util.AllPeriods), nil
}

func TestExportEmptyDataAnswers404(t *testing.T) {
	c := NewReportController(emptyReportSource{}, service.NewExportService(), nil)

	for _, target := range []string{
		"/test?type=institutional&format=pdf",
		"/test?type=teacher&teacher=Nonexistent&format=excel",
	} {
		w := performRequest(c.Export, target)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", target, w.Code)
			continue
		}
		if got := w.Header().Get("Content-Disposition"); got != "" {
			t.Errorf("%s: Content-Disposition = %q, want none on a data-empty error", target, got)
		}
		resp := decodeEnvelope(t, w)
		if resp.Message != util.ErrNoData.Error() {
			t.Errorf("%s: message = %q, want %q", target, resp.Message, util.ErrNoData.Error())
		}
	}
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pdf", service.FormatPDF},
		{"excel", service.FormatSpreadsheet},
		{"spreadsheet", service.FormatSpreadsheet},
		{"csv", "csv"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeFormat(tt.in); got != tt.want {
			t.Errorf("normalizeFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExportTitle(t *testing.T) {
	tests := []struct {
		reportType string
		cycle      string
		want       string
	}{
		{service.ReportTypeInstitutional, "2025-2026", "reporte-institutional-2025-2026"},
		{service.ReportTypeInstitutional, "", "reporte-institutional-general"},
		{service.ReportTypeTeacher, "2024-2025", "reporte-teacher-2024-2025"},
	}

	for _, tt := range tests {
		if got := exportTitle(tt.reportType, tt.cycle); got != tt.want {
			t.Errorf("exportTitle(%q, %q) = %q, want %q", tt.reportType, tt.cycle, got, tt.want)
		}
	}
}
