package service

import (
	"bytes"
	"testing"
	"time"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/util"
)

func sampleInstitutionalReport() *model.InstitutionalReport {
	plans := []model.Plan{plan("Ana", model.PlanApproved)}
	progress := []model.Progress{progressReport("Ana", 80, model.ComplianceCompliant)}
	evidence := []model.Evidence{evidenceRecord("Ana", 4, model.EvidenceValidated)}
	return BuildInstitutionalReport(plans, progress, evidence, "2025-2026")
}

func sampleTeacherReport() *model.TeacherReport {
	return &model.TeacherReport{
		Type:            ReportTypeTeacher,
		Teacher:         "Ana",
		Period:          "2025-2026",
		GeneratedAt:     time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC),
		PlanCount:       2,
		ProgressCount:   3,
		EvidenceCount:   1,
		AverageProgress: 76.67,
	}
}

func TestRenderInstitutionalNoData(t *testing.T) {
	s := NewExportService()

	empty := BuildInstitutionalReport(nil, nil, nil, util.AllPeriods)
	if _, err := s.RenderInstitutional(FormatPDF, empty, "report"); err != util.ErrNoData {
		t.Errorf("empty report: err = %v, want ErrNoData", err)
	}
	if _, err := s.RenderInstitutional(FormatPDF, nil, "report"); err != util.ErrNoData {
		t.Errorf("nil report: err = %v, want ErrNoData", err)
	}
}

func TestRenderTeacherNoData(t *testing.T) {
	s := NewExportService()

	empty := &model.TeacherReport{Type: ReportTypeTeacher, Teacher: "Ana"}
	if _, err := s.RenderTeacher(FormatSpreadsheet, empty, "report"); err != util.ErrNoData {
		t.Errorf("empty report: err = %v, want ErrNoData", err)
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	s := NewExportService()
	report := sampleInstitutionalReport()

	for _, format := range []string{"csv", "html", "", "excel"} {
		if _, err := s.RenderInstitutional(format, report, "report"); err != util.ErrUnsupportedFormat {
			t.Errorf("format %q: err = %v, want ErrUnsupportedFormat", format, err)
		}
	}

	if _, err := s.RenderTeacher("docx", sampleTeacherReport(), "report"); err != util.ErrUnsupportedFormat {
		t.Errorf("teacher docx: err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRenderInstitutionalPDF(t *testing.T) {
	s := NewExportService()

	file, err := s.RenderInstitutional(FormatPDF, sampleInstitutionalReport(), "reporte-institucional-2025-2026")
	if err != nil {
		t.Fatalf("RenderInstitutional: %v", err)
	}
	if file.ContentType != util.MimePDF {
		t.Errorf("content type = %q, want %q", file.ContentType, util.MimePDF)
	}
	if file.Filename != "reporte-institucional-2025-2026.pdf" {
		t.Errorf("filename = %q", file.Filename)
	}
	if !bytes.HasPrefix(file.Bytes, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestRenderInstitutionalSpreadsheet(t *testing.T) {
	s := NewExportService()

	file, err := s.RenderInstitutional(FormatSpreadsheet, sampleInstitutionalReport(), "reporte-institucional-general")
	if err != nil {
		t.Fatalf("RenderInstitutional: %v", err)
	}
	if file.ContentType != util.MimeXLSX {
		t.Errorf("content type = %q, want %q", file.ContentType, util.MimeXLSX)
	}
	if file.Filename != "reporte-institucional-general.xlsx" {
		t.Errorf("filename = %q", file.Filename)
	}
	if !bytes.HasPrefix(file.Bytes, []byte("PK")) {
		t.Error("output is not a zip container")
	}
}

func TestRenderTeacherFormats(t *testing.T) {
	s := NewExportService()
	report := sampleTeacherReport()

	pdfFile, err := s.RenderTeacher(FormatPDF, report, "reporte-docente-2025-2026")
	if err != nil {
		t.Fatalf("RenderTeacher pdf: %v", err)
	}
	if !bytes.HasPrefix(pdfFile.Bytes, []byte("%PDF")) {
		t.Error("pdf output does not start with a PDF header")
	}

	xlsxFile, err := s.RenderTeacher(FormatSpreadsheet, report, "reporte-docente-2025-2026")
	if err != nil {
		t.Fatalf("RenderTeacher spreadsheet: %v", err)
	}
	if !bytes.HasPrefix(xlsxFile.Bytes, []byte("PK")) {
		t.Error("spreadsheet output is not a zip container")
	}
}

func TestComplianceFor(t *testing.T) {
	tests := []struct {
		percent float64
		want    model.Compliance
	}{
		{100, model.ComplianceCompliant},
		{90, model.ComplianceCompliant},
		{89.99, model.CompliancePartial},
		{50, model.CompliancePartial},
		{49.99, model.ComplianceNoncompliant},
		{0, model.ComplianceNoncompliant},
	}

	for _, tt := range tests {
		if got := ComplianceFor(tt.percent); got != tt.want {
			t.Errorf("ComplianceFor(%v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}
