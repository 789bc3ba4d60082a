package service

import (
	"bytes"
	"fmt"
	"strings"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/util"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

const (
	FormatPDF         = "pdf"
	FormatSpreadsheet = "spreadsheet"
)

// Export palette, carried over from the institution's report theme.
var (
	colorPrimary   = [3]int{142, 124, 195}
	colorSecondary = [3]int{106, 215, 168}
	colorText      = [3]int{51, 51, 51}
)

// ExportFile is a fully serialized download. Bytes are complete before the
// transport layer writes any header, so a render failure never leaves a
// truncated attachment behind.
type ExportFile struct {
	ContentType string
	Filename    string
	Bytes       []byte
}

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// RenderInstitutional serializes an institutional report. Reports without
// any teacher rollup are rejected with ErrNoData instead of producing an
// empty file.
func (s *ExportService) RenderInstitutional(format string, report *model.InstitutionalReport, title string) (*ExportFile, error) {
	if report == nil || len(report.TeacherRollups) == 0 {
		return nil, util.ErrNoData
	}

	switch format {
	case FormatPDF:
		return s.institutionalPDF(report, title)
	case FormatSpreadsheet:
		return s.institutionalXLSX(report, title)
	default:
		return nil, util.ErrUnsupportedFormat
	}
}

// RenderTeacher serializes a single-teacher report.
func (s *ExportService) RenderTeacher(format string, report *model.TeacherReport, title string) (*ExportFile, error) {
	if report == nil || (report.PlanCount == 0 && report.ProgressCount == 0 && report.EvidenceCount == 0) {
		return nil, util.ErrNoData
	}

	switch format {
	case FormatPDF:
		return s.teacherPDF(report, title)
	case FormatSpreadsheet:
		return s.teacherXLSX(report, title)
	default:
		return nil, util.ErrUnsupportedFormat
	}
}

// ===== PDF =====

func newReportPDF(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()

	pdf.SetFillColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.Rect(0, 0, pageW, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(0, 8)
	pdf.CellFormat(pageW, 12, strings.ToUpper(strings.ReplaceAll(title, "-", " ")), "", 1, "C", false, 0, "")
	pdf.SetY(34)
	return pdf
}

func pdfInfoBlock(pdf *fpdf.Fpdf, report interface{ Info() (string, string) }) {
	period, generated := report.Info()
	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, "Period: "+period, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Generated: "+generated, "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func pdfSectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetTextColor(colorSecondary[0], colorSecondary[1], colorSecondary[2])
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.SetFont("Helvetica", "", 12)
}

func pdfKV(pdf *fpdf.Fpdf, key, value string) {
	pdf.CellFormat(0, 6.5, fmt.Sprintf("- %s: %s", key, value), "", 1, "L", false, 0, "")
}

type pdfInfo struct {
	period    string
	generated string
}

func (i pdfInfo) Info() (string, string) { return i.period, i.generated }

func (s *ExportService) institutionalPDF(report *model.InstitutionalReport, title string) (*ExportFile, error) {
	pdf := newReportPDF(title)
	pdfInfoBlock(pdf, pdfInfo{report.Period, report.GeneratedAt.Format(util.TimeFormat)})

	sum := report.OverallSummary
	pdfSectionTitle(pdf, "Summary")
	pdfKV(pdf, "Teachers", fmt.Sprintf("%d", sum.TeacherCount))
	pdfKV(pdf, "Plans", fmt.Sprintf("%d", sum.PlanCount))
	pdfKV(pdf, "Progress reports", fmt.Sprintf("%d", sum.ProgressCount))
	pdfKV(pdf, "Evidence records", fmt.Sprintf("%d", sum.EvidenceCount))
	pdf.Ln(5)

	pdfSectionTitle(pdf, "Totals")
	pdfKV(pdf, "Approval rate", formatPercent(sum.ApprovalRate))
	pdfKV(pdf, "Compliance rate", formatPercent(sum.ComplianceRate))
	pdfKV(pdf, "Accredited hours", formatHours(sum.TotalHours))

	for _, rollup := range report.TeacherRollups {
		s.rollupPage(pdf, rollup)
	}

	return pdfFile(pdf, title)
}

// rollupPage renders one teacher's rollup on its own page.
func (s *ExportService) rollupPage(pdf *fpdf.Fpdf, rollup model.TeacherRollup) {
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()

	pdf.SetFillColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.Rect(0, 0, pageW, 24, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 17)
	pdf.SetXY(10, 7)
	pdf.CellFormat(0, 10, rollup.Teacher, "", 1, "L", false, 0, "")
	pdf.SetY(32)

	pdfSectionTitle(pdf, "Plans")
	for _, status := range model.PlanStatuses {
		pdfKV(pdf, string(status), fmt.Sprintf("%d", rollup.Summary.PlanCountsByStatus[status]))
	}
	pdf.Ln(4)

	pdfSectionTitle(pdf, "Progress")
	pdfKV(pdf, "Total", fmt.Sprintf("%d", len(rollup.Progress)))
	pdfKV(pdf, "Average", formatPercent(rollup.Summary.AvgProgress))
	for _, compliance := range model.Compliances {
		pdfKV(pdf, string(compliance), fmt.Sprintf("%d", rollup.Summary.ProgressCountsByCompliance[compliance]))
	}
	pdf.Ln(4)

	pdfSectionTitle(pdf, "Evidence")
	pdfKV(pdf, "Total", fmt.Sprintf("%d", rollup.Summary.EvidenceCount))
	pdfKV(pdf, "Validated", fmt.Sprintf("%d", rollup.Summary.ValidatedEvidenceCount))
	pdfKV(pdf, "Accredited hours", formatHours(rollup.Summary.TotalHours))
}

func (s *ExportService) teacherPDF(report *model.TeacherReport, title string) (*ExportFile, error) {
	pdf := newReportPDF(title)
	pageW, _ := pdf.GetPageSize()

	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, "Teacher Report", "", 1, "C", false, 0, "")
	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 11, report.Teacher, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	tiles := []struct {
		label string
		value string
	}{
		{"Plans", fmt.Sprintf("%d", report.PlanCount)},
		{"Progress reports", fmt.Sprintf("%d", report.ProgressCount)},
		{"Evidence records", fmt.Sprintf("%d", report.EvidenceCount)},
		{"Average progress", formatPercent(report.AverageProgress)},
	}

	const (
		tileW = 85.0
		tileH = 22.0
		gap   = 10.0
	)
	startX := (pageW - 2*tileW - gap) / 2
	startY := pdf.GetY()

	for i, tile := range tiles {
		x := startX + float64(i%2)*(tileW+gap)
		y := startY + float64(i/2)*(tileH+gap)

		if i%2 == 0 {
			pdf.SetFillColor(colorSecondary[0], colorSecondary[1], colorSecondary[2])
		} else {
			pdf.SetFillColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
		}
		pdf.Rect(x, y, tileW, tileH, "F")

		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(x+5, y+9, tile.label)
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Text(x+5, y+18, tile.value)
	}

	pdf.SetY(startY + 2*(tileH+gap) + 6)
	pdf.SetTextColor(colorText[0], colorText[1], colorText[2])
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, "Period: "+report.Period, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Generated: "+report.GeneratedAt.Format(util.TimeFormat), "", 1, "L", false, 0, "")

	pdf.Ln(6)
	pdf.SetDrawColor(colorSecondary[0], colorSecondary[1], colorSecondary[2])
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(5)
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated automatically by the Academic Planning System", "", 1, "C", false, 0, "")

	return pdfFile(pdf, title)
}

func pdfFile(pdf *fpdf.Fpdf, title string) (*ExportFile, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &ExportFile{
		ContentType: util.MimePDF,
		Filename:    title + ".pdf",
		Bytes:       buf.Bytes(),
	}, nil
}

// ===== XLSX =====

const sheetName = "Report"

type sheetWriter struct {
	file *excelize.File
	row  int
	err  error
}

func newSheetWriter() *sheetWriter {
	f := excelize.NewFile()
	w := &sheetWriter{file: f, row: 1}
	w.err = f.SetSheetName("Sheet1", sheetName)
	return w
}

func (w *sheetWriter) addRow(values ...interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.file.SetSheetRow(sheetName, cell, &values)
	w.row++
}

func (w *sheetWriter) finish(title string) (*ExportFile, error) {
	if w.err != nil {
		return nil, w.err
	}
	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		ContentType: util.MimeXLSX,
		Filename:    title + ".xlsx",
		Bytes:       buf.Bytes(),
	}, nil
}

func (s *ExportService) institutionalXLSX(report *model.InstitutionalReport, title string) (*ExportFile, error) {
	w := newSheetWriter()

	w.addRow("Report: " + title)
	w.addRow("Period: " + report.Period)
	w.addRow()

	sum := report.OverallSummary
	w.addRow("Summary")
	w.addRow("Teachers", sum.TeacherCount)
	w.addRow("Plans", sum.PlanCount)
	w.addRow("Progress reports", sum.ProgressCount)
	w.addRow("Evidence records", sum.EvidenceCount)
	w.addRow()

	w.addRow("Totals")
	w.addRow("Approval rate", sum.ApprovalRate)
	w.addRow("Compliance rate", sum.ComplianceRate)
	w.addRow("Accredited hours", sum.TotalHours)
	w.addRow()

	w.addRow("Teachers")
	w.addRow("Teacher", "Plans", "Progress reports", "Average progress", "Evidence records", "Hours")
	for _, rollup := range report.TeacherRollups {
		w.addRow(
			rollup.Teacher,
			len(rollup.Plans),
			len(rollup.Progress),
			rollup.Summary.AvgProgress,
			rollup.Summary.EvidenceCount,
			rollup.Summary.TotalHours,
		)
	}

	return w.finish(title)
}

func (s *ExportService) teacherXLSX(report *model.TeacherReport, title string) (*ExportFile, error) {
	w := newSheetWriter()

	w.addRow("Report: " + title)
	w.addRow("Period: " + report.Period)
	w.addRow()

	w.addRow("Teacher", report.Teacher)
	w.addRow("Plans", report.PlanCount)
	w.addRow("Progress reports", report.ProgressCount)
	w.addRow("Evidence records", report.EvidenceCount)
	w.addRow("Average progress", report.AverageProgress)

	return w.finish(title)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func formatHours(v float64) string {
	return fmt.Sprintf("%g", v)
}
