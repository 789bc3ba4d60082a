package service

import (
	"reflect"
	"testing"
	"time"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/util"
)

func plan(teacher string, status model.PlanStatus) model.Plan {
	return model.Plan{Teacher: teacher, Subject: "Math", Cycle: "2025-2026", Status: status}
}

func progressReport(teacher string, percent float64, compliance model.Compliance) model.Progress {
	return model.Progress{Teacher: teacher, Subject: "Math", Cycle: "2025-2026", PercentComplete: percent, Compliance: compliance}
}

func evidenceRecord(teacher string, hours float64, status model.EvidenceStatus) model.Evidence {
	return model.Evidence{Teacher: teacher, Cycle: "2025-2026", Name: "Course", AccreditedHours: hours, Status: status}
}

func TestBuildInstitutionalReportEmptySets(t *testing.T) {
	report := BuildInstitutionalReport(nil, nil, nil, util.AllPeriods)

	if report.Type != ReportTypeInstitutional {
		t.Errorf("type = %q, want %q", report.Type, ReportTypeInstitutional)
	}
	sum := report.OverallSummary
	if sum.TeacherCount != 0 || sum.PlanCount != 0 || sum.ProgressCount != 0 || sum.EvidenceCount != 0 {
		t.Errorf("counts not zero on empty sets: %+v", sum)
	}
	if sum.ApprovalRate != 0 {
		t.Errorf("approval rate = %v, want 0 on empty plan set", sum.ApprovalRate)
	}
	if sum.ComplianceRate != 0 {
		t.Errorf("compliance rate = %v, want 0 on empty progress set", sum.ComplianceRate)
	}
	if len(report.TeacherRollups) != 0 {
		t.Errorf("rollups = %d, want 0", len(report.TeacherRollups))
	}
}

func TestBuildInstitutionalReportSingleTeacher(t *testing.T) {
	plans := []model.Plan{
		plan("Ana", model.PlanApproved),
		plan("Ana", model.PlanRejected),
	}
	progress := []model.Progress{
		progressReport("Ana", 90, model.ComplianceCompliant),
		progressReport("Ana", 70, model.ComplianceCompliant),
	}
	evidence := []model.Evidence{
		evidenceRecord("Ana", 5, model.EvidenceValidated),
	}

	report := BuildInstitutionalReport(plans, progress, evidence, "2025-2026")

	sum := report.OverallSummary
	if sum.TeacherCount != 1 {
		t.Fatalf("teacher count = %d, want 1", sum.TeacherCount)
	}
	if sum.ApprovalRate != 50.00 {
		t.Errorf("approval rate = %v, want 50.00", sum.ApprovalRate)
	}
	if sum.ComplianceRate != 100.00 {
		t.Errorf("compliance rate = %v, want 100.00", sum.ComplianceRate)
	}
	if sum.TotalHours != 5 {
		t.Errorf("total hours = %v, want 5", sum.TotalHours)
	}

	rollup := report.TeacherRollups[0]
	if rollup.Teacher != "Ana" {
		t.Fatalf("rollup teacher = %q, want Ana", rollup.Teacher)
	}
	if rollup.Summary.AvgProgress != 80.00 {
		t.Errorf("avg progress = %v, want 80.00", rollup.Summary.AvgProgress)
	}
	if rollup.Summary.ValidatedEvidenceCount != 1 {
		t.Errorf("validated evidence = %d, want 1", rollup.Summary.ValidatedEvidenceCount)
	}
	if got := rollup.Summary.PlanCountsByStatus[model.PlanApproved]; got != 1 {
		t.Errorf("approved plans = %d, want 1", got)
	}
	if got := rollup.Summary.PlanCountsByStatus[model.PlanDraft]; got != 0 {
		t.Errorf("draft plans = %d, want 0", got)
	}
}

func TestBuildInstitutionalReportFrequencyTablesCoverAllVariants(t *testing.T) {
	plans := []model.Plan{plan("Luis", model.PlanSubmitted)}
	report := BuildInstitutionalReport(plans, nil, nil, "2025-2026")

	counts := report.TeacherRollups[0].Summary.PlanCountsByStatus
	if len(counts) != len(model.PlanStatuses) {
		t.Fatalf("plan status table has %d keys, want %d", len(counts), len(model.PlanStatuses))
	}
	for _, status := range model.PlanStatuses {
		if _, ok := counts[status]; !ok {
			t.Errorf("status %q missing from frequency table", status)
		}
	}

	compliance := report.TeacherRollups[0].Summary.ProgressCountsByCompliance
	if len(compliance) != len(model.Compliances) {
		t.Fatalf("compliance table has %d keys, want %d", len(compliance), len(model.Compliances))
	}
}

func TestBuildInstitutionalReportIgnoresUnknownEnumValues(t *testing.T) {
	plans := []model.Plan{
		plan("Luis", model.PlanApproved),
		plan("Luis", model.PlanStatus("archived")),
	}
	progress := []model.Progress{
		progressReport("Luis", 70, model.Compliance("exempt")),
	}

	report := BuildInstitutionalReport(plans, progress, nil, "2025-2026")
	summary := report.TeacherRollups[0].Summary

	if len(summary.PlanCountsByStatus) != len(model.PlanStatuses) {
		t.Errorf("plan status table grew to %d keys, want %d", len(summary.PlanCountsByStatus), len(model.PlanStatuses))
	}
	if _, ok := summary.PlanCountsByStatus[model.PlanStatus("archived")]; ok {
		t.Error("unknown plan status leaked into the frequency table")
	}
	if got := summary.PlanCountsByStatus[model.PlanApproved]; got != 1 {
		t.Errorf("approved plans = %d, want 1", got)
	}
	if len(summary.ProgressCountsByCompliance) != len(model.Compliances) {
		t.Errorf("compliance table grew to %d keys, want %d", len(summary.ProgressCountsByCompliance), len(model.Compliances))
	}
	// the record still counts toward averages even when its compliance
	// value is unrecognized
	if summary.AvgProgress != 70 {
		t.Errorf("avg progress = %v, want 70", summary.AvgProgress)
	}
}

func TestDistinctTeachersOrderAndExclusions(t *testing.T) {
	plans := []model.Plan{
		plan("Ana", model.PlanDraft),
		plan("", model.PlanDraft),
		plan("Luis", model.PlanDraft),
		plan("Ana", model.PlanApproved),
	}
	progress := []model.Progress{
		progressReport("Marta", 50, model.CompliancePartial),
		progressReport("Luis", 60, model.CompliancePartial),
	}
	evidence := []model.Evidence{
		evidenceRecord("Pedro", 2, model.EvidencePending),
		evidenceRecord("", 3, model.EvidencePending),
	}

	got := distinctTeachers(plans, progress, evidence)
	want := []string{"Ana", "Luis", "Marta", "Pedro"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("distinct teachers = %v, want %v", got, want)
	}
}

func TestBuildTeacherReport(t *testing.T) {
	progress := []model.Progress{
		progressReport("Ana", 33.335, model.ComplianceCompliant),
		progressReport("Ana", 33.335, model.ComplianceCompliant),
	}

	report := BuildTeacherReport("Ana", nil, progress, nil, util.AllPeriods)

	if report.Type != ReportTypeTeacher {
		t.Errorf("type = %q, want %q", report.Type, ReportTypeTeacher)
	}
	if report.PlanCount != 0 || report.ProgressCount != 2 || report.EvidenceCount != 0 {
		t.Errorf("counts = %d/%d/%d, want 0/2/0", report.PlanCount, report.ProgressCount, report.EvidenceCount)
	}
	if report.AverageProgress != 33.34 {
		t.Errorf("average progress = %v, want 33.34", report.AverageProgress)
	}
}

func TestMeanProgress(t *testing.T) {
	tests := []struct {
		name     string
		percents []float64
		want     float64
	}{
		{"empty", nil, 0},
		{"single", []float64{75}, 75},
		{"rounded", []float64{50, 55}, 52.5},
		{"repeating decimal", []float64{100, 100, 50}, 83.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := make([]model.Progress, 0, len(tt.percents))
			for _, p := range tt.percents {
				progress = append(progress, progressReport("Ana", p, model.CompliancePartial))
			}
			if got := meanProgress(progress); got != tt.want {
				t.Errorf("meanProgress = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name        string
		part, total int
		want        float64
	}{
		{"zero denominator", 3, 0, 0},
		{"half", 1, 2, 50},
		{"third", 1, 3, 33.33},
		{"two thirds", 2, 3, 66.67},
		{"full", 4, 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ratio(tt.part, tt.total); got != tt.want {
				t.Errorf("ratio(%d, %d) = %v, want %v", tt.part, tt.total, got, tt.want)
			}
		})
	}
}

func TestPeriodLabel(t *testing.T) {
	if got := periodLabel(""); got != util.AllPeriods {
		t.Errorf("periodLabel(\"\") = %q, want %q", got, util.AllPeriods)
	}
	if got := periodLabel("2025-2026"); got != "2025-2026" {
		t.Errorf("periodLabel = %q, want 2025-2026", got)
	}
}

func TestCurrentCycle(t *testing.T) {
	tests := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC), "2025-2026"},
		{time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), "2026-2027"},
	}

	for _, tt := range tests {
		if got := CurrentCycle(tt.now); got != tt.want {
			t.Errorf("CurrentCycle(%v) = %q, want %q", tt.now, got, tt.want)
		}
	}
}
