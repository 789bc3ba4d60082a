package service

import (
	"context"
	"math"
	"time"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/repository"
	"acadplan_backend/internal/util"
)

const (
	ReportTypeInstitutional = "institutional"
	ReportTypeTeacher       = "teacher"
)

type ReportService struct {
	ReportRepo *repository.ReportRepository
}

func NewReportService(reportRepo *repository.ReportRepository) *ReportService {
	return &ReportService{ReportRepo: reportRepo}
}

// GetInstitutionalReport recomputes the institution-wide report for the
// given cycle. Nothing is cached between requests.
func (s *ReportService) GetInstitutionalReport(ctx context.Context, cycle string) (*model.InstitutionalReport, error) {
	sets, err := s.ReportRepo.FetchScoped(ctx, repository.Scope{Cycle: cycle})
	if err != nil {
		return nil, err
	}
	report := BuildInstitutionalReport(sets.Plans, sets.Progress, sets.Evidence, periodLabel(cycle))
	return report, nil
}

// GetTeacherReport requires a non-empty teacher name; the endpoint layer
// validates that before any store access happens.
func (s *ReportService) GetTeacherReport(ctx context.Context, teacher, cycle string) (*model.TeacherReport, error) {
	sets, err := s.ReportRepo.FetchScoped(ctx, repository.Scope{Cycle: cycle, Teacher: teacher})
	if err != nil {
		return nil, err
	}
	report := BuildTeacherReport(teacher, sets.Plans, sets.Progress, sets.Evidence, periodLabel(cycle))
	return report, nil
}

// BuildInstitutionalReport derives the institution-wide report from
// already-materialized record sets. Pure: no store access, no clock other
// than the generation timestamp.
func BuildInstitutionalReport(plans []model.Plan, progress []model.Progress, evidence []model.Evidence, period string) *model.InstitutionalReport {
	teachers := distinctTeachers(plans, progress, evidence)

	rollups := make([]model.TeacherRollup, 0, len(teachers))
	for _, teacher := range teachers {
		rollups = append(rollups, buildRollup(teacher, plans, progress, evidence))
	}

	approved := 0
	for _, p := range plans {
		if p.Status == model.PlanApproved {
			approved++
		}
	}
	compliant := 0
	for _, a := range progress {
		if a.Compliance == model.ComplianceCompliant {
			compliant++
		}
	}
	totalHours := 0.0
	for _, e := range evidence {
		totalHours += e.AccreditedHours
	}

	return &model.InstitutionalReport{
		Type:        ReportTypeInstitutional,
		Period:      period,
		GeneratedAt: time.Now(),
		OverallSummary: model.OverallSummary{
			TeacherCount:   len(teachers),
			PlanCount:      len(plans),
			ProgressCount:  len(progress),
			EvidenceCount:  len(evidence),
			ApprovalRate:   ratio(approved, len(plans)),
			ComplianceRate: ratio(compliant, len(progress)),
			TotalHours:     totalHours,
		},
		TeacherRollups: rollups,
	}
}

// BuildTeacherReport derives a single teacher's counts from record sets
// already filtered to that teacher.
func BuildTeacherReport(teacher string, plans []model.Plan, progress []model.Progress, evidence []model.Evidence, period string) *model.TeacherReport {
	return &model.TeacherReport{
		Type:            ReportTypeTeacher,
		Teacher:         teacher,
		Period:          period,
		GeneratedAt:     time.Now(),
		PlanCount:       len(plans),
		ProgressCount:   len(progress),
		EvidenceCount:   len(evidence),
		AverageProgress: meanProgress(progress),
	}
}

func buildRollup(teacher string, plans []model.Plan, progress []model.Progress, evidence []model.Evidence) model.TeacherRollup {
	ownPlans := make([]model.Plan, 0)
	planCounts := make(map[model.PlanStatus]int, len(model.PlanStatuses))
	for _, status := range model.PlanStatuses {
		planCounts[status] = 0
	}
	for _, p := range plans {
		if p.Teacher != teacher {
			continue
		}
		ownPlans = append(ownPlans, p)
		// the table is keyed over the closed variant set only; a record
		// carrying an unknown status must not grow a new key
		if _, ok := planCounts[p.Status]; ok {
			planCounts[p.Status]++
		}
	}

	ownProgress := make([]model.Progress, 0)
	complianceCounts := make(map[model.Compliance]int, len(model.Compliances))
	for _, c := range model.Compliances {
		complianceCounts[c] = 0
	}
	for _, a := range progress {
		if a.Teacher != teacher {
			continue
		}
		ownProgress = append(ownProgress, a)
		if _, ok := complianceCounts[a.Compliance]; ok {
			complianceCounts[a.Compliance]++
		}
	}

	ownEvidence := make([]model.Evidence, 0)
	validated := 0
	totalHours := 0.0
	for _, e := range evidence {
		if e.Teacher != teacher {
			continue
		}
		ownEvidence = append(ownEvidence, e)
		if e.Status == model.EvidenceValidated {
			validated++
		}
		totalHours += e.AccreditedHours
	}

	return model.TeacherRollup{
		Teacher:  teacher,
		Plans:    ownPlans,
		Progress: ownProgress,
		Evidence: ownEvidence,
		Summary: model.RollupSummary{
			PlanCountsByStatus:         planCounts,
			AvgProgress:                meanProgress(ownProgress),
			ProgressCountsByCompliance: complianceCounts,
			EvidenceCount:              len(ownEvidence),
			ValidatedEvidenceCount:     validated,
			TotalHours:                 totalHours,
		},
	}
}

// distinctTeachers collects non-empty teacher names in first-appearance
// order across plans, then progress, then evidence. Rollup ordering in the
// report follows this order, which existing export snapshots depend on.
func distinctTeachers(plans []model.Plan, progress []model.Progress, evidence []model.Evidence) []string {
	seen := make(map[string]bool)
	teachers := make([]string, 0)

	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		teachers = append(teachers, name)
	}

	for _, p := range plans {
		add(p.Teacher)
	}
	for _, a := range progress {
		add(a.Teacher)
	}
	for _, e := range evidence {
		add(e.Teacher)
	}
	return teachers
}

// meanProgress averages percentComplete rounded to 2 decimals, 0 on an
// empty set.
func meanProgress(progress []model.Progress) float64 {
	if len(progress) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range progress {
		sum += a.PercentComplete
	}
	return Round2(sum / float64(len(progress)))
}

// ratio returns part/total as a percentage rounded to 2 decimals, 0 when
// total is 0.
func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(part) / float64(total) * 100)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func periodLabel(cycle string) string {
	if cycle == "" {
		return util.AllPeriods
	}
	return cycle
}
