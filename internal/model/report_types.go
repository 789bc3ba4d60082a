package model

import "time"

// Derived report structures. These are recomputed from the record
// collections on every request and are never persisted or cached.

// RollupSummary aggregates one teacher's records within the active scope.
type RollupSummary struct {
	PlanCountsByStatus         map[PlanStatus]int `json:"planCountsByStatus"`
	AvgProgress                float64            `json:"avgProgress"`
	ProgressCountsByCompliance map[Compliance]int `json:"progressCountsByCompliance"`
	EvidenceCount              int                `json:"evidenceCount"`
	ValidatedEvidenceCount     int                `json:"validatedEvidenceCount"`
	TotalHours                 float64            `json:"totalHours"`
}

// TeacherRollup groups a single teacher's plans, progress reports and
// evidence together with their summary.
type TeacherRollup struct {
	Teacher  string        `json:"teacher"`
	Plans    []Plan        `json:"plans"`
	Progress []Progress    `json:"progress"`
	Evidence []Evidence    `json:"evidence"`
	Summary  RollupSummary `json:"summary"`
}

// OverallSummary covers the cycle-filtered sets before grouping by teacher.
type OverallSummary struct {
	TeacherCount   int     `json:"teacherCount"`
	PlanCount      int     `json:"planCount"`
	ProgressCount  int     `json:"progressCount"`
	EvidenceCount  int     `json:"evidenceCount"`
	ApprovalRate   float64 `json:"approvalRate"`
	ComplianceRate float64 `json:"complianceRate"`
	TotalHours     float64 `json:"totalHours"`
}

type InstitutionalReport struct {
	Type           string          `json:"type"`
	Period         string          `json:"period"`
	GeneratedAt    time.Time       `json:"generatedAt"`
	OverallSummary OverallSummary  `json:"overallSummary"`
	TeacherRollups []TeacherRollup `json:"teacherRollups"`
}

type TeacherReport struct {
	Type            string    `json:"type"`
	Teacher         string    `json:"teacher"`
	Period          string    `json:"period"`
	GeneratedAt     time.Time `json:"generatedAt"`
	PlanCount       int       `json:"planCount"`
	ProgressCount   int       `json:"progressCount"`
	EvidenceCount   int       `json:"evidenceCount"`
	AverageProgress float64   `json:"averageProgress"`
}
