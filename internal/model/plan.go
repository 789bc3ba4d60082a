package model

import "time"

type PlanStatus string

const (
	PlanDraft     PlanStatus = "draft"
	PlanSubmitted PlanStatus = "submitted"
	PlanApproved  PlanStatus = "approved"
	PlanRejected  PlanStatus = "rejected"
)

// PlanStatuses is the closed set of statuses a teaching plan can carry.
// Frequency tables in reports are keyed over this list so every variant
// shows up in the output, including zero counts.
var PlanStatuses = []PlanStatus{PlanDraft, PlanSubmitted, PlanApproved, PlanRejected}

// Plan is a teaching plan (planeacion) submitted by a teacher for one
// subject within a school cycle.
// swagger:model Plan
type Plan struct {
	BaseModel
	Teacher    string     `gorm:"size:100;not null;index" json:"teacher"`
	Subject    string     `gorm:"size:150;not null" json:"subject"`
	Cycle      string     `gorm:"size:20;not null;index" json:"cycle"`
	Status     PlanStatus `gorm:"type:enum('draft','submitted','approved','rejected');default:'draft'" json:"status"`
	Objectives string     `gorm:"type:text" json:"objectives"`
	Feedback   string     `gorm:"type:text" json:"feedback"`
	ReviewedBy string     `gorm:"size:100" json:"reviewedBy"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
}

func (Plan) TableName() string {
	return "plans"
}
