package model

type Compliance string

const (
	ComplianceCompliant    Compliance = "compliant"
	CompliancePartial      Compliance = "partial"
	ComplianceNoncompliant Compliance = "noncompliant"
)

// Compliances is the closed set of compliance levels, in report order.
var Compliances = []Compliance{ComplianceCompliant, CompliancePartial, ComplianceNoncompliant}

// Progress is a periodic progress report (avance) a teacher files against
// a plan's subject. PercentComplete is clamped to [0,100] at the API edge.
// swagger:model Progress
type Progress struct {
	BaseModel
	Teacher         string     `gorm:"size:100;not null;index" json:"teacher"`
	Subject         string     `gorm:"size:150;not null" json:"subject"`
	Cycle           string     `gorm:"size:20;not null;index" json:"cycle"`
	PercentComplete float64    `gorm:"not null;default:0" json:"percentComplete"`
	Compliance      Compliance `gorm:"type:enum('compliant','partial','noncompliant');default:'partial'" json:"compliance"`
	Notes           string     `gorm:"type:text" json:"notes"`
}

func (Progress) TableName() string {
	return "progress_reports"
}
