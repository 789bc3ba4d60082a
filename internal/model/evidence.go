package model

type EvidenceStatus string

const (
	EvidencePending   EvidenceStatus = "pending"
	EvidenceValidated EvidenceStatus = "validated"
	EvidenceRejected  EvidenceStatus = "rejected"
)

var EvidenceStatuses = []EvidenceStatus{EvidencePending, EvidenceValidated, EvidenceRejected}

// Evidence is a professional-development credit record (evidencia) with an
// optional backing file stored through the storage provider.
// swagger:model Evidence
type Evidence struct {
	BaseModel
	Teacher         string         `gorm:"size:100;not null;index" json:"teacher"`
	Cycle           string         `gorm:"size:20;not null;index" json:"cycle"`
	Name            string         `gorm:"size:200;not null" json:"name"`
	AccreditedHours float64        `gorm:"not null;default:0" json:"accreditedHours"`
	Status          EvidenceStatus `gorm:"type:enum('pending','validated','rejected');default:'pending'" json:"status"`
	FileURL         string         `gorm:"size:255" json:"fileUrl"`
}

func (Evidence) TableName() string {
	return "evidences"
}
