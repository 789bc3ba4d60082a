package model

import (
	"time"
)

// Checkin records a geolocated attendance check-in. One per user per day,
// enforced by the unique index on (user_id, checkin_date).
// swagger:model Checkin
type Checkin struct {
	BaseModel
	UserID      uint      `gorm:"index:idx_user_checkin_date,unique;type:bigint unsigned;not null" json:"userId"`
	CheckinDate string    `gorm:"size:10;index:idx_user_checkin_date,unique;not null" json:"checkinDate"`
	CheckinAt   time.Time `gorm:"not null" json:"checkinAt"`
	Latitude    float64   `gorm:"not null" json:"latitude"`
	Longitude   float64   `gorm:"not null" json:"longitude"`
	Accuracy    float64   `json:"accuracy"`
}

func (Checkin) TableName() string {
	return "checkins"
}
