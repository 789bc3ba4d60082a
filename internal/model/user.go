package model

import (
	"time"
)

type UserRole string

const (
	Teacher     UserRole = "teacher"
	Coordinator UserRole = "coordinator"
	Admin       UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;unique;not null" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	Role       UserRole  `gorm:"type:enum('teacher','coordinator','admin');default:'teacher'" json:"role"`
	Department string    `gorm:"size:100" json:"department"`
	Active     bool      `gorm:"default:true" json:"active"`
	LastLogin  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
