package repository

import (
	"acadplan_backend/internal/model"

	"gorm.io/gorm"
)

type CheckinRepository struct {
	DB *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) *CheckinRepository {
	return &CheckinRepository{DB: db}
}

func (r *CheckinRepository) Create(checkin *model.Checkin) error {
	return r.DB.Create(checkin).Error
}

func (r *CheckinRepository) FindByUserAndDate(userID uint, date string) (*model.Checkin, error) {
	var checkin model.Checkin
	err := r.DB.Where("user_id = ? AND checkin_date = ?", userID, date).First(&checkin).Error
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

func (r *CheckinRepository) FindByUser(userID uint, limit int) ([]model.Checkin, error) {
	var checkins []model.Checkin
	query := r.DB.Where("user_id = ?", userID).Order("checkin_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&checkins).Error
	return checkins, err
}
