package service

import (
	"time"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/repository"
	"acadplan_backend/internal/util"

	"gorm.io/gorm"
)

type CheckinService struct {
	CheckinRepo *repository.CheckinRepository
}

func NewCheckinService(checkinRepo *repository.CheckinRepository) *CheckinService {
	return &CheckinService{CheckinRepo: checkinRepo}
}

// Checkin records a geolocated check-in, at most one per user per day.
func (s *CheckinService) Checkin(userID uint, latitude, longitude, accuracy float64) (*model.Checkin, error) {
	now := time.Now()
	date := now.Format(util.DateFormat)

	_, err := s.CheckinRepo.FindByUserAndDate(userID, date)
	if err == nil {
		return nil, util.ErrAlreadyCheckedIn
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	checkin := &model.Checkin{
		UserID:      userID,
		CheckinDate: date,
		CheckinAt:   now,
		Latitude:    latitude,
		Longitude:   longitude,
		Accuracy:    accuracy,
	}
	if err := s.CheckinRepo.Create(checkin); err != nil {
		return nil, err
	}
	return checkin, nil
}

func (s *CheckinService) History(userID uint, limit int) ([]model.Checkin, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	return s.CheckinRepo.FindByUser(userID, limit)
}
