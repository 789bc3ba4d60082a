package service

import (
	"time"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/repository"
	"acadplan_backend/internal/util"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo}
}

func (s *ProgressService) Create(progress *model.Progress) error {
	if progress.Cycle == "" {
		progress.Cycle = CurrentCycle(time.Now())
	}
	if progress.Compliance == "" {
		progress.Compliance = ComplianceFor(progress.PercentComplete)
	}
	return s.ProgressRepo.Create(progress)
}

// ComplianceFor maps a completion percentage to its default compliance
// bucket when the caller does not set one explicitly.
func ComplianceFor(percent float64) model.Compliance {
	switch {
	case percent >= 90:
		return model.ComplianceCompliant
	case percent >= 50:
		return model.CompliancePartial
	default:
		return model.ComplianceNoncompliant
	}
}

func (s *ProgressService) List(cycle, teacher string) ([]model.Progress, error) {
	return s.ProgressRepo.FindScoped(cycle, teacher)
}

func (s *ProgressService) Update(id uint, claims *util.Claims, percent *float64, compliance model.Compliance, notes string) (*model.Progress, error) {
	progress, err := s.ProgressRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrProgressNotFound
	}
	if err != nil {
		return nil, err
	}

	if claims.Role == model.Teacher && progress.Teacher != claims.Name {
		return nil, util.ErrPermissionDenied
	}

	if percent != nil {
		progress.PercentComplete = *percent
	}
	if compliance != "" {
		progress.Compliance = compliance
	}
	if notes != "" {
		progress.Notes = notes
	}

	if err := s.ProgressRepo.Update(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *ProgressService) Delete(id uint, claims *util.Claims) error {
	progress, err := s.ProgressRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return util.ErrProgressNotFound
	}
	if err != nil {
		return err
	}
	if claims.Role == model.Teacher && progress.Teacher != claims.Name {
		return util.ErrPermissionDenied
	}
	return s.ProgressRepo.Delete(id)
}
