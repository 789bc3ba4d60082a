package repository

import (
	"acadplan_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.Progress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) FindByID(id uint) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.First(&progress, id).Error
	return &progress, err
}

func (r *ProgressRepository) FindScoped(cycle, teacher string) ([]model.Progress, error) {
	var reports []model.Progress
	query := r.DB.Order("created_at")
	if cycle != "" {
		query = query.Where("cycle = ?", cycle)
	}
	if teacher != "" {
		query = query.Where("teacher = ?", teacher)
	}
	err := query.Find(&reports).Error
	return reports, err
}

func (r *ProgressRepository) Update(progress *model.Progress) error {
	return r.DB.Save(progress).Error
}

func (r *ProgressRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Progress{}, id).Error
}
