package repository

import (
	"acadplan_backend/internal/model"

	"gorm.io/gorm"
)

type EvidenceRepository struct {
	DB *gorm.DB
}

func NewEvidenceRepository(db *gorm.DB) *EvidenceRepository {
	return &EvidenceRepository{DB: db}
}

func (r *EvidenceRepository) Create(evidence *model.Evidence) error {
	return r.DB.Create(evidence).Error
}

func (r *EvidenceRepository) FindByID(id uint) (*model.Evidence, error) {
	var evidence model.Evidence
	err := r.DB.First(&evidence, id).Error
	return &evidence, err
}

func (r *EvidenceRepository) FindScoped(cycle, teacher string) ([]model.Evidence, error) {
	var evidences []model.Evidence
	query := r.DB.Order("created_at")
	if cycle != "" {
		query = query.Where("cycle = ?", cycle)
	}
	if teacher != "" {
		query = query.Where("teacher = ?", teacher)
	}
	err := query.Find(&evidences).Error
	return evidences, err
}

func (r *EvidenceRepository) UpdateStatus(id uint, status model.EvidenceStatus) error {
	return r.DB.Model(&model.Evidence{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}

func (r *EvidenceRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Evidence{}, id).Error
}
