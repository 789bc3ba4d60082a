package repository

import (
	"acadplan_backend/internal/model"

	"gorm.io/gorm"
)

type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

func (r *PlanRepository) Create(plan *model.Plan) error {
	return r.DB.Create(plan).Error
}

func (r *PlanRepository) FindByID(id uint) (*model.Plan, error) {
	var plan model.Plan
	err := r.DB.First(&plan, id).Error
	return &plan, err
}

func (r *PlanRepository) FindScoped(cycle, teacher string) ([]model.Plan, error) {
	var plans []model.Plan
	query := r.DB.Order("created_at")
	if cycle != "" {
		query = query.Where("cycle = ?", cycle)
	}
	if teacher != "" {
		query = query.Where("teacher = ?", teacher)
	}
	err := query.Find(&plans).Error
	return plans, err
}

// FindHistory lists a teacher's plans across all cycles, newest cycle first.
func (r *PlanRepository) FindHistory(teacher string) ([]model.Plan, error) {
	var plans []model.Plan
	err := r.DB.Where("teacher = ?", teacher).
		Order("cycle DESC, created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (r *PlanRepository) Update(plan *model.Plan) error {
	return r.DB.Save(plan).Error
}

func (r *PlanRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Plan{}, id).Error
}
