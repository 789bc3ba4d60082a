package repository

import (
	"context"
	"sync"

	"acadplan_backend/internal/model"

	"gorm.io/gorm"
)

// Scope restricts record lookups. An empty field imposes no restriction.
type Scope struct {
	Cycle   string
	Teacher string
}

// RecordSets holds the materialized records backing one report request.
type RecordSets struct {
	Plans    []model.Plan
	Progress []model.Progress
	Evidence []model.Evidence
}

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// FetchScoped runs the three collection lookups concurrently. The first
// store error wins and is returned untouched.
func (r *ReportRepository) FetchScoped(ctx context.Context, scope Scope) (*RecordSets, error) {
	sets := &RecordSets{}

	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		errs[0] = r.scopedQuery(ctx, scope).Find(&sets.Plans).Error
	}()
	go func() {
		defer wg.Done()
		errs[1] = r.scopedQuery(ctx, scope).Find(&sets.Progress).Error
	}()
	go func() {
		defer wg.Done()
		errs[2] = r.scopedQuery(ctx, scope).Find(&sets.Evidence).Error
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return sets, nil
}

func (r *ReportRepository) scopedQuery(ctx context.Context, scope Scope) *gorm.DB {
	query := r.DB.WithContext(ctx).Order("created_at")
	if scope.Cycle != "" {
		query = query.Where("cycle = ?", scope.Cycle)
	}
	if scope.Teacher != "" {
		query = query.Where("teacher = ?", scope.Teacher)
	}
	return query
}
