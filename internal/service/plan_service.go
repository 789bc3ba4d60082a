package service

import (
	"fmt"
	"time"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/repository"
	"acadplan_backend/internal/util"
	"acadplan_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PlanService struct {
	PlanRepo     *repository.PlanRepository
	UserRepo     *repository.UserRepository
	Notification *NotificationService
}

func NewPlanService(planRepo *repository.PlanRepository, userRepo *repository.UserRepository, notification *NotificationService) *PlanService {
	return &PlanService{
		PlanRepo:     planRepo,
		UserRepo:     userRepo,
		Notification: notification,
	}
}

// CurrentCycle derives the active school-year label. The cycle turns over
// in August.
func CurrentCycle(now time.Time) string {
	year := now.Year()
	if now.Month() < time.August {
		return fmt.Sprintf("%d-%d", year-1, year)
	}
	return fmt.Sprintf("%d-%d", year, year+1)
}

func (s *PlanService) Create(plan *model.Plan) error {
	if plan.Cycle == "" {
		plan.Cycle = CurrentCycle(time.Now())
	}
	if plan.Status == "" {
		plan.Status = model.PlanDraft
	}
	return s.PlanRepo.Create(plan)
}

func (s *PlanService) List(cycle, teacher string) ([]model.Plan, error) {
	return s.PlanRepo.FindScoped(cycle, teacher)
}

func (s *PlanService) ListCurrentCycle(teacher string) ([]model.Plan, error) {
	return s.PlanRepo.FindScoped(CurrentCycle(time.Now()), teacher)
}

func (s *PlanService) History(teacher string) ([]model.Plan, error) {
	return s.PlanRepo.FindHistory(teacher)
}

func (s *PlanService) GetByID(id uint) (*model.Plan, error) {
	plan, err := s.PlanRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrPlanNotFound
	}
	return plan, err
}

// Update lets the owning teacher edit a plan that has not been approved.
func (s *PlanService) Update(id uint, claims *util.Claims, subject, objectives string, status model.PlanStatus) (*model.Plan, error) {
	plan, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if claims.Role == model.Teacher && plan.Teacher != claims.Name {
		return nil, util.ErrPermissionDenied
	}
	if plan.Status == model.PlanApproved && claims.Role == model.Teacher {
		return nil, util.ErrPermissionDenied
	}

	if subject != "" {
		plan.Subject = subject
	}
	if objectives != "" {
		plan.Objectives = objectives
	}
	if status == model.PlanDraft || status == model.PlanSubmitted {
		plan.Status = status
	}

	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Review records a coordinator's decision and notifies the plan's teacher.
func (s *PlanService) Review(id uint, status model.PlanStatus, feedback, reviewer string) (*model.Plan, error) {
	if status != model.PlanApproved && status != model.PlanRejected {
		return nil, fmt.Errorf("review status must be approved or rejected")
	}

	plan, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	plan.Status = status
	plan.Feedback = feedback
	plan.ReviewedBy = reviewer
	plan.ReviewedAt = &now

	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}

	s.notifyTeacher(plan)
	return plan, nil
}

func (s *PlanService) Delete(id uint, claims *util.Claims) error {
	plan, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if claims.Role == model.Teacher && plan.Teacher != claims.Name {
		return util.ErrPermissionDenied
	}
	return s.PlanRepo.Delete(id)
}

func (s *PlanService) notifyTeacher(plan *model.Plan) {
	users, err := s.UserRepo.FindAll(model.Teacher)
	if err != nil {
		logger.Log.Warn("looking up teacher for review notification", zap.Error(err))
		return
	}
	for _, user := range users {
		if user.Name == plan.Teacher {
			s.Notification.NotifyPlanReviewed(user, plan)
			return
		}
	}
	logger.Log.Warn("no account found for reviewed plan's teacher", zap.String("teacher", plan.Teacher))
}
