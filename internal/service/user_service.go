package service

import (
	"context"
	"encoding/json"
	"time"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/repository"
	"acadplan_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	teacherNamesKey = "acadplan:teacher-names"
	teacherNamesTTL = 5 * time.Minute
)

type UserService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
}

func NewUserService(userRepo *repository.UserRepository, rdb *redis.Client) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Redis:    rdb,
	}
}

func (s *UserService) ListUsers(role model.UserRole) ([]*model.User, error) {
	return s.UserRepo.FindAll(role)
}

// ListTeacherNames backs the report filter dropdown. The name list is
// cached briefly in Redis; reports themselves are never cached.
func (s *UserService) ListTeacherNames(ctx context.Context) ([]string, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, teacherNamesKey).Result()
		if err == nil {
			var names []string
			if err := json.Unmarshal([]byte(val), &names); err == nil {
				return names, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("teacher name cache read failed", zap.Error(err))
		}
	}

	names, err := s.UserRepo.ListTeacherNames()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if encoded, err := json.Marshal(names); err == nil {
			if err := s.Redis.Set(ctx, teacherNamesKey, encoded, teacherNamesTTL).Err(); err != nil {
				logger.Log.Warn("teacher name cache write failed", zap.Error(err))
			}
		}
	}
	return names, nil
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

func (s *UserService) UpdateProfile(userID uint, name, department string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if department != "" {
		user.Department = department
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
