package repository

import (
	"acadplan_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindAll(role model.UserRole) ([]*model.User, error) {
	var users []*model.User
	query := r.DB.Order("name")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	err := query.Find(&users).Error
	return users, err
}

// ListTeacherNames returns the distinct names of active teacher accounts.
func (r *UserRepository) ListTeacherNames() ([]string, error) {
	var names []string
	err := r.DB.Model(&model.User{}).
		Where("role = ? AND active = ?", model.Teacher, true).
		Order("name").
		Distinct().
		Pluck("name", &names).Error
	return names, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}
