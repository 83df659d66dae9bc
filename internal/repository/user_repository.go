package repository

import (
	"context"
	"errors"

	"contribhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username, provider string) (*model.User, error)
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	rec := userRecord{
		ID:          user.ID,
		Username:    user.Username,
		Provider:    user.Provider,
		Email:       user.Email,
		AccessToken: user.AccessToken,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}
	user.CreatedAt = rec.CreatedAt
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username, provider string) (*model.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where("username = ? AND provider = ?", username, provider).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.toModel(), nil
}
