package repository

import (
	"context"
	"errors"

	"contribhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectManagerRepository struct {
	db *gorm.DB
}

func NewProjectManagerRepository(db *gorm.DB) *ProjectManagerRepository {
	return &ProjectManagerRepository{db: db}
}

// Pick returns the project manager for newly activated projects, the
// longest serving one. nil, nil when there is none.
func (r *ProjectManagerRepository) Pick(ctx context.Context) (*model.ProjectManager, error) {
	var rec projectManagerRecord
	err := r.db.WithContext(ctx).Order("created_at").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.toModel(), nil
}

func (r *ProjectManagerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectManager, error) {
	var rec projectManagerRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.toModel(), nil
}
