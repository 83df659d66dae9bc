package repository

import (
	"context"
	"errors"

	"contribhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create activates a repository as a project managed by managerID
func (r *ProjectRepository) Create(ctx context.Context, repoFullName, provider string, managerID uuid.UUID) (*model.Project, error) {
	rec := projectRecord{
		ID:           uuid.New(),
		RepoFullName: repoFullName,
		Provider:     provider,
		ManagerID:    managerID,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, err
	}
	project := rec.toModel()
	return &project, nil
}

// GetByRepo returns nil, nil when the repository is not a project
func (r *ProjectRepository) GetByRepo(ctx context.Context, repoFullName, provider string) (*model.Project, error) {
	var rec projectRecord
	err := r.db.WithContext(ctx).Where("repo_full_name = ? AND provider = ?", repoFullName, provider).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	project := rec.toModel()
	return &project, nil
}
