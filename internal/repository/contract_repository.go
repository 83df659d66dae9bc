package repository

import (
	"context"
	"errors"

	"contribhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// Create stores a contract of an existing project
func (r *ContractRepository) Create(ctx context.Context, contract model.Contract) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p projectRecord
		err := tx.Where("repo_full_name = ? AND provider = ?", contract.ID.RepoFullName, contract.ID.Provider).First(&p).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}
		return tx.Omit(clause.Associations).Create(&contractRecord{
			ID:                  uuid.New(),
			ProjectID:           p.ID,
			ContributorUsername: contract.ID.ContributorUsername,
			Role:                string(contract.ID.Role),
			HourlyRate:          contract.HourlyRate,
		}).Error
	})
}

// GetByID returns nil, nil when there is no such contract
func (r *ContractRepository) GetByID(ctx context.Context, id model.ContractID) (*model.Contract, error) {
	var rec contractRecord
	err := r.db.WithContext(ctx).
		Preload("Project").
		Joins("JOIN projects ON projects.id = contracts.project_id").
		Where("projects.repo_full_name = ? AND projects.provider = ? AND contracts.contributor_username = ? AND contracts.role = ?",
			id.RepoFullName, id.Provider, id.ContributorUsername, string(id.Role)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	contract := rec.toModel(rec.Project.toModel())
	return &contract, nil
}
