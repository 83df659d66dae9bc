package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"contribhub/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Insert stores a new task. A task already stored for the issue in the
// project is left untouched and ErrTaskExists is returned.
func (r *TaskRepository) Insert(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := newTaskRecord(tx, task)
		if err != nil {
			return err
		}
		result := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "issue_id"}, {Name: "project_id"}},
			DoNothing: true,
		}).Create(rec)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskExists
		}
		return nil
	})
}

// Save inserts the task or, if its issue is already registered in the
// project, overwrites its assignment.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := newTaskRecord(tx, task)
		if err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "issue_id"}, {Name: "project_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"contract_id", "assignment_date", "deadline"}),
		}).Create(rec).Error
	})
}

// newTaskRecord resolves the project and contract rows of task.
func newTaskRecord(tx *gorm.DB, task *model.Task) (*taskRecord, error) {
	project := task.Project()
	var p projectRecord
	err := tx.Where("repo_full_name = ? AND provider = ?", project.RepoFullName, project.Provider).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	rec := &taskRecord{
		ID:        uuid.New(),
		IssueID:   task.IssueID(),
		ProjectID: p.ID,
		Role:      string(task.Role()),
	}

	if contract := task.Contract(); contract != nil {
		var c contractRecord
		err := tx.Where("project_id = ? AND contributor_username = ? AND role = ?",
			p.ID, contract.ID.ContributorUsername, string(contract.ID.Role)).First(&c).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrContractNotFound
			}
			return nil, err
		}
		assignment, deadline := task.AssignmentDate(), task.Deadline()
		rec.ContractID = &c.ID
		rec.AssignmentDate = &assignment
		rec.Deadline = &deadline
	}
	return rec, nil
}

// All retrieves every task, in registration order
func (r *TaskRepository) All(ctx context.Context) ([]*model.Task, error) {
	var recs []taskRecord
	result := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Contract").
		Order("created_at").
		Find(&recs)
	if result.Error != nil {
		return nil, result.Error
	}

	tasks := make([]*model.Task, 0, len(recs))
	for _, rec := range recs {
		task, err := rec.toModel()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Delete removes the task of a closed issue
func (r *TaskRepository) Delete(ctx context.Context, issueID, repoFullName, provider string) error {
	db := r.db.WithContext(ctx)
	projects := db.Model(&projectRecord{}).
		Select("id").
		Where("repo_full_name = ? AND provider = ?", repoFullName, provider)

	result := db.
		Where("issue_id = ? AND project_id IN (?)", issueID, projects).
		Delete(&taskRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
