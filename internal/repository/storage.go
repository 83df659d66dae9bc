package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contribhub/internal/model"
	"contribhub/internal/tasks"

	"gorm.io/gorm"
)

// Storage is the postgres backed collaborator of the task collections.
type Storage struct {
	tasks           *TaskRepository
	projects        *ProjectRepository
	contracts       *ContractRepository
	users           *UserRepository
	projectManagers *ProjectManagerRepository
}

var _ tasks.Storage = (*Storage)(nil)

func NewStorage(db *gorm.DB) *Storage {
	return &Storage{
		tasks:           NewTaskRepository(db),
		projects:        NewProjectRepository(db),
		contracts:       NewContractRepository(db),
		users:           NewUserRepository(db),
		projectManagers: NewProjectManagerRepository(db),
	}
}

// Save stores a newly registered task. It never overwrites a stored one.
func (s *Storage) Save(ctx context.Context, task *model.Task) error {
	err := s.tasks.Insert(ctx, task)
	if errors.Is(err, ErrTaskExists) {
		return fmt.Errorf("%w: %w", tasks.ErrAlreadyRegistered, err)
	}
	return err
}

func (s *Storage) Project(ctx context.Context, repoFullName, provider string) (*model.Project, error) {
	return s.projects.GetByRepo(ctx, repoFullName, provider)
}

func (s *Storage) Users() *UserRepository {
	return s.users
}

func (s *Storage) ProjectManagers() *ProjectManagerRepository {
	return s.projectManagers
}

func (s *Storage) Contracts() *ContractRepository {
	return s.contracts
}

// Tasks loads every stored task into a root collection.
func (s *Storage) Tasks(ctx context.Context) (tasks.Tasks, error) {
	all, err := s.tasks.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks.NewStoredTasks(s, all), nil
}

// Assign binds task to the contract with the given id, from at until the default deadline.
func (s *Storage) Assign(ctx context.Context, task *model.Task, id model.ContractID, at time.Time) (*model.Task, error) {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, fmt.Errorf("assign task %s to %s: %w", task.IssueID(), id, ErrContractNotFound)
	}
	assigned, err := task.Assign(*contract, at)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Save(ctx, assigned); err != nil {
		return nil, err
	}
	return assigned, nil
}

// Unassign removes the contract of task.
func (s *Storage) Unassign(ctx context.Context, task *model.Task) (*model.Task, error) {
	unassigned := task.Unassign()
	if err := s.tasks.Save(ctx, unassigned); err != nil {
		return nil, err
	}
	return unassigned, nil
}

// Close removes the task of an issue closed upstream.
func (s *Storage) Close(ctx context.Context, issueID, repoFullName, provider string) error {
	return s.tasks.Delete(ctx, issueID, repoFullName, provider)
}
