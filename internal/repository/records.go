package repository

import (
	"fmt"
	"time"

	"contribhub/internal/model"

	"github.com/google/uuid"
)

type projectRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RepoFullName string    `gorm:"not null;uniqueIndex:idx_projects_repo"`
	Provider     string    `gorm:"not null;uniqueIndex:idx_projects_repo"`
	ManagerID    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (projectRecord) TableName() string { return "projects" }

func (r projectRecord) toModel() model.Project {
	return model.Project{
		ID:           r.ID,
		RepoFullName: r.RepoFullName,
		Provider:     r.Provider,
		ManagerID:    r.ManagerID,
	}
}

type contractRecord struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_contracts_key"`
	ContributorUsername string    `gorm:"not null;uniqueIndex:idx_contracts_key"`
	Role                string    `gorm:"not null;uniqueIndex:idx_contracts_key"`
	HourlyRate          int64     `gorm:"not null"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`

	Project projectRecord `gorm:"foreignKey:ProjectID"`
}

func (contractRecord) TableName() string { return "contracts" }

func (r contractRecord) toModel(project model.Project) model.Contract {
	return model.NewContract(
		project,
		model.Contributor{Username: r.ContributorUsername, Provider: project.Provider},
		model.Role(r.Role),
		r.HourlyRate,
	)
}

type taskRecord struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	IssueID        string     `gorm:"not null;uniqueIndex:idx_tasks_issue"`
	ProjectID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tasks_issue"`
	Role           string     `gorm:"not null"`
	ContractID     *uuid.UUID `gorm:"type:uuid"`
	AssignmentDate *time.Time
	Deadline       *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`

	Project  projectRecord   `gorm:"foreignKey:ProjectID"`
	Contract *contractRecord `gorm:"foreignKey:ContractID"`
}

func (taskRecord) TableName() string { return "tasks" }

// toModel needs Project and Contract preloaded.
func (r taskRecord) toModel() (*model.Task, error) {
	project := r.Project.toModel()
	if r.Contract == nil {
		return model.NewTask(project, r.IssueID, model.Role(r.Role)), nil
	}
	if r.AssignmentDate == nil || r.Deadline == nil {
		return nil, fmt.Errorf("task %s of %s: assigned without dates", r.IssueID, project)
	}
	return model.NewAssignedTask(r.Contract.toModel(project), r.IssueID, *r.AssignmentDate, *r.Deadline)
}

type userRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username    string    `gorm:"not null;uniqueIndex:idx_users_username"`
	Provider    string    `gorm:"not null;uniqueIndex:idx_users_username"`
	Email       string
	AccessToken string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (userRecord) TableName() string { return "users" }

func (r userRecord) toModel() *model.User {
	return &model.User{
		ID:          r.ID,
		Username:    r.Username,
		Provider:    r.Provider,
		Email:       r.Email,
		AccessToken: r.AccessToken,
		CreatedAt:   r.CreatedAt,
	}
}

type projectManagerRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username    string    `gorm:"not null"`
	Provider    string    `gorm:"not null"`
	AccessToken string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (projectManagerRecord) TableName() string { return "project_managers" }

func (r projectManagerRecord) toModel() *model.ProjectManager {
	return &model.ProjectManager{
		ID:          r.ID,
		Username:    r.Username,
		Provider:    r.Provider,
		AccessToken: r.AccessToken,
	}
}
