package model

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultDeadline is the time a contributor has to solve an assigned task.
const DefaultDeadline = 10 * 24 * time.Hour

var (
	ErrInvalidDeadline  = errors.New("deadline must be after the assignment date")
	ErrContractMismatch = errors.New("contract does not match task")
)

// Task is one unit of work: an issue of a project that needs a contributor
// in a given role. A task is assigned iff it has a contract and an
// assignment date. Tasks never change in place; Assign and Unassign
// return new values.
type Task struct {
	project        Project
	issueID        string
	role           Role
	contract       *Contract
	assignmentDate time.Time
	deadline       time.Time
}

// NewTask returns an unassigned task.
func NewTask(project Project, issueID string, role Role) *Task {
	return &Task{
		project: project,
		issueID: issueID,
		role:    role,
	}
}

// NewAssignedTask returns a task bound to contract. The project and role
// come from the contract.
func NewAssignedTask(contract Contract, issueID string, assignmentDate, deadline time.Time) (*Task, error) {
	if assignmentDate.IsZero() || !deadline.After(assignmentDate) {
		return nil, fmt.Errorf("task %s: %w", issueID, ErrInvalidDeadline)
	}
	c := contract
	return &Task{
		project:        contract.Project,
		issueID:        issueID,
		role:           contract.ID.Role,
		contract:       &c,
		assignmentDate: assignmentDate,
		deadline:       deadline,
	}, nil
}

func (t *Task) Project() Project {
	return t.project
}

func (t *Task) IssueID() string {
	return t.issueID
}

func (t *Task) Role() Role {
	return t.role
}

// Contract returns the bound contract, nil when unassigned.
func (t *Task) Contract() *Contract {
	if t.contract == nil {
		return nil
	}
	c := *t.contract
	return &c
}

// Assignee returns the contributor of the bound contract, nil when unassigned.
func (t *Task) Assignee() *Contributor {
	if t.contract == nil {
		return nil
	}
	c := t.contract.Contributor
	return &c
}

// AssignmentDate is zero when the task is unassigned.
func (t *Task) AssignmentDate() time.Time {
	return t.assignmentDate
}

// Deadline is zero when the task is unassigned.
func (t *Task) Deadline() time.Time {
	return t.deadline
}

func (t *Task) IsAssigned() bool {
	return t.contract != nil
}

// Is reports whether the task has the given identity.
func (t *Task) Is(issueID, repoFullName, provider string) bool {
	return t.issueID == issueID && t.project.Is(repoFullName, provider)
}

// Issue looks the task's issue up through finder. Nothing is cached.
func (t *Task) Issue(ctx context.Context, finder IssueFinder) (*Issue, error) {
	return finder.GetByID(ctx, t.project.RepoFullName, t.project.Provider, t.issueID)
}

// Assign returns a copy of the task bound to contract at the given time,
// with the default deadline.
func (t *Task) Assign(contract Contract, at time.Time) (*Task, error) {
	return t.AssignUntil(contract, at, at.Add(DefaultDeadline))
}

// AssignUntil is Assign with an explicit deadline.
func (t *Task) AssignUntil(contract Contract, at, deadline time.Time) (*Task, error) {
	if !contract.Project.Is(t.project.RepoFullName, t.project.Provider) || contract.ID.Role != t.role {
		return nil, fmt.Errorf("task %s, contract %s: %w", t.issueID, contract.ID, ErrContractMismatch)
	}
	assigned, err := NewAssignedTask(contract, t.issueID, at, deadline)
	if err != nil {
		return nil, err
	}
	assigned.project = t.project
	return assigned, nil
}

// Unassign returns a copy of the task without contract, assignment date or deadline.
func (t *Task) Unassign() *Task {
	return NewTask(t.project, t.issueID, t.role)
}
