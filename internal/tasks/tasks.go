// Package tasks holds the task collections of a project management
// service: the stored root collection and its scoped views.
//
// Every collection is a snapshot over the tasks handed to it on
// construction. Narrowing a collection filters that snapshot; nothing is
// ever fetched from storage again. Only registering a new task reaches the
// Storage collaborator.
package tasks

import (
	"context"
	"iter"
	"slices"

	"contribhub/internal/model"
)

// Tasks is a queryable, ordered set of tasks.
type Tasks interface {
	// GetByID returns the first task with the given identity, nil if none.
	GetByID(issueID, repoFullName, provider string) *model.Task
	// Register creates and stores a new unassigned task for issue.
	Register(ctx context.Context, issue model.Issue) (*model.Task, error)
	OfProject(repoFullName, provider string) (Tasks, error)
	// OfContributor keeps the assigned tasks of a contributor.
	OfContributor(username, provider string) (Tasks, error)
	OfContract(id model.ContractID) (Tasks, error)
	Unassigned() (Tasks, error)
	All() iter.Seq[*model.Task]
	Len() int
}

// Storage persists tasks and resolves projects.
type Storage interface {
	// Save stores a new task. It fails with ErrAlreadyRegistered when the
	// issue is already stored, whatever the caller's snapshot holds.
	Save(ctx context.Context, task *model.Task) error
	// Project returns nil, nil when no such project is activated.
	Project(ctx context.Context, repoFullName, provider string) (*model.Project, error)
}

type snapshot []*model.Task

func (s snapshot) GetByID(issueID, repoFullName, provider string) *model.Task {
	for _, t := range s {
		if t.Is(issueID, repoFullName, provider) {
			return t
		}
	}
	return nil
}

func (s snapshot) All() iter.Seq[*model.Task] {
	return slices.Values(s)
}

func (s snapshot) Len() int {
	return len(s)
}

func (s snapshot) filter(keep func(*model.Task) bool) snapshot {
	out := make(snapshot, 0, len(s))
	for _, t := range s {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func inProject(repoFullName, provider string) func(*model.Task) bool {
	return func(t *model.Task) bool {
		return t.Project().Is(repoFullName, provider)
	}
}

func assignedTo(username, provider string) func(*model.Task) bool {
	return func(t *model.Task) bool {
		a := t.Assignee()
		return a != nil && a.Username == username && a.Provider == provider
	}
}

func ofContract(id model.ContractID) func(*model.Task) bool {
	return func(t *model.Task) bool {
		c := t.Contract()
		return c != nil && c.ID == id
	}
}

func unassigned(t *model.Task) bool {
	return !t.IsAssigned()
}

// register validates issue, resolves its project and stores a new task.
// Uniqueness is checked against known, the caller's snapshot; storage
// enforces it across sessions.
func register(ctx context.Context, storage Storage, known snapshot, issue model.Issue) (*model.Task, error) {
	if err := validateIssue(issue); err != nil {
		return nil, err
	}
	if known.GetByID(issue.ID, issue.RepoFullName, issue.Provider) != nil {
		return nil, &RegisterError{Issue: issue, Err: ErrAlreadyRegistered}
	}
	project, err := storage.Project(ctx, issue.RepoFullName, issue.Provider)
	if err != nil {
		return nil, &RegisterError{Issue: issue, Err: err}
	}
	if project == nil {
		return nil, &RegisterError{Issue: issue, Err: ErrProjectNotFound}
	}
	task := model.NewTask(*project, issue.ID, issue.Role())
	if err := storage.Save(ctx, task); err != nil {
		return nil, &RegisterError{Issue: issue, Err: err}
	}
	return task, nil
}
