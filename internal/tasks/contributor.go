package tasks

import (
	"context"
	"fmt"

	"contribhub/internal/model"
)

// ContributorTasks are the tasks assigned to one contributor, across contracts.
type ContributorTasks struct {
	snapshot
	username string
	provider string
	storage  Storage
}

var _ Tasks = (*ContributorTasks)(nil)

// NewContributorTasks trusts tasks to be assigned to the given contributor.
func NewContributorTasks(username, provider string, tasks []*model.Task, storage Storage) *ContributorTasks {
	return &ContributorTasks{
		snapshot: snapshot(tasks),
		username: username,
		provider: provider,
		storage:  storage,
	}
}

func (c *ContributorTasks) scope() string {
	return fmt.Sprintf("contributor %s@%s", c.username, c.provider)
}

// Register always fails: a new task cannot already belong to a contributor.
func (c *ContributorTasks) Register(context.Context, model.Issue) (*model.Task, error) {
	return nil, &ScopeError{
		Scope: c.scope(),
		Op:    "register",
		Msg:   fmt.Sprintf("These are the tasks of %s. New tasks are unassigned, register them on the project.", c.scope()),
	}
}

func (c *ContributorTasks) OfProject(repoFullName, provider string) (Tasks, error) {
	return NewProjectTasks(repoFullName, provider, c.filter(inProject(repoFullName, provider)), c.storage), nil
}

func (c *ContributorTasks) OfContributor(username, provider string) (Tasks, error) {
	if username == c.username && provider == c.provider {
		return c, nil
	}
	return nil, &ScopeError{
		Scope: c.scope(),
		Op:    "ofContributor",
		Msg: fmt.Sprintf("These are the tasks of %s. You cannot see the tasks of %s@%s here.",
			c.scope(), username, provider),
	}
}

func (c *ContributorTasks) OfContract(id model.ContractID) (Tasks, error) {
	if id.ContributorUsername != c.username || id.Provider != c.provider {
		return nil, &ScopeError{
			Scope: c.scope(),
			Op:    "ofContract",
			Msg: fmt.Sprintf("These are the tasks of %s. Contract %s belongs to another contributor.",
				c.scope(), id),
		}
	}
	return NewContractTasks(id, c.filter(ofContract(id)), c.storage), nil
}

func (c *ContributorTasks) Unassigned() (Tasks, error) {
	return nil, &ScopeError{
		Scope: c.scope(),
		Op:    "unassigned",
		Msg:   fmt.Sprintf("These are the tasks of %s, no unassigned tasks here.", c.scope()),
	}
}
