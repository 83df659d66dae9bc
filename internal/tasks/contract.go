package tasks

import (
	"context"
	"fmt"

	"contribhub/internal/model"
)

// ContractTasks are the active tasks of one contract. It only represents
// them: the filtering is done by whoever builds it.
type ContractTasks struct {
	snapshot
	id      model.ContractID
	storage Storage
}

var _ Tasks = (*ContractTasks)(nil)

func NewContractTasks(id model.ContractID, tasks []*model.Task, storage Storage) *ContractTasks {
	return &ContractTasks{snapshot: snapshot(tasks), id: id, storage: storage}
}

// ContractID is the contract this view is scoped to.
func (c *ContractTasks) ContractID() model.ContractID {
	return c.id
}

// Register always fails. Registering a task that is already bound to a
// contract is not supported.
func (c *ContractTasks) Register(context.Context, model.Issue) (*model.Task, error) {
	return nil, &ScopeError{
		Scope: "contract " + c.id.String(),
		Op:    "register",
		Msg:   "The tasks API doesn't support yet registering a task with a contract attached.",
	}
}

func (c *ContractTasks) OfProject(repoFullName, provider string) (Tasks, error) {
	return NewProjectTasks(repoFullName, provider, c.filter(inProject(repoFullName, provider)), c.storage), nil
}

func (c *ContractTasks) OfContributor(username, provider string) (Tasks, error) {
	return NewContributorTasks(username, provider, c.filter(assignedTo(username, provider)), c.storage), nil
}

func (c *ContractTasks) OfContract(id model.ContractID) (Tasks, error) {
	if id == c.id {
		return c, nil
	}
	return nil, &ScopeError{
		Scope: "contract " + c.id.String(),
		Op:    "ofContract",
		Msg: fmt.Sprintf("These are the tasks of Contract: %s. You cannot see the tasks of Contract %s here.",
			c.id, id),
	}
}

func (c *ContractTasks) Unassigned() (Tasks, error) {
	return nil, &ScopeError{
		Scope: "contract " + c.id.String(),
		Op:    "unassigned",
		Msg: fmt.Sprintf("These are the tasks of contributor %s contract %s, no unassigned tasks here.",
			c.id.ContributorUsername, c.id),
	}
}
