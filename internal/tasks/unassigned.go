package tasks

import (
	"context"

	"contribhub/internal/model"
)

// UnassignedTasks are tasks without a contract.
type UnassignedTasks struct {
	snapshot
	storage Storage
}

var _ Tasks = (*UnassignedTasks)(nil)

func NewUnassignedTasks(tasks []*model.Task, storage Storage) *UnassignedTasks {
	return &UnassignedTasks{snapshot: snapshot(tasks), storage: storage}
}

// Register stores a new task; new tasks are unassigned.
func (u *UnassignedTasks) Register(ctx context.Context, issue model.Issue) (*model.Task, error) {
	return register(ctx, u.storage, u.snapshot, issue)
}

func (u *UnassignedTasks) OfProject(repoFullName, provider string) (Tasks, error) {
	return NewUnassignedTasks(u.filter(inProject(repoFullName, provider)), u.storage), nil
}

func (u *UnassignedTasks) OfContributor(username, provider string) (Tasks, error) {
	return nil, &ScopeError{
		Scope: "unassigned",
		Op:    "ofContributor",
		Msg:   "These are the unassigned tasks, none of them belongs to contributor " + username + "@" + provider + ".",
	}
}

func (u *UnassignedTasks) OfContract(id model.ContractID) (Tasks, error) {
	return nil, &ScopeError{
		Scope: "unassigned",
		Op:    "ofContract",
		Msg:   "These are the unassigned tasks, none of them belongs to Contract " + id.String() + ".",
	}
}

func (u *UnassignedTasks) Unassigned() (Tasks, error) {
	return u, nil
}
