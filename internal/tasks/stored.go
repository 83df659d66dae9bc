package tasks

import (
	"context"

	"contribhub/internal/model"
)

// StoredTasks is the root collection: every task loaded from storage.
type StoredTasks struct {
	snapshot
	storage Storage
}

var _ Tasks = (*StoredTasks)(nil)

func NewStoredTasks(storage Storage, tasks []*model.Task) *StoredTasks {
	return &StoredTasks{snapshot: snapshot(tasks), storage: storage}
}

func (s *StoredTasks) Register(ctx context.Context, issue model.Issue) (*model.Task, error) {
	return register(ctx, s.storage, s.snapshot, issue)
}

func (s *StoredTasks) OfProject(repoFullName, provider string) (Tasks, error) {
	return NewProjectTasks(repoFullName, provider, s.filter(inProject(repoFullName, provider)), s.storage), nil
}

func (s *StoredTasks) OfContributor(username, provider string) (Tasks, error) {
	return NewContributorTasks(username, provider, s.filter(assignedTo(username, provider)), s.storage), nil
}

func (s *StoredTasks) OfContract(id model.ContractID) (Tasks, error) {
	return NewContractTasks(id, s.filter(ofContract(id)), s.storage), nil
}

func (s *StoredTasks) Unassigned() (Tasks, error) {
	return NewUnassignedTasks(s.filter(unassigned), s.storage), nil
}
