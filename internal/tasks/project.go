package tasks

import (
	"context"
	"fmt"

	"contribhub/internal/model"
)

// ProjectTasks are the tasks of one project.
type ProjectTasks struct {
	snapshot
	repoFullName string
	provider     string
	storage      Storage
}

var _ Tasks = (*ProjectTasks)(nil)

// NewProjectTasks trusts tasks to belong to the given project.
func NewProjectTasks(repoFullName, provider string, tasks []*model.Task, storage Storage) *ProjectTasks {
	return &ProjectTasks{
		snapshot:     snapshot(tasks),
		repoFullName: repoFullName,
		provider:     provider,
		storage:      storage,
	}
}

func (p *ProjectTasks) scope() string {
	return fmt.Sprintf("project %s@%s", p.repoFullName, p.provider)
}

func (p *ProjectTasks) Register(ctx context.Context, issue model.Issue) (*model.Task, error) {
	if issue.RepoFullName != p.repoFullName || issue.Provider != p.provider {
		return nil, &ScopeError{
			Scope: p.scope(),
			Op:    "register",
			Msg: fmt.Sprintf("These are the tasks of %s. Issue %s belongs to %s@%s.",
				p.scope(), issue.ID, issue.RepoFullName, issue.Provider),
		}
	}
	return register(ctx, p.storage, p.snapshot, issue)
}

func (p *ProjectTasks) OfProject(repoFullName, provider string) (Tasks, error) {
	if repoFullName == p.repoFullName && provider == p.provider {
		return p, nil
	}
	return nil, &ScopeError{
		Scope: p.scope(),
		Op:    "ofProject",
		Msg: fmt.Sprintf("These are the tasks of %s. You cannot see the tasks of project %s@%s here.",
			p.scope(), repoFullName, provider),
	}
}

func (p *ProjectTasks) OfContributor(username, provider string) (Tasks, error) {
	return NewContributorTasks(username, provider, p.filter(assignedTo(username, provider)), p.storage), nil
}

func (p *ProjectTasks) OfContract(id model.ContractID) (Tasks, error) {
	if id.RepoFullName != p.repoFullName || id.Provider != p.provider {
		return nil, &ScopeError{
			Scope: p.scope(),
			Op:    "ofContract",
			Msg: fmt.Sprintf("These are the tasks of %s. Contract %s belongs to another project.",
				p.scope(), id),
		}
	}
	return NewContractTasks(id, p.filter(ofContract(id)), p.storage), nil
}

func (p *ProjectTasks) Unassigned() (Tasks, error) {
	return NewUnassignedTasks(p.filter(unassigned), p.storage), nil
}
