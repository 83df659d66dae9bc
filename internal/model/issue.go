package model

import "context"

// Issue is an issue or pull request of a provider repository.
type Issue struct {
	ID           string
	RepoFullName string
	Provider     string
	Title        string
	State        string
	PullRequest  bool
}

// Role is the contract role needed to work on the issue: pull requests are
// reviewed, everything else is developed.
func (i Issue) Role() Role {
	if i.PullRequest {
		return RoleRev
	}
	return RoleDev
}

// IssueFinder looks issues up at the provider. A nil issue with a nil error
// means the issue no longer exists upstream.
type IssueFinder interface {
	GetByID(ctx context.Context, repoFullName, provider, issueID string) (*Issue, error)
}
