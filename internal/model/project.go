package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Supported code-hosting providers.
const (
	ProviderGithub = "github"
	ProviderGitlab = "gitlab"
)

// IsProvider reports whether p names a supported provider.
func IsProvider(p string) bool {
	return p == ProviderGithub || p == ProviderGitlab
}

// Project is a repository activated for management.
type Project struct {
	ID           uuid.UUID
	RepoFullName string
	Provider     string
	ManagerID    uuid.UUID
}

// Is reports whether the project has the given identity.
func (p Project) Is(repoFullName, provider string) bool {
	return p.RepoFullName == repoFullName && p.Provider == provider
}

func (p Project) String() string {
	return fmt.Sprintf("%s@%s", p.RepoFullName, p.Provider)
}

// Repo is a provider repository, optionally activated as a Project.
type Repo struct {
	FullName string
	Provider string
	Private  bool
	Project  *Project
}
