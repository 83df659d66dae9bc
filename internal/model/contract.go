package model

import (
	"fmt"
	"strings"
)

type Role string

// Contract roles.
const (
	RoleDev  Role = "DEV"
	RoleRev  Role = "REV"
	RoleQA   Role = "QA"
	RoleArch Role = "ARCH"
	RolePO   Role = "PO"
)

var roles = []Role{RoleDev, RoleRev, RoleQA, RoleArch, RolePO}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range roles {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown contract role %q", s)
}

// Contributor is a provider user who can work on tasks.
type Contributor struct {
	Username string
	Provider string
}

// ContractID identifies a contract: a contributor working on a project in one role.
type ContractID struct {
	RepoFullName        string
	ContributorUsername string
	Provider            string
	Role                Role
}

func (id ContractID) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", id.RepoFullName, id.ContributorUsername, id.Provider, id.Role)
}

// Contract binds a Contributor to a Project.
type Contract struct {
	ID          ContractID
	Project     Project
	Contributor Contributor
	// HourlyRate in cents.
	HourlyRate int64
}

// NewContract builds a contract whose id is derived from project, contributor and role.
func NewContract(project Project, contributor Contributor, role Role, hourlyRate int64) Contract {
	return Contract{
		ID: ContractID{
			RepoFullName:        project.RepoFullName,
			ContributorUsername: contributor.Username,
			Provider:            project.Provider,
			Role:                role,
		},
		Project:     project,
		Contributor: contributor,
		HourlyRate:  hourlyRate,
	}
}
