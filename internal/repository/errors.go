package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskExists is returned when an issue is already registered as a task of the project
	ErrTaskExists = errors.New("task already exists")

	// ErrProjectNotFound is returned when a task refers to a repository that is not a project
	ErrProjectNotFound = errors.New("project not found")

	// ErrContractNotFound is returned when a task is bound to an unknown contract
	ErrContractNotFound = errors.New("contract not found")
)
