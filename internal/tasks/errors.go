package tasks

import (
	"errors"
	"fmt"

	"contribhub/internal/model"
)

var (
	// ErrUnsupportedScope marks operations a collection refuses by
	// construction. It signals a programming error, never a transient one.
	ErrUnsupportedScope = errors.New("unsupported tasks scope")

	ErrProjectNotFound   = errors.New("project not found")
	ErrAlreadyRegistered = errors.New("task already registered")
	ErrInvalidIssue      = errors.New("invalid issue")
)

// ScopeError reports an operation refused by a scoped collection.
type ScopeError struct {
	Scope string
	Op    string
	Msg   string
}

func (e *ScopeError) Error() string {
	return e.Msg
}

func (e *ScopeError) Unwrap() error {
	return ErrUnsupportedScope
}

// RegisterError wraps a failed registration with the issue it was for.
type RegisterError struct {
	Issue model.Issue
	Err   error
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("register issue %s of %s@%s: %v", e.Issue.ID, e.Issue.RepoFullName, e.Issue.Provider, e.Err)
}

func (e *RegisterError) Unwrap() error {
	return e.Err
}

func validateIssue(issue model.Issue) error {
	switch {
	case issue.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidIssue)
	case issue.RepoFullName == "":
		return fmt.Errorf("%w: missing repository", ErrInvalidIssue)
	case !model.IsProvider(issue.Provider):
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidIssue, issue.Provider)
	}
	return nil
}
