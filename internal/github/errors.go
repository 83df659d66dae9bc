package github

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated is returned when GitHub answers 401 Unauthorized.
var ErrNotAuthenticated = errors.New("Current User is not authenticated.") //nolint:staticcheck // message is part of the API

// UnexpectedStatusError reports a response that is neither success nor 401.
type UnexpectedStatusError struct {
	What     string
	Expected int
	Actual   int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("Unable to fetch Github %s. Expected %d %s, but got: %d",
		e.What, e.Expected, http.StatusText(e.Expected), e.Actual)
}

// checkStatus maps status codes to the package errors.
func checkStatus(what string, res Resource) error {
	switch res.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrNotAuthenticated
	default:
		return &UnexpectedStatusError{What: what, Expected: http.StatusOK, Actual: res.StatusCode}
	}
}
