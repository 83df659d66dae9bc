package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID
	Username    string
	Provider    string
	Email       string
	AccessToken string
	CreatedAt   time.Time
}

// ProjectManager manages projects on behalf of their owners, using its own provider token.
type ProjectManager struct {
	ID          uuid.UUID
	Username    string
	Provider    string
	AccessToken string
}
