package domain

import (
	"github.com/google/uuid"
)

type AdminRole string

const (
	Admin AdminRole = "admin"
)

// TokenPayload is the decoded admin console session.
type TokenPayload struct {
	ID    uuid.UUID
	Email string
	Role  AdminRole
}
