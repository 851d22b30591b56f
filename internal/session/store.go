// Package session provides the server-side login session store. Sessions
// are opaque IDs handed to clients in a cookie; all state lives behind the
// Store so logout and inactivity expiry take effect immediately.
package session

import (
	"context"
	"errors"

	"github.com/edutech/exam-backend/internal/model"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a session ID is unknown or has expired.
var ErrNotFound = errors.New("session not found or expired")

// Data is the identity bound to a session.
type Data struct {
	UserID   uuid.UUID  `json:"user_id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

// Store persists sessions with an inactivity TTL. Get must slide the
// expiry forward so an active user is never logged out mid-use.
type Store interface {
	Create(ctx context.Context, data Data) (string, error)
	Get(ctx context.Context, id string) (*Data, error)
	Delete(ctx context.Context, id string) error
}
