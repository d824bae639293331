package repositories

import (
	"context"

	"editorial/internal/domain/models"
)

// UserRepository persists the usuarios table.
type UserRepository interface {
	// EnsureSchema creates the table if it does not exist yet.
	EnsureSchema(ctx context.Context) error

	// Create inserts a user and fills in ID and timestamps.
	// Fails with a domain.ConflictError when the email is already registered.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns the user with the given email, domain.ErrNotFound otherwise.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, domain.ErrNotFound otherwise.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
