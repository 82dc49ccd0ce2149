package repository

import (
	"context"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
)

// UserRepository defines user-related database operations.
type UserRepository interface {
	// Create inserts the user. Inserting an email that already exists is a
	// no-op; the bool reports whether a row was written.
	Create(ctx context.Context, u *entity.User) (bool, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
