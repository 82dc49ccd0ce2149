package repository

import (
	"context"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
)

// AgreementRepository defines agreement persistence. Create must be
// atomic with respect to the one-agreement-per-email rule: two concurrent
// inserts for the same email may not both succeed.
type AgreementRepository interface {
	// Create inserts the agreement and fills in ID/CreatedAt. Returns
	// ErrDuplicate when the user already holds an agreement of any status.
	Create(ctx context.Context, a *entity.Agreement) error
	GetByEmail(ctx context.Context, email string) (*entity.Agreement, error)
	GetByApartmentID(ctx context.Context, apartmentID string) (*entity.Agreement, error)
}
