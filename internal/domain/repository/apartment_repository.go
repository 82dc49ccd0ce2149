package repository

import (
	"context"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
)

// ApartmentFilter narrows listings to a rent range. Zero bounds are open.
type ApartmentFilter struct {
	MinRent int
	MaxRent int
}

// ApartmentRepository defines apartment inventory reads and photo writes.
type ApartmentRepository interface {
	List(ctx context.Context, f ApartmentFilter, offset, limit int) ([]entity.Apartment, error)
	Count(ctx context.Context, f ApartmentFilter) (int64, error)
	GetByID(ctx context.Context, id string) (*entity.Apartment, error)
	AddPhotoURL(ctx context.Context, id, url string) error
}
