package repository

import (
	"context"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
)

// CouponRepository defines coupon reads.
type CouponRepository interface {
	List(ctx context.Context) ([]entity.Coupon, error)
	// GetByCouponID looks up by the external-facing code, not the row ID.
	GetByCouponID(ctx context.Context, couponID string) (*entity.Coupon, error)
}
