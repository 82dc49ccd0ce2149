package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
)

func TestCouponResolveUnknownIsNotAnError(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo(), nil, nil)

	c, err := svc.Resolve(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCouponResolveEmptyID(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo(), nil, nil)

	c, err := svc.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCouponResolveKnown(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo(entity.Coupon{
		CouponID:     "NEWYEAR10",
		DiscountType: entity.DiscountPercentage,
		Value:        10,
	}), nil, nil)

	c, err := svc.Resolve(context.Background(), "NEWYEAR10")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, entity.DiscountPercentage, c.DiscountType)
	assert.Equal(t, float64(10), c.Value)
}
