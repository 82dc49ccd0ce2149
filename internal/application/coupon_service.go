package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
	repo "github.com/nestorahq/nestora-api/internal/domain/repository"
	"github.com/nestorahq/nestora-api/pkg/helpers"
)

const couponCacheTTL = 5 * time.Minute

func couponKey(code string) string {
	return "coupon:" + code
}

// CouponService resolves discount definitions, with a Redis read-through
// cache in front of the store.
type CouponService struct {
	Repo   repo.CouponRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewCouponService(r repo.CouponRepository, rdb *redis.Client, logger *logrus.Logger) *CouponService {
	return &CouponService{Repo: r, Redis: rdb, Logger: logger}
}

func (s *CouponService) List(ctx context.Context) ([]entity.Coupon, error) {
	return s.Repo.List(ctx)
}

// Resolve returns the coupon for a code, or (nil, nil) when the code is
// unknown or empty: an absent coupon means "no discount", never an error.
func (s *CouponService) Resolve(ctx context.Context, couponID string) (*entity.Coupon, error) {
	if couponID == "" {
		return nil, nil
	}

	if s.Redis != nil {
		var cached entity.Coupon
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, couponKey(couponID), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	c, err := s.Repo.GetByCouponID(ctx, couponID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if cErr := helpers.RedisSetJSON(ctx, s.Redis, couponKey(c.CouponID), c, couponCacheTTL); cErr != nil && s.Logger != nil {
			s.Logger.WithError(cErr).WithField("coupon_id", c.CouponID).Warn("coupon cache write failed")
		}
	}
	return c, nil
}
