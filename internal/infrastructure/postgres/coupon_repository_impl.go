package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
	"github.com/nestorahq/nestora-api/internal/domain/repository"
)

type CouponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

func (r *CouponRepository) List(ctx context.Context) ([]entity.Coupon, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, coupon_id, discount_type, value, description, available, created_at
		FROM coupons
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Coupon
	for rows.Next() {
		var c entity.Coupon
		if err := rows.Scan(&c.ID, &c.CouponID, &c.DiscountType, &c.Value,
			&c.Description, &c.Available, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CouponRepository) GetByCouponID(ctx context.Context, couponID string) (*entity.Coupon, error) {
	c := &entity.Coupon{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, coupon_id, discount_type, value, description, available, created_at
		FROM coupons
		WHERE coupon_id = $1
	`, couponID)

	if err := row.Scan(&c.ID, &c.CouponID, &c.DiscountType, &c.Value,
		&c.Description, &c.Available, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

var _ repository.CouponRepository = (*CouponRepository)(nil)
