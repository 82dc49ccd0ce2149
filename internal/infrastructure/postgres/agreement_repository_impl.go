package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
	"github.com/nestorahq/nestora-api/internal/domain/repository"
)

type AgreementRepository struct {
	pool *pgxpool.Pool
}

func NewAgreementRepository(pool *pgxpool.Pool) *AgreementRepository {
	return &AgreementRepository{pool: pool}
}

// Create relies on the unique index on agreements(user_email): the
// conditional insert makes the one-agreement-per-user check atomic, so
// concurrent requests from the same user cannot both get a row in.
func (r *AgreementRepository) Create(ctx context.Context, a *entity.Agreement) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO agreements (user_name, user_email, apartment_id, floor_no, block_name, apartment_no, rent, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_email) DO NOTHING
		RETURNING id, created_at
	`, a.UserName, a.UserEmail, a.ApartmentID, a.FloorNo, a.BlockName, a.ApartmentNo, a.Rent, a.Status)

	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *AgreementRepository) GetByEmail(ctx context.Context, email string) (*entity.Agreement, error) {
	return r.getOne(ctx, `user_email = $1`, email)
}

func (r *AgreementRepository) GetByApartmentID(ctx context.Context, apartmentID string) (*entity.Agreement, error) {
	return r.getOne(ctx, `apartment_id = $1`, apartmentID)
}

func (r *AgreementRepository) getOne(ctx context.Context, cond string, arg any) (*entity.Agreement, error) {
	a := &entity.Agreement{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_name, user_email, apartment_id, floor_no, block_name, apartment_no, rent, status, created_at
		FROM agreements
		WHERE `+cond, arg)

	if err := row.Scan(&a.ID, &a.UserName, &a.UserEmail, &a.ApartmentID, &a.FloorNo,
		&a.BlockName, &a.ApartmentNo, &a.Rent, &a.Status, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

var _ repository.AgreementRepository = (*AgreementRepository)(nil)
