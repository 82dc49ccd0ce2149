package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
	"github.com/nestorahq/nestora-api/internal/domain/repository"
)

type ApartmentRepository struct {
	pool *pgxpool.Pool
}

func NewApartmentRepository(pool *pgxpool.Pool) *ApartmentRepository {
	return &ApartmentRepository{pool: pool}
}

// rent range filter; a zero bound leaves that side open
const rentRangeCond = `($1 = 0 OR rent >= $1) AND ($2 = 0 OR rent <= $2)`

func (r *ApartmentRepository) List(ctx context.Context, f repository.ApartmentFilter, offset, limit int) ([]entity.Apartment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, floor_no, block_name, apartment_no, rent, available, photo_urls, created_at
		FROM apartments
		WHERE `+rentRangeCond+`
		ORDER BY created_at, id
		OFFSET $3 LIMIT $4
	`, f.MinRent, f.MaxRent, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Apartment, 0, limit)
	for rows.Next() {
		var a entity.Apartment
		if err := rows.Scan(&a.ID, &a.FloorNo, &a.BlockName, &a.ApartmentNo,
			&a.Rent, &a.Available, &a.PhotoURLs, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ApartmentRepository) Count(ctx context.Context, f repository.ApartmentFilter) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM apartments WHERE `+rentRangeCond,
		f.MinRent, f.MaxRent).Scan(&n)
	return n, err
}

func (r *ApartmentRepository) GetByID(ctx context.Context, id string) (*entity.Apartment, error) {
	a := &entity.Apartment{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, floor_no, block_name, apartment_no, rent, available, photo_urls, created_at
		FROM apartments
		WHERE id = $1
	`, id)

	if err := row.Scan(&a.ID, &a.FloorNo, &a.BlockName, &a.ApartmentNo,
		&a.Rent, &a.Available, &a.PhotoURLs, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *ApartmentRepository) AddPhotoURL(ctx context.Context, id, url string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE apartments SET photo_urls = array_append(photo_urls, $2)
		WHERE id = $1
	`, id, url)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ApartmentRepository = (*ApartmentRepository)(nil)
