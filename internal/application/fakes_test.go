package application

import (
	"context"
	"errors"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
	repo "github.com/nestorahq/nestora-api/internal/domain/repository"
	"github.com/nestorahq/nestora-api/internal/infrastructure/payment"
)

// in-memory repositories and gateway used across service tests

// fakeApartmentRepo keeps insertion order, matching the stable ORDER BY
// of the real repository.
type fakeApartmentRepo struct {
	apartments []entity.Apartment
}

func newFakeApartmentRepo(apts ...entity.Apartment) *fakeApartmentRepo {
	return &fakeApartmentRepo{apartments: apts}
}

func (f *fakeApartmentRepo) filtered(fl repo.ApartmentFilter) []entity.Apartment {
	out := make([]entity.Apartment, 0, len(f.apartments))
	for _, a := range f.apartments {
		if fl.MinRent != 0 && a.Rent < fl.MinRent {
			continue
		}
		if fl.MaxRent != 0 && a.Rent > fl.MaxRent {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (f *fakeApartmentRepo) List(ctx context.Context, fl repo.ApartmentFilter, offset, limit int) ([]entity.Apartment, error) {
	out := f.filtered(fl)
	if offset >= len(out) {
		return nil, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (f *fakeApartmentRepo) Count(ctx context.Context, fl repo.ApartmentFilter) (int64, error) {
	return int64(len(f.filtered(fl))), nil
}

func (f *fakeApartmentRepo) GetByID(ctx context.Context, id string) (*entity.Apartment, error) {
	for i := range f.apartments {
		if f.apartments[i].ID == id {
			a := f.apartments[i]
			return &a, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeApartmentRepo) AddPhotoURL(ctx context.Context, id, url string) error {
	for i := range f.apartments {
		if f.apartments[i].ID == id {
			f.apartments[i].PhotoURLs = append(f.apartments[i].PhotoURLs, url)
			return nil
		}
	}
	return repo.ErrNotFound
}

type fakeAgreementRepo struct {
	byEmail map[string]entity.Agreement
	creates int
}

func newFakeAgreementRepo() *fakeAgreementRepo {
	return &fakeAgreementRepo{byEmail: map[string]entity.Agreement{}}
}

func (f *fakeAgreementRepo) Create(ctx context.Context, a *entity.Agreement) error {
	f.creates++
	if _, exists := f.byEmail[a.UserEmail]; exists {
		return repo.ErrDuplicate
	}
	a.ID = "ag-" + a.UserEmail
	f.byEmail[a.UserEmail] = *a
	return nil
}

func (f *fakeAgreementRepo) GetByEmail(ctx context.Context, email string) (*entity.Agreement, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &a, nil
}

func (f *fakeAgreementRepo) GetByApartmentID(ctx context.Context, apartmentID string) (*entity.Agreement, error) {
	for _, a := range f.byEmail {
		if a.ApartmentID == apartmentID {
			return &a, nil
		}
	}
	return nil, repo.ErrNotFound
}

type fakeCouponRepo struct {
	byCode map[string]entity.Coupon
}

func newFakeCouponRepo(coupons ...entity.Coupon) *fakeCouponRepo {
	m := make(map[string]entity.Coupon, len(coupons))
	for _, c := range coupons {
		m[c.CouponID] = c
	}
	return &fakeCouponRepo{byCode: m}
}

func (f *fakeCouponRepo) List(ctx context.Context) ([]entity.Coupon, error) {
	out := make([]entity.Coupon, 0, len(f.byCode))
	for _, c := range f.byCode {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCouponRepo) GetByCouponID(ctx context.Context, couponID string) (*entity.Coupon, error) {
	c, ok := f.byCode[couponID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &c, nil
}

type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	failWith     error
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error) {
	g.lastAmount = amount
	g.lastCurrency = currency
	if g.failWith != nil {
		return nil, g.failWith
	}
	return &payment.Intent{ClientSecret: "pi_secret_test", Amount: amount, Currency: currency}, nil
}

var errGatewayDown = errors.New("gateway unreachable")
