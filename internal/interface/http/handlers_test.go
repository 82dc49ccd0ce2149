package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
	"github.com/nestorahq/nestora-api/internal/domain/repository"
	"github.com/nestorahq/nestora-api/internal/infrastructure/payment"
	"github.com/nestorahq/nestora-api/pkg/helpers"
	"github.com/nestorahq/nestora-api/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testTokens() *helpers.TokenManager {
	return helpers.NewTokenManager("handler-test-secret", time.Hour)
}

// stubApartmentRepo serves a fixed apartment set keyed by ID.
type stubApartmentRepo struct {
	byID map[string]*entity.Apartment
}

func (s *stubApartmentRepo) List(ctx context.Context, f repository.ApartmentFilter, offset, limit int) ([]entity.Apartment, error) {
	out := make([]entity.Apartment, 0, len(s.byID))
	for _, a := range s.byID {
		out = append(out, *a)
	}
	return out, nil
}

func (s *stubApartmentRepo) Count(ctx context.Context, f repository.ApartmentFilter) (int64, error) {
	return int64(len(s.byID)), nil
}

func (s *stubApartmentRepo) GetByID(ctx context.Context, id string) (*entity.Apartment, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *stubApartmentRepo) AddPhotoURL(ctx context.Context, id, url string) error {
	a, ok := s.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.PhotoURLs = append(a.PhotoURLs, url)
	return nil
}

// stubAgreementRepo keeps agreements in a map keyed by user email and
// enforces the one-per-email rule the way the store's unique index does.
type stubAgreementRepo struct {
	byEmail map[string]*entity.Agreement
}

func newStubAgreementRepo() *stubAgreementRepo {
	return &stubAgreementRepo{byEmail: map[string]*entity.Agreement{}}
}

func (s *stubAgreementRepo) Create(ctx context.Context, a *entity.Agreement) error {
	if _, ok := s.byEmail[a.UserEmail]; ok {
		return repository.ErrDuplicate
	}
	a.ID = "ag-" + a.UserEmail
	a.CreatedAt = time.Now()
	s.byEmail[a.UserEmail] = a
	return nil
}

func (s *stubAgreementRepo) GetByEmail(ctx context.Context, email string) (*entity.Agreement, error) {
	a, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (s *stubAgreementRepo) GetByApartmentID(ctx context.Context, apartmentID string) (*entity.Agreement, error) {
	for _, a := range s.byEmail {
		if a.ApartmentID == apartmentID {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

type stubCouponRepo struct {
	coupons []entity.Coupon
}

func (s *stubCouponRepo) List(ctx context.Context) ([]entity.Coupon, error) {
	return s.coupons, nil
}

func (s *stubCouponRepo) GetByCouponID(ctx context.Context, couponID string) (*entity.Coupon, error) {
	for i := range s.coupons {
		if s.coupons[i].CouponID == couponID {
			return &s.coupons[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

type stubGateway struct {
	lastAmount int64
	failWith   error
}

func (g *stubGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error) {
	if g.failWith != nil {
		return nil, g.failWith
	}
	g.lastAmount = amount
	return &payment.Intent{ClientSecret: "pi_secret_handler", Amount: amount, Currency: currency}, nil
}

// doJSON runs a request with an optional JSON body and bearer token and
// decodes the response envelope.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}
