package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	repo "github.com/nestorahq/nestora-api/internal/domain/repository"
	"github.com/nestorahq/nestora-api/internal/infrastructure/payment"
)

// PaymentService composes rent lookup, coupon resolution, and the price
// calculation, then requests a charge authorization from the gateway.
type PaymentService struct {
	Agreements repo.AgreementRepository
	Coupons    *CouponService
	Gateway    payment.Gateway
	Currency   string
	Logger     *logrus.Logger
}

func NewPaymentService(ag repo.AgreementRepository, coupons *CouponService, gw payment.Gateway, currency string, logger *logrus.Logger) *PaymentService {
	return &PaymentService{Agreements: ag, Coupons: coupons, Gateway: gw, Currency: currency, Logger: logger}
}

// CreateIntent derives the charge amount for the caller's agreement on the
// given apartment and submits it to the gateway. The base rent is the
// snapshot on the agreement record matching the apartment. One gateway
// call per request, no retry; the client secret comes back opaque and the
// intent is not persisted locally.
func (s *PaymentService) CreateIntent(ctx context.Context, apartmentID, couponID string) (string, error) {
	ag, err := s.Agreements.GetByApartmentID(ctx, apartmentID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	coupon, err := s.Coupons.Resolve(ctx, couponID)
	if err != nil {
		return "", err
	}

	amount := FinalAmount(float64(ag.Rent), DiscountFromCoupon(coupon))

	intent, err := s.Gateway.CreateIntent(ctx, amount, s.Currency)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{
				"apartment_id": apartmentID,
				"amount":       amount,
			}).Error("payment intent creation failed")
		}
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return intent.ClientSecret, nil
}
