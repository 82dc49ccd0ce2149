package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestorahq/nestora-api/internal/application"
	"github.com/nestorahq/nestora-api/internal/domain/entity"
	"github.com/nestorahq/nestora-api/internal/interface/middleware"
	"github.com/nestorahq/nestora-api/pkg/helpers"
)

func paymentTestRouter(t *testing.T, gw *stubGateway) (*gin.Engine, *helpers.TokenManager) {
	t.Helper()

	agreements := newStubAgreementRepo()
	agreements.byEmail["alice@x.com"] = &entity.Agreement{
		ID: "ag-1", UserEmail: "alice@x.com", ApartmentID: "apt-1", Rent: 1000, Status: entity.AgreementPending,
	}
	coupons := application.NewCouponService(&stubCouponRepo{coupons: []entity.Coupon{
		{ID: "c1", CouponID: "NEWYEAR10", DiscountType: entity.DiscountPercentage, Value: 10, Available: true},
	}}, nil, testLogger())
	svc := application.NewPaymentService(agreements, coupons, gw, "usd", testLogger())
	h := NewPaymentHandler(svc, testLogger())

	tokens := testTokens()
	r := gin.New()
	r.POST("/payment-intent", middleware.BearerAuth(tokens), h.CreateIntent)
	return r, tokens
}

func TestPaymentIntentWithCoupon(t *testing.T) {
	gw := &stubGateway{}
	r, tokens := paymentTestRouter(t, gw)
	token := bearerFor(t, tokens, "alice@x.com")

	w, env := doJSON(t, r, http.MethodPost, "/payment-intent", token, gin.H{
		"apartmentId": "apt-1", "couponId": "NEWYEAR10",
	})

	require.Equal(t, http.StatusOK, w.Code)
	data, ok := env["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pi_secret_handler", data["clientSecret"])
	assert.Equal(t, int64(90000), gw.lastAmount)
}

func TestPaymentIntentWithoutCoupon(t *testing.T) {
	gw := &stubGateway{}
	r, tokens := paymentTestRouter(t, gw)
	token := bearerFor(t, tokens, "alice@x.com")

	w, _ := doJSON(t, r, http.MethodPost, "/payment-intent", token, gin.H{
		"apartmentId": "apt-1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(100000), gw.lastAmount)
}

func TestPaymentIntentUnknownCouponFullPrice(t *testing.T) {
	gw := &stubGateway{}
	r, tokens := paymentTestRouter(t, gw)
	token := bearerFor(t, tokens, "alice@x.com")

	w, _ := doJSON(t, r, http.MethodPost, "/payment-intent", token, gin.H{
		"apartmentId": "apt-1", "couponId": "NOPE",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(100000), gw.lastAmount)
}

func TestPaymentIntentNoAgreement(t *testing.T) {
	r, tokens := paymentTestRouter(t, &stubGateway{})
	token := bearerFor(t, tokens, "alice@x.com")

	w, env := doJSON(t, r, http.MethodPost, "/payment-intent", token, gin.H{
		"apartmentId": "apt-other",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no agreement for apartment", env["message"])
}

func TestPaymentIntentGatewayDown(t *testing.T) {
	r, tokens := paymentTestRouter(t, &stubGateway{failWith: errors.New("stripe: boom")})
	token := bearerFor(t, tokens, "alice@x.com")

	w, env := doJSON(t, r, http.MethodPost, "/payment-intent", token, gin.H{
		"apartmentId": "apt-1",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "payment gateway error", env["message"])
}

func TestPaymentIntentMissingApartmentID(t *testing.T) {
	r, tokens := paymentTestRouter(t, &stubGateway{})
	token := bearerFor(t, tokens, "alice@x.com")

	w, _ := doJSON(t, r, http.MethodPost, "/payment-intent", token, gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
