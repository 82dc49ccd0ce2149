package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nestorahq/nestora-api/internal/application"
	"github.com/nestorahq/nestora-api/pkg/response"
	"github.com/nestorahq/nestora-api/pkg/validation"
)

type PaymentHandler struct {
	Svc    *application.PaymentService
	Logger *logrus.Logger
}

func NewPaymentHandler(svc *application.PaymentService, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

type paymentIntentRequest struct {
	ApartmentID string `json:"apartmentId" binding:"required"`
	CouponID    string `json:"couponId"`
}

// CreateIntent serves POST /payment-intent and returns the gateway's
// opaque client secret for client-side confirmation.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	secret, err := h.Svc.CreateIntent(c.Request.Context(), req.ApartmentID, req.CouponID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			response.Error[any](c, http.StatusBadRequest, "no agreement for apartment", nil)
		case errors.Is(err, application.ErrGateway):
			response.Error[any](c, http.StatusBadGateway, "payment gateway error", nil)
		default:
			h.Logger.WithError(err).Error("payment intent failed")
			response.Error[any](c, http.StatusInternalServerError, "could not create payment intent", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clientSecret": secret}, "payment intent created", nil)
}
