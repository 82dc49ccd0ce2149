package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nestorahq/nestora-api/internal/application"
	"github.com/nestorahq/nestora-api/internal/domain/entity"
	"github.com/nestorahq/nestora-api/pkg/response"
)

type CouponHandler struct {
	Svc    *application.CouponService
	Logger *logrus.Logger
}

func NewCouponHandler(svc *application.CouponService, logger *logrus.Logger) *CouponHandler {
	return &CouponHandler{Svc: svc, Logger: logger}
}

func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("coupon listing failed")
		response.Error[any](c, http.StatusInternalServerError, "could not list coupons", nil)
		return
	}
	if coupons == nil {
		coupons = []entity.Coupon{}
	}
	response.Success(c, http.StatusOK, coupons, "coupons", nil)
}

// GetByID serves GET /coupon/:id; an unknown code yields a null body, not
// an error.
func (h *CouponHandler) GetByID(c *gin.Context) {
	code := c.Param("id")
	coupon, err := h.Svc.Resolve(c.Request.Context(), code)
	if err != nil {
		h.Logger.WithError(err).WithField("coupon_id", code).Error("coupon lookup failed")
		response.Error[any](c, http.StatusInternalServerError, "could not fetch coupon", nil)
		return
	}
	response.Success[*entity.Coupon](c, http.StatusOK, coupon, "coupon", nil)
}
