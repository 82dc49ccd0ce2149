package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nestorahq/nestora-api/internal/application"
	"github.com/nestorahq/nestora-api/internal/domain/entity"
	"github.com/nestorahq/nestora-api/internal/interface/middleware"
	"github.com/nestorahq/nestora-api/pkg/response"
	"github.com/nestorahq/nestora-api/pkg/validation"
)

type AgreementHandler struct {
	Svc    *application.AgreementService
	Logger *logrus.Logger
}

func NewAgreementHandler(svc *application.AgreementService, logger *logrus.Logger) *AgreementHandler {
	return &AgreementHandler{Svc: svc, Logger: logger}
}

type agreementRequest struct {
	UserName    string `json:"user_name"`
	UserEmail   string `json:"user_email" binding:"required,email"`
	ApartmentID string `json:"apartment_id" binding:"required"`
}

// Create serves POST /agreement. The wire contract maps an identity
// mismatch to 401 and a duplicate agreement to 400.
func (h *AgreementHandler) Create(c *gin.Context) {
	var req agreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	identity := c.GetString(middleware.CtxUserEmailKey)
	ag, err := h.Svc.Create(c.Request.Context(), identity, application.AgreementInput{
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		ApartmentID: req.ApartmentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrForbidden):
			response.Error[any](c, http.StatusUnauthorized, "forbidden access", nil)
		case errors.Is(err, application.ErrConflict):
			response.Error[any](c, http.StatusBadRequest, "already has an agreement", nil)
		case errors.Is(err, application.ErrNotFound):
			response.Error[any](c, http.StatusBadRequest, "unknown apartment", nil)
		default:
			h.Logger.WithError(err).Error("agreement creation failed")
			response.Error[any](c, http.StatusInternalServerError, "could not create agreement", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, ag, "agreement recorded", nil)
}

// GetByEmail serves GET /agreement/:email; the body data is null when the
// user has no agreement yet.
func (h *AgreementHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")
	identity := c.GetString(middleware.CtxUserEmailKey)

	ag, err := h.Svc.GetByEmail(c.Request.Context(), identity, email)
	if err != nil {
		if errors.Is(err, application.ErrForbidden) {
			response.Error[any](c, http.StatusUnauthorized, "forbidden access", nil)
			return
		}
		h.Logger.WithError(err).Error("agreement lookup failed")
		response.Error[any](c, http.StatusInternalServerError, "could not fetch agreement", nil)
		return
	}
	response.Success[*entity.Agreement](c, http.StatusOK, ag, "agreement", nil)
}
