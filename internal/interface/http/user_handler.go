package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nestorahq/nestora-api/internal/application"
	"github.com/nestorahq/nestora-api/pkg/response"
	"github.com/nestorahq/nestora-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, inserted, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.Logger.WithError(err).Error("user registration failed")
		response.Error[any](c, http.StatusInternalServerError, "could not register user", nil)
		return
	}

	msg := "user registered"
	if !inserted {
		msg = "user already exists"
	}
	response.Success(c, http.StatusOK, u, msg, map[string]any{"inserted": inserted})
}
