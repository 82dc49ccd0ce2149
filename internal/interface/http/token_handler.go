package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nestorahq/nestora-api/pkg/helpers"
	"github.com/nestorahq/nestora-api/pkg/response"
	"github.com/nestorahq/nestora-api/pkg/validation"
)

// TokenHandler issues bearer tokens for a caller-supplied identity claim.
type TokenHandler struct {
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewTokenHandler(tokens *helpers.TokenManager, logger *logrus.Logger) *TokenHandler {
	return &TokenHandler{Tokens: tokens, Logger: logger}
}

type tokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (h *TokenHandler) Issue(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, exp, err := h.Tokens.Generate(req.Email, req.Name, req.Role)
	if err != nil {
		h.Logger.WithError(err).Error("token signing failed")
		response.Error[any](c, http.StatusInternalServerError, "could not issue token", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"token": token}, "token issued", map[string]any{"expires_at": exp})
}
