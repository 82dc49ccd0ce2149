package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nestorahq/nestora-api/internal/container"
	handlers "github.com/nestorahq/nestora-api/internal/interface/http"
	"github.com/nestorahq/nestora-api/internal/interface/middleware"
	"github.com/nestorahq/nestora-api/pkg/helpers"
)

// PaymentModule wires the bearer-protected payment-intent endpoint.
type PaymentModule struct {
	Handler *handlers.PaymentHandler
	Tokens  *helpers.TokenManager
}

func NewPaymentModule(h *handlers.PaymentHandler, tokens *helpers.TokenManager) *PaymentModule {
	return &PaymentModule{Handler: h, Tokens: tokens}
}

func (m *PaymentModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserEmail(), nil))
	{
		auth.POST("/payment-intent", m.Handler.CreateIntent)
	}
}
