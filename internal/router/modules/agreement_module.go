package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nestorahq/nestora-api/internal/container"
	handlers "github.com/nestorahq/nestora-api/internal/interface/http"
	"github.com/nestorahq/nestora-api/internal/interface/middleware"
	"github.com/nestorahq/nestora-api/pkg/helpers"
)

// AgreementModule wires the bearer-protected agreement endpoints.
type AgreementModule struct {
	Handler *handlers.AgreementHandler
	Tokens  *helpers.TokenManager
}

func NewAgreementModule(h *handlers.AgreementHandler, tokens *helpers.TokenManager) *AgreementModule {
	return &AgreementModule{Handler: h, Tokens: tokens}
}

func (m *AgreementModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserEmail(), nil))
	{
		auth.POST("/agreement", m.Handler.Create)
		auth.GET("/agreement/:email", m.Handler.GetByEmail)
	}
}
