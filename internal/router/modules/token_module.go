package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nestorahq/nestora-api/internal/container"
	handlers "github.com/nestorahq/nestora-api/internal/interface/http"
	"github.com/nestorahq/nestora-api/internal/interface/middleware"
)

// TokenModule wires the public token issuing endpoint.
type TokenModule struct {
	Handler *handlers.TokenHandler
}

func NewTokenModule(h *handlers.TokenHandler) *TokenModule {
	return &TokenModule{Handler: h}
}

func (m *TokenModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), nil)
	rg.POST("/jwt", limiter, m.Handler.Issue)
}
