package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nestorahq/nestora-api/internal/container"
	handlers "github.com/nestorahq/nestora-api/internal/interface/http"
	"github.com/nestorahq/nestora-api/internal/interface/middleware"
	"github.com/nestorahq/nestora-api/pkg/helpers"
)

// CouponModule wires the public coupon listing and the bearer-protected
// single-coupon lookup.
type CouponModule struct {
	Handler *handlers.CouponHandler
	Tokens  *helpers.TokenManager
}

func NewCouponModule(h *handlers.CouponHandler, tokens *helpers.TokenManager) *CouponModule {
	return &CouponModule{Handler: h, Tokens: tokens}
}

func (m *CouponModule) Register(rg *gin.RouterGroup) {
	listLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/coupons", listLimiter, m.Handler.List)

	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.Tokens))
	{
		auth.GET("/coupon/:id", m.Handler.GetByID)
	}
}
