package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nestorahq/nestora-api/internal/container"
	handlers "github.com/nestorahq/nestora-api/internal/interface/http"
	"github.com/nestorahq/nestora-api/internal/interface/middleware"
	"github.com/nestorahq/nestora-api/pkg/helpers"
)

// ApartmentModule wires inventory listing and search (public) and photo
// upload (bearer).
type ApartmentModule struct {
	Handler *handlers.ApartmentHandler
	Tokens  *helpers.TokenManager
}

func NewApartmentModule(h *handlers.ApartmentHandler, tokens *helpers.TokenManager) *ApartmentModule {
	return &ApartmentModule{Handler: h, Tokens: tokens}
}

func (m *ApartmentModule) Register(rg *gin.RouterGroup) {
	listLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/apartments", listLimiter, m.Handler.List)
	rg.GET("/apartments/search", listLimiter, m.Handler.Search)

	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.Tokens))
	{
		auth.POST("/apartments/:id/photos", m.Handler.UploadPhoto)
	}
}
