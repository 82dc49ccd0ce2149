package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nestorahq/nestora-api/internal/application"
	"github.com/nestorahq/nestora-api/pkg/response"
)

type ApartmentHandler struct {
	Svc    *application.ApartmentService
	Logger *logrus.Logger
}

func NewApartmentHandler(svc *application.ApartmentService, logger *logrus.Logger) *ApartmentHandler {
	return &ApartmentHandler{Svc: svc, Logger: logger}
}

func intQuery(c *gin.Context, key string) int {
	v, _ := strconv.Atoi(c.Query(key))
	return v
}

// List serves GET /apartments?pages=&min=&max=. Pages are 1-indexed, 6
// apartments per page; min/max bound the rent inclusively.
func (h *ApartmentHandler) List(c *gin.Context) {
	page := intQuery(c, "pages")
	minRent := intQuery(c, "min")
	maxRent := intQuery(c, "max")

	items, total, err := h.Svc.List(c.Request.Context(), page, minRent, maxRent)
	if err != nil {
		h.Logger.WithError(err).Error("apartment listing failed")
		response.Error[any](c, http.StatusInternalServerError, "could not list apartments", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"result":          items,
		"totalApartments": total,
	}, "apartments", nil)
}

func (h *ApartmentHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size := intQuery(c, "size")

	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("apartment search failed")
		response.Error[any](c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": hits}, "search results", nil)
}

// UploadPhoto serves POST /apartments/:id/photos with a multipart "photo"
// field.
func (h *ApartmentHandler) UploadPhoto(c *gin.Context) {
	id := c.Param("id")
	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing photo file", nil)
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.AddPhoto(c.Request.Context(), id, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "apartment not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("apartment_id", id).Error("photo upload failed")
		response.Error[any](c, http.StatusInternalServerError, "could not upload photo", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"url": url}, "photo uploaded", nil)
}
