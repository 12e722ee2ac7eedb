package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"clubsite/services"
)

type GalleryHandler struct {
	gallery *services.GalleryService
}

func NewGalleryHandler(gallery *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// GetGallery returns albums with their joined photos. The gallery degrades
// to an empty list on any failure, so this always answers 200 and a broken
// gallery never blocks the rest of the site.
func (h *GalleryHandler) GetGallery(c echo.Context) error {
	albums := h.gallery.AlbumsWithPhotos(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]any{
		"albums": albums,
	})
}
