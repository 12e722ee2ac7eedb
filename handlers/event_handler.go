package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"

	"clubsite/services"
	"clubsite/status"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// ListEvents returns the upcoming/recent-past partition plus the category
// legend for the listing page.
func (h *EventHandler) ListEvents(c echo.Context) error {
	parts, err := h.events.List(c.Request().Context(), time.Now())
	if err != nil {
		return contentError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"upcoming": parts.Upcoming,
		"past":     parts.Past,
		"legend":   services.Legend(),
	})
}

// CalendarEvents returns the full normalized entry set consumed by the
// interactive calendar widget.
func (h *EventHandler) CalendarEvents(c echo.Context) error {
	entries, err := h.events.Calendar(c.Request().Context())
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// FeaturedEvents returns upcoming homepage-featured events.
func (h *EventHandler) FeaturedEvents(c echo.Context) error {
	details, err := h.events.Featured(c.Request().Context(), time.Now())
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

// GetEvent resolves the detail page route /events/{slug-or-id}.
func (h *EventHandler) GetEvent(c echo.Context) error {
	slug := c.PathParam("slug")

	detail, err := h.events.BySlug(c.Request().Context(), slug)
	if errors.Is(err, status.ErrEventNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Event not found",
		})
	}
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// ICSFeed serves the events as an iCalendar subscription feed.
func (h *EventHandler) ICSFeed(c echo.Context) error {
	entries, err := h.events.Calendar(c.Request().Context())
	if err != nil {
		return contentError(c, err)
	}
	feed := services.BuildICS(entries, time.Now())
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

// ListPosts returns the news posts.
func (h *EventHandler) ListPosts(c echo.Context) error {
	posts, err := h.events.Posts(c.Request().Context())
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}

// contentError surfaces a fetch failure as a retry-less error state. The
// client decides how to present it; nothing is retried server-side.
func contentError(c echo.Context, err error) error {
	log.Printf("Content fetch failed: %v", err)
	return c.JSON(http.StatusServiceUnavailable, map[string]string{
		"error": "Content is temporarily unavailable",
	})
}
