package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v5"

	"clubsite/config"
	"clubsite/content"
	"clubsite/services"
	"clubsite/utils"
)

// newTestServer wires real services over a stub content API and registers the
// routes the way main does, so handler tests exercise routing and binding.
func newTestServer(t *testing.T, contentAPI http.Handler) *echo.Echo {
	t.Helper()

	srv := httptest.NewServer(contentAPI)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		ContentProjectID:  "testproj",
		ContentDataset:    "production",
		ContentAPIVersion: "2023-05-03",
		ContentBaseURL:    srv.URL,
	}
	contentClient := content.NewClient(cfg, utils.NewCache(nil, 0))

	eventHandler := NewEventHandler(services.NewEventService(contentClient))
	galleryHandler := NewGalleryHandler(services.NewGalleryService(contentClient))
	formHandler := NewFormHandler(services.NewNotifyService(nil))

	e := echo.New()
	api := e.Group("/api")
	api.GET("/events", eventHandler.ListEvents)
	api.GET("/events/calendar", eventHandler.CalendarEvents)
	api.GET("/events/fallback", eventHandler.FallbackList)
	api.GET("/events/featured", eventHandler.FeaturedEvents)
	api.GET("/events/:slug", eventHandler.GetEvent)
	api.GET("/gallery", galleryHandler.GetGallery)
	api.GET("/posts", eventHandler.ListPosts)
	api.POST("/contact", formHandler.SubmitContact)
	api.POST("/join", formHandler.SubmitJoin)
	e.GET("/events/calendar.ics", eventHandler.ICSFeed)
	return e
}

// contentResponses answers each known query string with a canned result
// document and rejects everything else.
func contentResponses(responses map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("query")
		if result, ok := responses[q]; ok {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"result":%s}`, result)
			return
		}
		http.Error(w, `{"error":"unknown query"}`, http.StatusBadRequest)
	})
}

func failingContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	})
}

func doRequest(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
