package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubsite/config"
	"clubsite/content"
	"clubsite/utils"
)

// newTestContentClient points a content client at a stub query API.
func newTestContentClient(t *testing.T, handler http.Handler) *content.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		ContentProjectID:  "testproj",
		ContentDataset:    "production",
		ContentAPIVersion: "2023-05-03",
		ContentBaseURL:    srv.URL,
	}
	return content.NewClient(cfg, utils.NewCache(nil, 0))
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

// failingContent refuses every request.
func failingContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	})
}
