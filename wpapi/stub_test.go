package wpapi_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eringen/pressfront/wpapi"
)

// pageReply describes what the stub returns for one page request.
type pageReply struct {
	count      int
	totalPages string // X-WP-TotalPages, omitted when empty
	status     int    // 0 means 200
}

// catalogServer serves GET /posts, asking reply for each requested page.
// Post IDs are numbered globally as (page-1)*per_page + i + 1.
func catalogServer(t *testing.T, reply func(page int) pageReply) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path != "/posts" {
			t.Errorf("path = %s, want /posts", r.URL.Path)
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
		rep := reply(page)
		if rep.status != 0 && rep.status != http.StatusOK {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rep.status)
			_, _ = w.Write([]byte(`{"code":"internal_error","message":"boom"}`))
			return
		}
		if rep.totalPages != "" {
			w.Header().Set("X-WP-TotalPages", rep.totalPages)
		}
		posts := make([]map[string]any, 0, rep.count)
		for i := 0; i < rep.count; i++ {
			id := (page-1)*perPage + i + 1
			posts = append(posts, rawPost(id))
		}
		writeJSON(w, posts)
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func rawPost(id int) map[string]any {
	return map[string]any{
		"id":           id,
		"slug":         fmt.Sprintf("post-%d", id),
		"title":        map[string]string{"rendered": fmt.Sprintf("Post %d", id)},
		"excerpt":      map[string]string{"rendered": "<p>excerpt</p>"},
		"content":      map[string]string{"rendered": "<p>content</p>"},
		"date":         "2024-01-15T10:30:00",
		"date_gmt":     "2024-01-15T08:30:00",
		"modified":     "2024-02-01T09:00:00",
		"modified_gmt": "2024-02-01T07:00:00",
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newClient(t *testing.T, baseURL string) *wpapi.Client {
	t.Helper()
	c, err := wpapi.NewClient(wpapi.Config{BaseURL: baseURL})
	require.NoError(t, err)
	return c
}
