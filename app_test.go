package pressfront

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubAPI is an in-memory stand-in for the content API.
type stubAPI struct {
	mu       sync.Mutex
	posts    []map[string]any
	status   int // forced status for /posts when non-zero
	queries  []url.Values
	srv      *httptest.Server
	noTotals bool
}

func newStubAPI(t *testing.T, n int) *stubAPI {
	t.Helper()
	s := &stubAPI{}
	for i := 1; i <= n; i++ {
		s.posts = append(s.posts, stubPost(i))
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", s.handlePosts)
	mux.HandleFunc("/categories", s.handleTerms(map[string]any{
		"id": 7, "slug": "ports", "name": "Ports", "description": "", "taxonomy": "category",
	}))
	mux.HandleFunc("/tags", s.handleTerms(map[string]any{
		"id": 9, "slug": "mexico", "name": "Mexico", "description": "<p>All about <b>Mexico</b></p>", "taxonomy": "post_tag",
	}))
	s.srv = httptest.NewServer(mux)
	t.Cleanup(s.srv.Close)
	return s
}

func stubPost(i int) map[string]any {
	return map[string]any{
		"id":           i,
		"slug":         fmt.Sprintf("post-%d", i),
		"title":        map[string]string{"rendered": fmt.Sprintf("Post %d", i)},
		"excerpt":      map[string]string{"rendered": fmt.Sprintf("<p>Excerpt %d</p>", i)},
		"content":      map[string]string{"rendered": fmt.Sprintf("<p>Content %d</p>", i)},
		"date_gmt":     "2024-01-15T10:30:00",
		"modified_gmt": "2024-02-01T07:00:00",
		"_embedded": map[string]any{
			"wp:term": [][]map[string]any{
				{{"id": 7, "slug": "ports", "name": "Ports", "taxonomy": "category"}},
			},
		},
	}
}

func (s *stubAPI) lastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return nil
	}
	return s.queries[len(s.queries)-1]
}

func (s *stubAPI) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

func (s *stubAPI) setStatus(code int) {
	s.mu.Lock()
	s.status = code
	s.mu.Unlock()
}

func (s *stubAPI) handlePosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.mu.Lock()
	s.queries = append(s.queries, q)
	status, posts, noTotals := s.status, s.posts, s.noTotals
	s.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"code":"internal_error","message":"boom"}`))
		return
	}
	if slug := q.Get("slug"); slug != "" {
		var match []map[string]any
		for _, p := range posts {
			if p["slug"] == slug {
				match = append(match, p)
			}
		}
		writeStubJSON(w, match)
		return
	}

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	totalPages := (len(posts) + perPage - 1) / perPage
	if page < 1 || (page > totalPages && len(posts) > 0) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"rest_post_invalid_page_number","message":"The page number requested is larger than the number of pages available."}`))
		return
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(posts))
	if !noTotals {
		w.Header().Set("X-WP-Total", strconv.Itoa(len(posts)))
		w.Header().Set("X-WP-TotalPages", strconv.Itoa(totalPages))
	}
	if start >= end {
		writeStubJSON(w, []any{})
		return
	}
	writeStubJSON(w, posts[start:end])
}

func (s *stubAPI) handleTerms(term map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("slug") == term["slug"] {
			writeStubJSON(w, []map[string]any{term})
			return
		}
		writeStubJSON(w, []any{})
	}
}

func writeStubJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestApp(t *testing.T, api *stubAPI, mutate ...func(*SiteConfig)) *App {
	t.Helper()
	cfg := SiteConfig{
		Name:         "Ports",
		URL:          "https://example.com",
		Description:  "Stories from the Gulf",
		APIURL:       api.srv.URL,
		PostsPerPage: 10,
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	a := New(cfg, WithMapConfig(MapConfig{
		Title:  "Caribbean Ports Map",
		Center: [2]float64{22.03, -97.27},
		Zoom:   5,
		Points: []MapPoint{{ID: 1, Title: "Tampico, Mexico", Lat: 22.2549, Lng: -97.8664, PostSlug: "post-1", PostTitle: "Post 1"}},
	}))
	require.NoError(t, a.Setup())
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func serve(a *App, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}
