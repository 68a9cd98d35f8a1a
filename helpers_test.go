package pressfront

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		segments []string
		want     string
	}{
		{"origin only", "https://example.com", nil, "https://example.com"},
		{"single segment", "https://example.com", []string{"sitemap.xml"}, "https://example.com/sitemap.xml"},
		{"trailing slash base", "https://example.com/", []string{"posts", "hello"}, "https://example.com/posts/hello"},
		{"base with path", "https://example.com/blog", []string{"posts"}, "https://example.com/blog/posts"},
		{"escaped segment kept", "https://example.com", []string{"posts", "caf%C3%A9"}, "https://example.com/posts/caf%C3%A9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildURL(tt.base, tt.segments...))
		})
	}
}

func TestPageParam(t *testing.T) {
	tests := map[string]int{
		"":          1,
		"?page=":    1,
		"?page=1":   1,
		"?page=4":   4,
		"?page=0":   1,
		"?page=-2":  1,
		"?page=x":   1,
		"?page=2.5": 1,
	}
	e := echo.New()
	for query, want := range tests {
		req := httptest.NewRequest(http.MethodGet, "/posts"+query, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, want, pageParam(c), "query %q", query)
	}
}

func TestAbsURL(t *testing.T) {
	a := &App{Config: SiteConfig{URL: "https://example.com"}}
	assert.Equal(t, "https://example.com/posts", a.absURL("/posts"))
	assert.Equal(t, "https://cdn.example.net/a.jpg", a.absURL("https://cdn.example.net/a.jpg"))
	assert.Equal(t, "", a.absURL(""))
}

func TestMetaFallsBackToSiteImage(t *testing.T) {
	a := &App{Config: SiteConfig{Name: "Ports", URL: "https://example.com", OGImage: "/public/og.png"}}
	m := a.meta("Hello", "desc", "/posts/hello", "article", "")
	assert.Equal(t, "https://example.com/public/og.png", m.OGImage)
	assert.Equal(t, "https://example.com/posts/hello", m.Canonical)
	assert.Equal(t, "Hello | Ports", m.FullTitle())

	m = a.meta("Hello", "desc", "/posts/hello", "article", "https://cdn.example.net/a.jpg")
	assert.Equal(t, "https://cdn.example.net/a.jpg", m.OGImage)
}
