package pressfront

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// SiteConfig holds all configuration for a pressfront site.
type SiteConfig struct {
	Name        string // Site name (default "Blog")
	URL         string // Canonical origin, NEXT_PUBLIC_SITE_URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	OGImage     string // Fallback og:image path (default "/public/default-og-image.jpg")

	APIURL          string        // Required: content API base, WP_API_URL
	UpstreamTimeout time.Duration // Per-request upstream timeout (default 10s)
	TermCacheTTL    time.Duration // Category/tag resolution cache; negative disables (default 5m)

	Addr string // Listen address (default ":3000")

	PostsPerPage      int // Listing page size (default 10)
	FeedSize          int // Items in /feed.xml (default 20)
	SitemapPageSize   int // Page size for the sitemap walk (default 100)
	PathsPageSize     int // Page size for post path enumeration (default 10)
	WalkMaxIterations int // Page ceiling for catalog walks (default 10000)
	WalkRateLimit     int // Catalog walks per client IP per minute (default 30)

	MapPointsFile string // YAML map points; empty uses the embedded set
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.OGImage == "" {
		c.OGImage = "/public/default-og-image.jpg"
	}
	if c.UpstreamTimeout == 0 {
		c.UpstreamTimeout = 10 * time.Second
	}
	if c.TermCacheTTL == 0 {
		c.TermCacheTTL = 5 * time.Minute
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.PostsPerPage <= 0 {
		c.PostsPerPage = 10
	}
	if c.FeedSize <= 0 {
		c.FeedSize = 20
	}
	if c.SitemapPageSize <= 0 {
		c.SitemapPageSize = 100
	}
	if c.PathsPageSize <= 0 {
		c.PathsPageSize = 10
	}
	if c.WalkMaxIterations <= 0 {
		c.WalkMaxIterations = 10000
	}
	if c.WalkRateLimit <= 0 {
		c.WalkRateLimit = 30
	}
}

// Validate reports missing or malformed required settings.
func (c *SiteConfig) Validate() error {
	if c.APIURL == "" {
		return errors.New("pressfront: APIURL (WP_API_URL) is required")
	}
	if _, err := url.ParseRequestURI(c.APIURL); err != nil {
		return fmt.Errorf("pressfront: invalid APIURL: %w", err)
	}
	if _, err := url.ParseRequestURI(c.URL); err != nil {
		return fmt.Errorf("pressfront: invalid site URL: %w", err)
	}
	// The content API caps per_page at 100.
	for name, n := range map[string]int{
		"PostsPerPage":    c.PostsPerPage,
		"FeedSize":        c.FeedSize,
		"SitemapPageSize": c.SitemapPageSize,
		"PathsPageSize":   c.PathsPageSize,
	} {
		if n > 100 {
			return fmt.Errorf("pressfront: %s must be at most 100, got %d", name, n)
		}
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger sets the application logger (default: no-op).
func WithLogger(log *zap.Logger) Option {
	return func(a *App) {
		a.Logger = log
	}
}

// WithHTTPClient sets the client used for content API calls. Its transport
// is still wrapped with upstream metrics.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *App) {
		a.httpClient = hc
	}
}

// WithViews replaces the default views. Nil fields keep their defaults.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}

// WithMapConfig sets the map points directly instead of loading MapPointsFile.
func WithMapConfig(m MapConfig) Option {
	return func(a *App) {
		a.mapConfig = &m
	}
}
