// Package pressfront is a server-rendered frontend for a headless
// WordPress-style content API, built with Go, Echo, and templ.
// It renders post listings, post pages, category and tag archives, a map
// page, an RSS feed and a sitemap from content fetched fresh per request.
//
// Sites can provide their own templ components via the ViewFuncs struct;
// pressfront handles fetching, pagination, errors and middleware.
package pressfront

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/pressfront/views"
	"github.com/eringen/pressfront/wpapi"
)

// ViewFuncs holds the templ components the framework calls when rendering
// pages. Any nil field falls back to the matching component in package views.
type ViewFuncs struct {
	PostList    func(views.ListPage) templ.Component
	Post        func(views.PostPage) templ.Component
	Map         func(views.MapPage) templ.Component
	NotFound    func(views.ErrorPage) templ.Component
	ServerError func(views.ErrorPage) templ.Component
}

func (v *ViewFuncs) setDefaults() {
	if v.PostList == nil {
		v.PostList = views.PostList
	}
	if v.Post == nil {
		v.Post = views.Post
	}
	if v.Map == nil {
		v.Map = views.Map
	}
	if v.NotFound == nil {
		v.NotFound = views.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = views.ServerError
	}
}

// App is the central pressfront application. It wires together the content
// client, walkers, handlers, middleware, and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Content *wpapi.Client
	Views   ViewFuncs
	Logger  *zap.Logger
	Metrics *Metrics

	terms         *TermCache
	sitemapWalker *wpapi.Walker
	pathsWalker   *wpapi.Walker
	walkLimiter   *RateLimiter
	mapConfig     *MapConfig
	httpClient    *http.Client
	customRoutes  []func(*App)
	staticDir     string
	ready         bool
}

// New creates a pressfront App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Logger:    zap.NewNop(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}
	a.Views.setDefaults()

	return a
}

// Setup validates the configuration, builds the content client and walkers,
// and registers middleware and routes. Start calls it; tests may call it
// directly and drive a.Echo as an http.Handler.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}

	if a.mapConfig == nil {
		m, err := LoadMapConfig(a.Config.MapPointsFile)
		if err != nil {
			return err
		}
		a.mapConfig = &m
	}

	a.Metrics = NewMetrics()
	hc := &http.Client{Timeout: a.Config.UpstreamTimeout}
	if a.httpClient != nil {
		clone := *a.httpClient
		if clone.Timeout == 0 {
			clone.Timeout = a.Config.UpstreamTimeout
		}
		hc = &clone
	}
	hc.Transport = a.Metrics.InstrumentTransport(hc.Transport)

	client, err := wpapi.NewClient(wpapi.Config{
		BaseURL:   a.Config.APIURL,
		Timeout:   a.Config.UpstreamTimeout,
		UserAgent: "pressfront",
	}, wpapi.WithHTTPClient(hc), wpapi.WithLogger(a.Logger.Named("wpapi")))
	if err != nil {
		return fmt.Errorf("pressfront: init content client: %w", err)
	}
	a.Content = client
	a.terms = NewTermCache(client, a.Config.TermCacheTTL)

	a.sitemapWalker = wpapi.NewWalker(client, wpapi.WalkerConfig{
		PageSize:      a.Config.SitemapPageSize,
		Strategy:      wpapi.StopOnShortPage,
		MaxIterations: a.Config.WalkMaxIterations,
	})
	a.pathsWalker = wpapi.NewWalker(client, wpapi.WalkerConfig{
		PageSize:      a.Config.PathsPageSize,
		Strategy:      wpapi.StopAtTotalPages,
		MaxIterations: a.Config.WalkMaxIterations,
	})
	a.walkLimiter = NewRateLimiter(a.Config.WalkRateLimit, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.ready = true
	return nil
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Logger.Info("starting server",
		zap.String("addr", a.Config.Addr),
		zap.String("site_url", a.Config.URL),
		zap.String("api_url", a.Config.APIURL),
	)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework stylesheet, falling through to the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/style.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/metrics", echo.WrapHandler(a.Metrics.Handler()))

	e.GET("/sitemap.xml", a.handleSitemap, a.walkLimiter.Middleware)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", handleHomeRedirect)
	e.GET("/posts", a.handlePosts)
	e.GET("/posts/:slug", a.handlePost)
	e.GET("/category/:slug", a.handleTerm(wpapi.Category))
	e.GET("/tag/:slug", a.handleTerm(wpapi.Tag))
	e.GET("/map", a.handleMap)
}

// Close releases background resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.walkLimiter != nil {
		a.walkLimiter.Stop()
	}
	_ = a.Logger.Sync()
	return nil
}
