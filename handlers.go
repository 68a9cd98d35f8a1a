package pressfront

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/pressfront/views"
	"github.com/eringen/pressfront/wpapi"
)

const descriptionLength = 160

func (a *App) handlePosts(c echo.Context) error {
	page := pageParam(c)
	res, err := a.Content.ListPosts(c.Request().Context(), wpapi.AllPosts(), page, a.Config.PostsPerPage)
	if err != nil {
		return err
	}
	title := "All posts"
	if page > 1 {
		title = fmt.Sprintf("All posts - Page %d", page)
	}
	description := a.Config.Description
	if description == "" {
		description = "All posts on " + a.Config.Name
	}
	return Render(c, a.Views.PostList(views.ListPage{
		Meta:         a.meta(title, description, "/posts", "website", ""),
		Heading:      "All posts",
		Posts:        res.Items,
		Pagination:   views.Pagination{Current: page, Total: res.TotalPages, BaseURL: "/posts"},
		EmptyMessage: "No posts found.",
	}))
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Content.PostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	image := ""
	if post.Media != nil {
		image = post.Media.URL
	}
	title := views.PlainText(post.Title)
	return Render(c, a.Views.Post(views.PostPage{
		Meta: a.meta(title, views.Summarize(post.Excerpt, descriptionLength), views.PostURL(post.Slug), "article", image),
		Post: post,
	}))
}

// handleTerm serves the paginated archive of one category or tag.
func (a *App) handleTerm(kind wpapi.TaxonomyKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		page := pageParam(c)
		term, err := a.terms.ResolveTerm(ctx, kind, c.Param("slug"))
		if err != nil {
			return err
		}
		res, err := a.Content.ListPosts(ctx, wpapi.InTerm(term), page, a.Config.PostsPerPage)
		if err != nil {
			return err
		}

		title := term.Name
		if page > 1 {
			title = fmt.Sprintf("%s - Page %d", term.Name, page)
		}
		base := views.TermURL(term)
		description := views.Summarize(term.Description, descriptionLength)
		if description == "" {
			description = fmt.Sprintf("Posts in the %q %s", term.Name, kind)
		}
		return Render(c, a.Views.PostList(views.ListPage{
			Meta:         a.meta(title, description, base, "website", ""),
			Heading:      term.Name,
			Description:  term.Description,
			Posts:        res.Items,
			Pagination:   views.Pagination{Current: page, Total: res.TotalPages, BaseURL: base},
			EmptyMessage: fmt.Sprintf("No posts found in this %s.", kind),
			BackLink:     true,
		}))
	}
}

func (a *App) handleMap(c echo.Context) error {
	m := a.mapConfig
	points := make([]views.MapPoint, 0, len(m.Points))
	for _, p := range m.Points {
		mp := views.MapPoint{
			Title:       p.Title,
			Lat:         p.Lat,
			Lng:         p.Lng,
			PostTitle:   p.PostTitle,
			PostExcerpt: p.PostExcerpt,
		}
		if p.PostSlug != "" {
			mp.PostURL = views.PostURL(p.PostSlug)
		}
		points = append(points, mp)
	}
	return Render(c, a.Views.Map(views.MapPage{
		Meta:    a.meta(m.Title, fmt.Sprintf("%d places on the map", len(points)), "/map", "website", ""),
		Heading: m.Title,
		Center:  m.Center,
		Zoom:    m.Zoom,
		Points:  points,
	}))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.sitemapWalker.Collect(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	res, err := a.Content.ListPosts(c.Request().Context(), wpapi.AllPosts(), 1, a.Config.FeedSize)
	if err != nil {
		return err
	}
	return a.renderRSS(c, res.Items)
}

// handleRobots generates robots.txt pointing at the sitemap.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", BuildURL(a.Config.URL, "sitemap.xml"))
	return c.String(http.StatusOK, body)
}

func handleHomeRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/posts")
}

// PostPaths lists the site path of every post, walking the catalog by the
// declared page count. Any upstream failure aborts the enumeration.
func (a *App) PostPaths(ctx context.Context) ([]string, error) {
	var paths []string
	for post, err := range a.pathsWalker.All(ctx) {
		if err != nil {
			return nil, err
		}
		paths = append(paths, views.PostURL(post.Slug))
	}
	a.Logger.Info("enumerated post paths", zap.Int("count", len(paths)))
	return paths, nil
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	log := a.Logger.With(
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.String("route", c.Path()),
	)

	var (
		notFound *wpapi.NotFoundError
		upstream *wpapi.UpstreamError
		loop     *wpapi.RuntimeLoopError
	)
	switch {
	case errors.As(err, &notFound):
		log.Info("content not found", zap.String("resource", notFound.Resource), zap.String("slug", notFound.Slug))
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.errorPage(
			"Not Found", notFound.Error())))
		return
	case errors.As(err, &upstream):
		log.Error("content API error",
			zap.String("op", upstream.Op),
			zap.Int("status_code", upstream.StatusCode),
			zap.String("code", upstream.Code),
			zap.Error(err),
		)
		_ = RenderStatus(c, http.StatusBadGateway, a.Views.ServerError(a.errorPage(
			"Error", "Error loading content. Please try again later.")))
		return
	case errors.As(err, &loop):
		log.Error("catalog walk runaway",
			zap.Int("max_iterations", loop.MaxIterations),
			zap.Bool("alert", true),
			zap.Error(err),
		)
		_ = RenderStatus(c, http.StatusInternalServerError, a.Views.ServerError(a.errorPage("Error", "")))
		return
	case errors.Is(err, context.Canceled):
		log.Debug("request canceled", zap.Error(err))
		return
	}

	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.errorPage("Not Found", "The page you requested does not exist.")))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		log.Error("server error", zap.Error(err))
		_ = RenderStatus(c, code, a.Views.ServerError(a.errorPage("Error", "")))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
