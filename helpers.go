package pressfront

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pressfront/views"
)

// BuildURL joins a base URL with already-escaped path segments.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if len(pathSegments) == 0 {
		return u.String()
	}
	return u.JoinPath(pathSegments...).String()
}

// pageParam reads ?page=N. Missing, malformed or non-positive values read as 1,
// so a page number below 1 never reaches the content API.
func pageParam(c echo.Context) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.QueryParam("page")))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// absURL resolves a site path or absolute URL against the site origin.
func (a *App) absURL(p string) string {
	if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	base, err := url.Parse(a.Config.URL)
	if err != nil {
		return p
	}
	ref, err := url.Parse(p)
	if err != nil {
		return p
	}
	return base.ResolveReference(ref).String()
}

func (a *App) meta(title, description, sitePath, ogType, image string) views.Meta {
	if image == "" {
		image = a.Config.OGImage
	}
	return views.Meta{
		SiteName:    a.Config.Name,
		Title:       title,
		Description: description,
		Canonical:   a.absURL(sitePath),
		OGType:      ogType,
		OGImage:     a.absURL(image),
	}
}

func (a *App) errorPage(heading, message string) views.ErrorPage {
	return views.ErrorPage{
		Meta:      a.meta(heading, message, "/posts", "website", ""),
		Heading:   heading,
		Message:   message,
		BackURL:   "/posts",
		BackLabel: "Back to Posts",
	}
}
