package pressfront

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pressfront/views"
	"github.com/eringen/pressfront/wpapi"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func (a *App) buildSitemap(posts []wpapi.Post) sitemapURLSet {
	base := a.Config.URL
	urls := make([]sitemapURL, 0, len(posts)+2)
	urls = append(urls,
		sitemapURL{Loc: BuildURL(base), ChangeFreq: "daily", Priority: "1.0"},
		sitemapURL{Loc: BuildURL(base, "posts"), ChangeFreq: "daily", Priority: "0.8"},
	)
	for _, p := range posts {
		u := sitemapURL{
			Loc:        BuildURL(base, views.PostURL(p.Slug)),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		}
		if !p.Modified.IsZero() {
			u.LastMod = p.Modified.UTC().Format(time.RFC3339)
		}
		urls = append(urls, u)
	}
	return sitemapURLSet{XMLNS: sitemapNS, URLs: urls}
}

func writeXML(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(v)
}

func (a *App) renderSitemap(c echo.Context, posts []wpapi.Post) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return writeXML(c.Response(), a.buildSitemap(posts))
}

// WriteSitemap walks the catalog and writes the sitemap XML to w.
func (a *App) WriteSitemap(ctx context.Context, w io.Writer) error {
	posts, err := a.sitemapWalker.Collect(ctx)
	if err != nil {
		return err
	}
	return writeXML(w, a.buildSitemap(posts))
}
