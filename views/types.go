package views

import "github.com/eringen/pressfront/wpapi"

// Meta carries per-page SEO, OpenGraph and Twitter card data into <head>.
type Meta struct {
	SiteName    string
	Title       string
	Description string // plain text
	Canonical   string // canonical + og:url
	OGType      string // "website" or "article"
	OGImage     string
}

// FullTitle is the <title> text: "Title | SiteName".
func (m Meta) FullTitle() string {
	if m.SiteName == "" {
		return m.Title
	}
	return m.Title + " | " + m.SiteName
}

// ListPage is a paginated list of posts: all posts, or the posts of one term.
type ListPage struct {
	Meta         Meta
	Heading      string
	Description  string // HTML, optional
	Posts        []wpapi.Post
	Pagination   Pagination
	EmptyMessage string
	BackLink     bool
}

// PostPage is a single post.
type PostPage struct {
	Meta Meta
	Post wpapi.Post
}

// MapPage lists the configured map points.
type MapPage struct {
	Meta    Meta
	Heading string
	Center  [2]float64
	Zoom    int
	Points  []MapPoint
}

// MapPoint is a place linked to a post.
type MapPoint struct {
	Title       string
	Lat         float64
	Lng         float64
	PostURL     string
	PostTitle   string
	PostExcerpt string
}

// ErrorPage is rendered for 404 and 5xx responses.
type ErrorPage struct {
	Meta      Meta
	Heading   string
	Message   string
	BackURL   string
	BackLabel string
}
