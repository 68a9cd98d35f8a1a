package wpapi

import (
	"encoding/json"
	"strings"
	"time"
)

// TaxonomyKind selects one of the two grouping taxonomies.
type TaxonomyKind int

const (
	Category TaxonomyKind = iota
	Tag
)

// endpoint is the REST collection for the kind.
func (k TaxonomyKind) endpoint() string {
	if k == Tag {
		return "tags"
	}
	return "categories"
}

// taxonomy is the value WordPress reports in embedded term objects.
func (k TaxonomyKind) taxonomy() string {
	if k == Tag {
		return "post_tag"
	}
	return "category"
}

func (k TaxonomyKind) String() string {
	if k == Tag {
		return "tag"
	}
	return "category"
}

// Term is a category or tag.
type Term struct {
	ID          int64
	Kind        TaxonomyKind
	Slug        string
	Name        string
	Description string // HTML, may be empty
	Count       int
}

// Media is an embedded featured image.
type Media struct {
	URL     string
	AltText string
}

// Post is a read-only projection of a remote post.
type Post struct {
	ID         int64
	Slug       string
	Title      string // HTML
	Content    string // HTML
	Excerpt    string // HTML
	Date       time.Time
	Modified   time.Time
	Author     string
	Media      *Media
	Categories []Term
	Tags       []Term
}

// Page is one page of a collection. Total and TotalPages are the counts the
// server declared in its response headers, never derived from Items.
type Page[T any] struct {
	Items      []T
	Number     int
	Total      int
	TotalPages int
}

// Wire formats.

type wpRendered struct {
	Rendered string `json:"rendered"`
}

// wpTime accepts the timezone-less timestamps WordPress emits
// ("2024-01-15T10:30:00") as well as RFC 3339.
type wpTime struct {
	time.Time
}

const wpTimeLayout = "2006-01-02T15:04:05"

func (t *wpTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	if v, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = v
		return nil
	}
	v, err := time.Parse(wpTimeLayout, s)
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}

type wpPost struct {
	ID          int64       `json:"id"`
	Slug        string      `json:"slug"`
	Title       wpRendered  `json:"title"`
	Content     wpRendered  `json:"content"`
	Excerpt     wpRendered  `json:"excerpt"`
	Date        wpTime      `json:"date"`
	DateGMT     wpTime      `json:"date_gmt"`
	Modified    wpTime      `json:"modified"`
	ModifiedGMT wpTime      `json:"modified_gmt"`
	Embedded    *wpEmbedded `json:"_embedded,omitempty"`
}

type wpEmbedded struct {
	FeaturedMedia []wpMedia  `json:"wp:featuredmedia"`
	Terms         [][]wpTerm `json:"wp:term"`
	Author        []wpAuthor `json:"author"`
}

type wpMedia struct {
	SourceURL string `json:"source_url"`
	AltText   string `json:"alt_text"`
}

type wpAuthor struct {
	Name string `json:"name"`
}

type wpTerm struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Taxonomy    string `json:"taxonomy"`
	Count       int    `json:"count"`
}

type wpError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (t wpTerm) toTerm(kind TaxonomyKind) Term {
	return Term{
		ID:          t.ID,
		Kind:        kind,
		Slug:        t.Slug,
		Name:        t.Name,
		Description: t.Description,
		Count:       t.Count,
	}
}

// gmtOr prefers the GMT timestamp, which WordPress reports without an offset.
func gmtOr(gmt, local wpTime) time.Time {
	if !gmt.IsZero() {
		return gmt.UTC()
	}
	return local.Time
}

func (p wpPost) toPost() Post {
	post := Post{
		ID:       p.ID,
		Slug:     p.Slug,
		Title:    p.Title.Rendered,
		Content:  p.Content.Rendered,
		Excerpt:  p.Excerpt.Rendered,
		Date:     gmtOr(p.DateGMT, p.Date),
		Modified: gmtOr(p.ModifiedGMT, p.Modified),
	}
	if p.Embedded == nil {
		return post
	}
	// A private attachment embeds as an error object with no source_url.
	if len(p.Embedded.FeaturedMedia) > 0 && p.Embedded.FeaturedMedia[0].SourceURL != "" {
		m := p.Embedded.FeaturedMedia[0]
		post.Media = &Media{URL: m.SourceURL, AltText: m.AltText}
	}
	if len(p.Embedded.Author) > 0 {
		post.Author = p.Embedded.Author[0].Name
	}
	for _, group := range p.Embedded.Terms {
		for _, t := range group {
			switch t.Taxonomy {
			case Category.taxonomy():
				post.Categories = append(post.Categories, t.toTerm(Category))
			case Tag.taxonomy():
				post.Tags = append(post.Tags, t.toTerm(Tag))
			}
		}
	}
	return post
}
