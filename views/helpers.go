package views

import (
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/eringen/pressfront/wpapi"
)

// Pagination drives the Previous / "Page N of T" / Next controls. Total is
// the page count the content API declared.
type Pagination struct {
	Current int
	Total   int
	BaseURL string
}

// Show reports whether controls should render at all. Zero declared pages
// means no controls.
func (p Pagination) Show() bool { return p.Total > 0 }

func (p Pagination) HasPrev() bool { return p.Current > 1 }

func (p Pagination) HasNext() bool { return p.Current < p.Total }

func (p Pagination) PrevURL() string { return PageURL(p.BaseURL, p.Current-1) }

func (p Pagination) NextURL() string { return PageURL(p.BaseURL, p.Current+1) }

// PageURL returns base for page 1 and base?page=n otherwise.
func PageURL(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "?page=" + strconv.Itoa(n)
}

// PostURL is the site path of a post.
func PostURL(slug string) string {
	return "/posts/" + escapeSlug(slug)
}

// TermURL is the site path of a category or tag listing.
func TermURL(t wpapi.Term) string {
	if t.Kind == wpapi.Tag {
		return "/tag/" + escapeSlug(t.Slug)
	}
	return "/category/" + escapeSlug(t.Slug)
}

// escapeSlug makes slug a single path segment. WordPress stores non-Latin
// slugs percent-encoded; existing %XX escapes are kept verbatim so the path
// routes back to the stored slug.
func escapeSlug(slug string) string {
	var b strings.Builder
	for i := 0; i < len(slug); i++ {
		if slug[i] == '%' && i+2 < len(slug) && isHex(slug[i+1]) && isHex(slug[i+2]) {
			b.WriteString(slug[i : i+3])
			i += 2
			continue
		}
		b.WriteString(url.PathEscape(slug[i : i+1]))
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// FormatDate renders t as "January 2, 2006". The zero time renders empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// PlainText strips markup from rendered HTML, decodes entities and collapses
// whitespace.
func PlainText(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return strings.Join(strings.Fields(html), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Summarize returns the plain text of html cut to at most max runes on a word
// boundary, with an ellipsis when cut.
func Summarize(html string, max int) string {
	text := PlainText(html)
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:max])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

// altText falls back to the post title when the image has no alt text.
func altText(p wpapi.Post) string {
	if p.Media != nil && p.Media.AltText != "" {
		return p.Media.AltText
	}
	return PlainText(p.Title)
}
