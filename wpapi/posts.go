package wpapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Filter restricts a posts collection. The zero value lists every post.
type Filter struct {
	kind   filterKind
	termID int64
	slug   string
}

type filterKind int

const (
	filterAll filterKind = iota
	filterCategory
	filterSlug
	filterTag
)

// AllPosts matches the whole collection.
func AllPosts() Filter { return Filter{} }

// InTerm matches posts assigned to term.
func InTerm(term Term) Filter {
	if term.Kind == Tag {
		return Filter{kind: filterTag, termID: term.ID}
	}
	return Filter{kind: filterCategory, termID: term.ID}
}

// BySlug matches the single post with the given slug.
func BySlug(slug string) Filter { return Filter{kind: filterSlug, slug: slug} }

func (f Filter) String() string {
	switch f.kind {
	case filterCategory:
		return "category=" + strconv.FormatInt(f.termID, 10)
	case filterTag:
		return "tag=" + strconv.FormatInt(f.termID, 10)
	case filterSlug:
		return "slug=" + f.slug
	default:
		return "all"
	}
}

func (f Filter) apply(q url.Values) {
	switch f.kind {
	case filterCategory:
		q.Set(Category.endpoint(), strconv.FormatInt(f.termID, 10))
	case filterTag:
		q.Set(Tag.endpoint(), strconv.FormatInt(f.termID, 10))
	case filterSlug:
		q.Set("slug", f.slug)
	}
}

// ListPosts fetches one page of the collection selected by filter. page is
// 1-indexed and passed through unchanged. Embedded media, terms and author are
// requested inline. Items keep the order the server returned them in.
func (c *Client) ListPosts(ctx context.Context, filter Filter, page, perPage int) (Page[Post], error) {
	q := url.Values{}
	filter.apply(q)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("_embed", "1")

	var raw []wpPost
	resp, err := c.get(ctx, fmt.Sprintf("list posts (%s, page %d)", filter, page), "posts", q, &raw)
	if err != nil {
		return Page[Post]{}, err
	}
	items := make([]Post, 0, len(raw))
	for _, p := range raw {
		items = append(items, p.toPost())
	}
	return Page[Post]{
		Items:      items,
		Number:     page,
		Total:      resp.total,
		TotalPages: resp.totalPages,
	}, nil
}

// PostBySlug fetches a single post. An empty result yields a *NotFoundError.
func (c *Client) PostBySlug(ctx context.Context, slug string) (Post, error) {
	if slug == "" {
		return Post{}, errors.New("wpapi: post by slug: empty slug")
	}
	page, err := c.ListPosts(ctx, BySlug(slug), 1, 1)
	if err != nil {
		return Post{}, err
	}
	if len(page.Items) == 0 {
		return Post{}, &NotFoundError{Resource: "post", Slug: slug}
	}
	return page.Items[0], nil
}
