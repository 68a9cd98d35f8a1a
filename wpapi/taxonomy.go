package wpapi

import (
	"context"
	"errors"
	"net/url"
)

// ResolveTerm looks up the category or tag with the given slug.
//
// Zero matches yields a *NotFoundError. When the API returns more than one
// match the first is used; slug uniqueness is assumed, not checked.
func (c *Client) ResolveTerm(ctx context.Context, kind TaxonomyKind, slug string) (Term, error) {
	if slug == "" {
		return Term{}, errors.New("wpapi: resolve term: empty slug")
	}
	var terms []wpTerm
	_, err := c.get(ctx, "resolve "+kind.String(), kind.endpoint(), url.Values{"slug": {slug}}, &terms)
	if err != nil {
		return Term{}, err
	}
	if len(terms) == 0 {
		return Term{}, &NotFoundError{Resource: kind.String(), Slug: slug}
	}
	return terms[0].toTerm(kind), nil
}
