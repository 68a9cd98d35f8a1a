package wpapi

import (
	"context"
	"errors"
	"iter"

	"go.uber.org/zap"
)

// Strategy decides when a catalog walk has reached its last page and what
// happens when a page request is rejected upstream.
type Strategy int

const (
	// StopOnShortPage ends the walk at the first page holding fewer than
	// PageSize items. An *UpstreamError ends the walk early and keeps the
	// items already yielded; the failure is logged, not returned.
	StopOnShortPage Strategy = iota
	// StopAtTotalPages ends the walk once the page number reaches the
	// X-WP-TotalPages header. An *UpstreamError is returned to the caller.
	StopAtTotalPages
)

func (s Strategy) String() string {
	if s == StopAtTotalPages {
		return "total-pages"
	}
	return "short-page"
}

const (
	DefaultWalkPageSize      = 10
	DefaultWalkMaxIterations = 10000
)

// WalkerConfig configures a Walker. Zero fields take the defaults.
type WalkerConfig struct {
	PageSize      int
	Strategy      Strategy
	MaxIterations int
}

// Walker pages through every post in the catalog, starting from page 1 on
// each call to All.
type Walker struct {
	client        *Client
	pageSize      int
	strategy      Strategy
	maxIterations int
}

// NewWalker returns a Walker that reads through c.
func NewWalker(c *Client, cfg WalkerConfig) *Walker {
	w := &Walker{
		client:        c,
		pageSize:      cfg.PageSize,
		strategy:      cfg.Strategy,
		maxIterations: cfg.MaxIterations,
	}
	if w.pageSize <= 0 {
		w.pageSize = DefaultWalkPageSize
	}
	if w.maxIterations <= 0 {
		w.maxIterations = DefaultWalkMaxIterations
	}
	return w
}

// All returns the catalog as a lazy sequence. Pages are requested only as the
// consumer advances; breaking out of the loop stops the walk. A terminal error
// is yielded once, with a zero Post, as the last element.
func (w *Walker) All(ctx context.Context) iter.Seq2[Post, error] {
	return func(yield func(Post, error) bool) {
		log := w.client.log.With(zap.String("strategy", w.strategy.String()), zap.Int("page_size", w.pageSize))
		collected := 0
		for page := 1; ; page++ {
			if page > w.maxIterations {
				err := &RuntimeLoopError{MaxIterations: w.maxIterations, Collected: collected}
				log.Error("catalog walk aborted: iteration ceiling reached",
					zap.Int("max_iterations", w.maxIterations),
					zap.Int("collected", collected),
					zap.Bool("alert", true),
				)
				yield(Post{}, err)
				return
			}

			p, err := w.client.ListPosts(ctx, AllPosts(), page, w.pageSize)
			if err != nil {
				var ue *UpstreamError
				if w.strategy == StopOnShortPage && errors.As(err, &ue) {
					log.Warn("catalog walk stopped early, returning partial result",
						zap.Int("page", page),
						zap.Int("status_code", ue.StatusCode),
						zap.Int("collected", collected),
					)
					return
				}
				yield(Post{}, err)
				return
			}

			for _, item := range p.Items {
				collected++
				if !yield(item, nil) {
					return
				}
			}
			if w.lastPage(page, p) {
				return
			}
		}
	}
}

func (w *Walker) lastPage(page int, p Page[Post]) bool {
	if w.strategy == StopAtTotalPages {
		return page >= p.TotalPages
	}
	return len(p.Items) < w.pageSize
}

// Collect drains All. On error it returns the posts gathered before the
// failure together with the error.
func (w *Walker) Collect(ctx context.Context) ([]Post, error) {
	var posts []Post
	for post, err := range w.All(ctx) {
		if err != nil {
			return posts, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}
