package search

import (
	"context"
	"strings"
	"time"

	"bookrec/internal/book"
	"bookrec/internal/platform/googlebooks"
	"bookrec/internal/platform/logger"
	"bookrec/internal/preference"
)

// MaxResults is the provider's hard per-query ceiling.
const MaxResults = 40

// Provider runs a keyword search against the external book provider.
type Provider interface {
	Volumes(ctx context.Context, query string, maxResults int) ([]googlebooks.Volume, error)
}

// Sink receives every normalized book for best-effort caching.
type Sink interface {
	Enqueue(b book.Book)
}

type Service struct {
	provider Provider
	expander *Expander
	sink     Sink
	timeout  time.Duration
	log      *logger.Logger
}

// NewService builds the search adapter. sink may be nil to disable caching;
// timeout bounds each provider call.
func NewService(provider Provider, expander *Expander, sink Sink, timeout time.Duration, log *logger.Logger) *Service {
	return &Service{
		provider: provider,
		expander: expander,
		sink:     sink,
		timeout:  timeout,
		log:      log.With("service", "search"),
	}
}

// Search runs one provider query and returns normalized, deduplicated books.
// Provider failures yield an empty result and are only logged.
func (s *Service) Search(ctx context.Context, query string, maxResults int) []book.Book {
	query = strings.TrimSpace(query)
	if query == "" {
		return []book.Book{}
	}
	maxResults = clampResults(maxResults)

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	vols, err := s.provider.Volumes(callCtx, query, maxResults)
	if err != nil {
		s.log.Warn("provider search failed", "query", query, "error", err)
		return []book.Book{}
	}

	books := make([]book.Book, 0, len(vols))
	seen := make(map[string]struct{}, len(vols))
	for _, v := range vols {
		b, ok := ToBook(v)
		if !ok {
			continue
		}
		if key, keyed := b.Key(); keyed {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		books = append(books, b)
		if s.sink != nil {
			s.sink.Enqueue(b)
		}
		if len(books) == maxResults {
			break
		}
	}
	return books
}

// SearchTerm expands a preference term and runs its query plan, stopping
// once target unique books are collected. Books come back in discovery order.
func (s *Service) SearchTerm(ctx context.Context, term string, kind preference.Kind, target int) []book.Book {
	var c Collector
	for _, q := range s.expander.Expand(term, kind, target) {
		if c.Len() >= target {
			break
		}
		if q.IssueBelow > 0 && c.Len() >= q.IssueBelow {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		for _, b := range s.Search(ctx, q.Text, q.Limit) {
			c.Add(b)
		}
	}
	return c.Books()
}

func clampResults(n int) int {
	if n <= 0 {
		return 20
	}
	if n > MaxResults {
		return MaxResults
	}
	return n
}

// Collector accumulates books keyed by provider id, first sighting wins.
// Books without a provider id are never equal to another book and are
// always kept.
type Collector struct {
	books []book.Book
	seen  map[string]struct{}
}

// Add keeps b unless a book with the same provider id was already added.
// It reports whether b was kept.
func (c *Collector) Add(b book.Book) bool {
	if key, ok := b.Key(); ok {
		if c.seen == nil {
			c.seen = make(map[string]struct{})
		}
		if _, dup := c.seen[key]; dup {
			return false
		}
		c.seen[key] = struct{}{}
	}
	c.books = append(c.books, b)
	return true
}

// Has reports whether a book with providerID was added.
func (c *Collector) Has(providerID string) bool {
	_, ok := c.seen[providerID]
	return providerID != "" && ok
}

func (c *Collector) Len() int { return len(c.books) }

// Books returns the collected books in insertion order.
func (c *Collector) Books() []book.Book {
	if c.books == nil {
		return []book.Book{}
	}
	return c.books
}
