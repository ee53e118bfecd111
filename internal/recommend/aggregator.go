package recommend

import (
	"context"

	"bookrec/internal/book"
	"bookrec/internal/preference"
	"bookrec/internal/search"

	"golang.org/x/sync/errgroup"
)

// Searcher is the search adapter as seen by the recommender.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) []book.Book
	SearchTerm(ctx context.Context, term string, kind preference.Kind, target int) []book.Book
}

// Aggregator gathers candidate books for a set of preference terms.
type Aggregator struct {
	searcher Searcher
	fanOut   int
}

func NewAggregator(searcher Searcher, fanOut int) *Aggregator {
	if fanOut <= 0 {
		fanOut = 4
	}
	return &Aggregator{searcher: searcher, fanOut: fanOut}
}

type termQuery struct {
	term string
	kind preference.Kind
}

// Aggregate searches every genre then every author term and merges the
// results by provider id, first sighting wins. Books in excluded are dropped
// before they reach the candidate list. Searches run concurrently but the
// merge follows term order, so the output is the same for the same inputs.
func (a *Aggregator) Aggregate(ctx context.Context, genres, authors []string, excluded map[string]struct{}, perTermLimit int) []book.Book {
	terms := make([]termQuery, 0, len(genres)+len(authors))
	for _, g := range genres {
		terms = append(terms, termQuery{term: g, kind: preference.KindGenre})
	}
	for _, au := range authors {
		terms = append(terms, termQuery{term: au, kind: preference.KindAuthor})
	}

	results := make([][]book.Book, len(terms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.fanOut)
	for i, tq := range terms {
		g.Go(func() error {
			results[i] = a.searcher.SearchTerm(gctx, tq.term, tq.kind, perTermLimit)
			return nil
		})
	}
	_ = g.Wait()

	var c search.Collector
	for _, books := range results {
		for _, b := range books {
			if _, skip := excluded[b.ProviderID]; skip && b.ProviderID != "" {
				continue
			}
			c.Add(b)
		}
	}
	return c.Books()
}
