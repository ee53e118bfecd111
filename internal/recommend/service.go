package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookrec/internal/book"
	"bookrec/internal/platform/logger"
	"bookrec/internal/platform/metrics"
	"bookrec/internal/preference"
	"bookrec/internal/search"
)

var (
	// ErrUserNotFound means the user id is unknown.
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreUnavailable means preferences or history could not be read.
	ErrStoreUnavailable = errors.New("recommendation store unavailable")
)

const (
	MessageFound    = "Recommendations generated successfully"
	MessageNotFound = "No recommendations found"
)

type UserChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type PreferenceStore interface {
	ListByUser(ctx context.Context, userID string) ([]preference.Preference, error)
}

// HistoryStore lists provider ids of books already in a user's library.
type HistoryStore interface {
	ProviderIDs(ctx context.Context, userID string) ([]string, error)
}

type Config struct {
	PerTermLimit  int
	FallbackQuery string
}

// Result is the outbound recommendation payload.
type Result struct {
	Recommendations []book.Book `json:"recommendations"`
	TotalResults    int         `json:"total_results"`
	Message         string      `json:"message"`
}

type Service struct {
	users      UserChecker
	prefs      PreferenceStore
	history    HistoryStore
	searcher   Searcher
	aggregator *Aggregator
	scorer     *Scorer
	cfg        Config
	log        *logger.Logger
}

func NewService(users UserChecker, prefs PreferenceStore, history HistoryStore, searcher Searcher, aggregator *Aggregator, scorer *Scorer, cfg Config, log *logger.Logger) *Service {
	if cfg.PerTermLimit <= 0 {
		cfg.PerTermLimit = 20
	}
	if cfg.FallbackQuery == "" {
		cfg.FallbackQuery = "bestseller"
	}
	return &Service{
		users:      users,
		prefs:      prefs,
		history:    history,
		searcher:   searcher,
		aggregator: aggregator,
		scorer:     scorer,
		cfg:        cfg,
		log:        log.With("service", "recommend"),
	}
}

// Recommend returns at most limit books for the user. Only an unknown user
// or an unreachable store is an error; provider failures shrink the result.
func (s *Service) Recommend(ctx context.Context, userID string, limit int) (Result, error) {
	start := time.Now()
	if limit <= 0 {
		return newResult(nil), nil
	}

	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		s.log.Error("user lookup failed", "user_id", userID, "error", err)
		return Result{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if !ok {
		return Result{}, ErrUserNotFound
	}

	rows, err := s.prefs.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("preference lookup failed", "user_id", userID, "error", err)
		return Result{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	prefs := preference.Split(rows)

	if prefs.Empty() {
		books := s.searcher.Search(ctx, s.cfg.FallbackQuery, limit)
		if len(books) > limit {
			books = books[:limit]
		}
		s.observe("fallback", start, len(books))
		return newResult(books), nil
	}

	readIDs, err := s.history.ProviderIDs(ctx, userID)
	if err != nil {
		s.log.Error("history lookup failed", "user_id", userID, "error", err)
		return Result{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	excluded := make(map[string]struct{}, len(readIDs))
	for _, id := range readIDs {
		excluded[id] = struct{}{}
	}

	candidates := s.aggregator.Aggregate(ctx, prefs.Genres, prefs.Authors, excluded, s.cfg.PerTermLimit)
	ranked := s.scorer.Rank(candidates, prefs, limit)

	if len(ranked) < limit && len(prefs.Genres) > 0 {
		ranked = s.supplement(ctx, ranked, prefs, excluded, limit)
	}

	s.log.Debug("recommendations ranked", "user_id", userID, "candidates", len(candidates), "returned", len(ranked))
	s.observe("scored", start, len(ranked))
	return newResult(ranked), nil
}

// supplement runs one broad keyword search on the first favorite genre and
// appends its positively scored books until limit is reached.
func (s *Service) supplement(ctx context.Context, ranked []book.Book, prefs preference.Set, excluded map[string]struct{}, limit int) []book.Book {
	metrics.SupplementalSearches.Inc()

	var have search.Collector
	for _, b := range ranked {
		have.Add(b)
	}

	pool := make([]book.Book, 0, limit)
	for _, b := range s.searcher.Search(ctx, prefs.Genres[0], limit) {
		if b.ProviderID == "" {
			continue
		}
		if _, skip := excluded[b.ProviderID]; skip || have.Has(b.ProviderID) {
			continue
		}
		pool = append(pool, b)
	}

	for _, b := range s.scorer.Rank(pool, prefs, limit-len(ranked)) {
		if have.Add(b) {
			ranked = append(ranked, b)
		}
	}
	return ranked
}

func (s *Service) observe(path string, start time.Time, n int) {
	metrics.RecommendationDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	metrics.RecommendationResults.Observe(float64(n))
}

func newResult(books []book.Book) Result {
	if books == nil {
		books = []book.Book{}
	}
	msg := MessageFound
	if len(books) == 0 {
		msg = MessageNotFound
	}
	return Result{Recommendations: books, TotalResults: len(books), Message: msg}
}
