package recommend

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"bookrec/internal/book"
	"bookrec/internal/genre"
	"bookrec/internal/preference"
)

// RecencyTier awards Bonus to books published in MinYear or later.
type RecencyTier struct {
	MinYear int     `yaml:"min_year"`
	Bonus   float64 `yaml:"bonus"`
}

// Weights are the additive scoring signals.
type Weights struct {
	Genre            float64       `yaml:"genre"`
	Author           float64       `yaml:"author"`
	RatingMultiplier float64       `yaml:"rating_multiplier"`
	TitleFallback    float64       `yaml:"title_fallback"`
	Recency          []RecencyTier `yaml:"recency"`
}

func DefaultWeights() Weights {
	return Weights{
		Genre:            50,
		Author:           30,
		RatingMultiplier: 4,
		TitleFallback:    20,
		Recency: []RecencyTier{
			{MinYear: 2020, Bonus: 10},
			{MinYear: 2015, Bonus: 5},
		},
	}
}

// Validate rejects negative weights so scores stay non-negative.
func (w Weights) Validate() error {
	if w.Genre < 0 || w.Author < 0 || w.RatingMultiplier < 0 || w.TitleFallback < 0 {
		return fmt.Errorf("weights must not be negative")
	}
	for _, t := range w.Recency {
		if t.Bonus < 0 {
			return fmt.Errorf("recency bonus for %d must not be negative", t.MinYear)
		}
	}
	return nil
}

// Scorer computes relevance scores. It is safe for concurrent use.
type Scorer struct {
	weights  Weights
	recency  []RecencyTier
	synonyms genre.Synonyms
}

func NewScorer(w Weights, synonyms genre.Synonyms) *Scorer {
	tiers := append([]RecencyTier(nil), w.Recency...)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MinYear > tiers[j].MinYear })
	return &Scorer{weights: w, recency: tiers, synonyms: synonyms}
}

// Score returns the relevance of b for the given favorites.
func (s *Scorer) Score(b book.Book, prefs preference.Set) float64 {
	var score float64

	for _, category := range b.Categories {
		for _, fav := range prefs.Genres {
			if s.synonyms.Matches(category, fav) {
				score += s.weights.Genre
				break
			}
		}
	}

	for _, author := range b.Authors {
		for _, fav := range prefs.Authors {
			if containsFold(author, fav) {
				score += s.weights.Author
				break
			}
		}
	}

	if b.AverageRating != nil {
		score += *b.AverageRating * s.weights.RatingMultiplier
	}

	if year, ok := leadingYear(b.PublishedDate); ok {
		for _, t := range s.recency {
			if year >= t.MinYear {
				score += t.Bonus
				break
			}
		}
	}

	if len(b.Categories) == 0 {
		title := strings.ToLower(b.Title)
		for _, fav := range prefs.Genres {
			f := strings.ToLower(strings.TrimSpace(fav))
			if f != "" && strings.Contains(title, f) {
				score += s.weights.TitleFallback
				break
			}
		}
	}

	return score
}

// Rank scores candidates, drops those scoring zero, and returns at most
// limit books ordered by score. Equal scores keep candidate order.
func (s *Scorer) Rank(candidates []book.Book, prefs preference.Set, limit int) []book.Book {
	scored := make([]book.Book, 0, len(candidates))
	for _, b := range candidates {
		b.Score = s.Score(b, prefs)
		if b.Score > 0 {
			scored = append(scored, b)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// containsFold reports case-insensitive substring containment either way.
func containsFold(a, b string) bool {
	a, b = strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func leadingYear(date string) (int, bool) {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0, false
	}
	for _, c := range date[:4] {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	year, err := strconv.Atoi(date[:4])
	return year, err == nil
}
