package googlebooks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bookrec/internal/platform/logger"
	"bookrec/internal/platform/metrics"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 15 * time.Second
	retryBackoff   = time.Second

	DefaultBaseURL = "https://www.googleapis.com/books/v1/volumes"
	breakerName    = "google-books"
)

// ErrUnavailable is returned while the circuit breaker rejects calls.
var ErrUnavailable = errors.New("google books: provider unavailable")

type Config struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	RPS        int
	MaxRetries int
	Timeout    time.Duration
	Logger     *logger.Logger
}

// CallBudget is the longest one Volumes call can take when every attempt
// times out: MaxRetries+1 attempts plus the backoff waits between them.
// Callers bounding a search should allow at least this much.
func (c Config) CallBudget() time.Duration {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retries := max(c.MaxRetries, 0)
	waits := retryBackoff * time.Duration(1<<uint(retries)-1)
	return timeout*time.Duration(retries+1) + waits
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
	breaker    *gobreaker.CircuitBreaker[[]Volume]
	log        *logger.Logger
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}

	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Every(time.Second / time.Duration(cfg.RPS))
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		limiter:    rate.NewLimiter(limit, 1),
		maxRetries: cfg.MaxRetries,
		backoff:    retryBackoff,
		log:        cfg.Logger.With("component", "googlebooks"),
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	c.breaker = gobreaker.NewCircuitBreaker[[]Volume](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("circuit breaker state change", "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
	return c
}

// VolumesResponse matches the volumes list endpoint.
type VolumesResponse struct {
	Kind       string   `json:"kind"`
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

type Volume struct {
	ID         string      `json:"id"`
	VolumeInfo *VolumeInfo `json:"volumeInfo"`
}

type VolumeInfo struct {
	Title         string      `json:"title"`
	Authors       []string    `json:"authors"`
	Description   string      `json:"description"`
	Categories    []string    `json:"categories"`
	PublishedDate string      `json:"publishedDate"`
	PageCount     *int        `json:"pageCount"`
	Language      string      `json:"language"`
	AverageRating Rating      `json:"averageRating"`
	ImageLinks    *ImageLinks `json:"imageLinks"`
}

type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

// Rating accepts integer, floating point or numeric string ratings.
// Anything else, or a value outside 0..5, decodes as absent.
type Rating struct {
	Value float64
	Valid bool
}

func (r *Rating) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	*r = Rating{}
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 5 {
		return nil
	}
	*r = Rating{Value: v, Valid: true}
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(r.Value, 'f', -1, 64)), nil
}

// Volumes runs a keyword search. maxResults is passed through as-is; callers cap it.
func (c *Client) Volumes(ctx context.Context, query string, maxResults int) ([]Volume, error) {
	u := fmt.Sprintf("%s?q=%s&maxResults=%d&orderBy=relevance",
		c.baseURL, url.QueryEscape(query), maxResults)
	if c.apiKey != "" {
		u += "&key=" + url.QueryEscape(c.apiKey)
	}

	start := time.Now()
	items, err := c.breaker.Execute(func() ([]Volume, error) {
		var res VolumesResponse
		if err := c.get(ctx, u, &res); err != nil {
			return nil, err
		}
		return res.Items, nil
	})
	metrics.ProviderDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.ProviderRequests.WithLabelValues("rejected").Inc()
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		metrics.ProviderRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.ProviderRequests.WithLabelValues("success").Inc()
	return items, nil
}

func (c *Client) get(ctx context.Context, u string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := c.backoff * time.Duration(1<<uint(i-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		retry, err := c.do(ctx, u, target)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) do(ctx context.Context, u string, target interface{}) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500, err
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return false, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
