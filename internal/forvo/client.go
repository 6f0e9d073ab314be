// Package forvo is a small client for the Forvo pronunciation API.
package forvo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apperrors "github.com/palemoky/tonetrainer/internal/errors"
	"github.com/palemoky/tonetrainer/internal/logger"
)

// DefaultEndpoint is the free API host.
const DefaultEndpoint = "https://apifree.forvo.com/"

// Mode selects how many pronunciations a lookup returns.
type Mode string

const (
	// ModeAll returns every pronunciation of the word.
	ModeAll Mode = "all"
	// ModeBest returns only the top rated pronunciation.
	ModeBest Mode = "best"
)

// IsValid checks if the mode is known
func (m Mode) IsValid() bool {
	return m == ModeAll || m == ModeBest
}

func (m Mode) action() string {
	if m == ModeBest {
		return "standard-pronunciation"
	}
	return "word-pronunciations"
}

// Candidate is one playable pronunciation of a word.
type Candidate struct {
	URL         string `json:"pathmp3"`
	Rating      int    `json:"rate"`
	Contributor string `json:"username"`
}

type response struct {
	Items []Candidate `json:"items"`
}

// Client performs pronunciation lookups. It is not meant for concurrent use
// beyond what the rate limiter tolerates.
type Client struct {
	endpoint   string
	apiKey     string
	language   string
	order      string
	mode       Mode
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithRateLimit throttles outgoing lookups. A non-positive rps disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLanguage sets the language code of the lookups.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

// WithMode chooses between all pronunciations and the single best one.
func WithMode(m Mode) Option {
	return func(c *Client) { c.mode = m }
}

// WithOrder sets the sort order used in ModeAll.
func WithOrder(order string) Option {
	return func(c *Client) { c.order = order }
}

// NewClient creates a client for the given endpoint and API key.
func NewClient(endpoint, apiKey string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	c := &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		language:   "zh",
		order:      "rate-desc",
		mode:       ModeAll,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// lookupURL builds the path-style query, e.g.
// <endpoint>key/K/format/json/action/word-pronunciations/word/W/language/zh/order/rate-desc
func (c *Client) lookupURL(word string) string {
	params := [][2]string{
		{"key", c.apiKey},
		{"format", "json"},
		{"action", c.mode.action()},
		{"word", word},
		{"language", c.language},
	}
	if c.mode == ModeAll && c.order != "" {
		params = append(params, [2]string{"order", c.order})
	}

	parts := make([]string, 0, len(params)*2)
	for _, p := range params {
		parts = append(parts, p[0], url.PathEscape(p[1]))
	}
	return c.endpoint + strings.Join(parts, "/")
}

// Pronunciations looks the word up and returns every item of the response
// unfiltered. Transport failures and non-success statuses are
// communication errors.
func (c *Client) Pronunciations(ctx context.Context, word string) ([]Candidate, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, apperrors.Communication("lookup cancelled", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.lookupURL(word), nil)
	if err != nil {
		return nil, apperrors.Communication("failed to create lookup request", err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("Looking up pronunciations",
		zap.String("word", word),
		zap.String("action", c.mode.action()),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Communication("the pronunciation service can't be reached", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.Communication(
			fmt.Sprintf("the pronunciation service returned status %d", resp.StatusCode), nil)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.Communication("failed to decode lookup response", err)
	}

	return body.Items, nil
}
