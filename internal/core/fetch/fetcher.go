// Package fetch provides the rate-limited HTTP client shared by question sources.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/errors"
)

const (
	defaultFetchTimeoutSeconds = 30
	limiterBurst               = 5
	maxRedirects               = 5
	maxBodySizeMB              = 2
	maxBodySizeBytes           = maxBodySizeMB * 1024 * 1024
)

type Client struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func NewClient(rps float64, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultFetchTimeoutSeconds * time.Second
	}

	return &Client{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("%w: too many redirects", errors.ErrFetchFailed)
				}

				return nil
			},
		},
		limiter:   rate.NewLimiter(rate.Limit(rps), limiterBurst),
		userAgent: "QuizBot/1.0 (Trivia Bot)",
	}
}

// Fetch retrieves rawURL and returns the response body.
// Network failures and non-2xx statuses are reported as errors.ErrFetchFailed.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/json;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9,en;q=0.5")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %w", errors.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", errors.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySizeBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return body, nil
}
