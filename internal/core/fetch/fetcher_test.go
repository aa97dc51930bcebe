package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/errors"
)

const (
	headerUserAgent = "User-Agent"
	headerAccept    = "Accept"
	testBody        = `{"items":[{"id":1}]}`
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		rps     float64
		timeout time.Duration
	}{
		{
			name:    "default timeout",
			rps:     2.0,
			timeout: 0,
		},
		{
			name:    "custom timeout",
			rps:     5.0,
			timeout: 10 * time.Second,
		},
		{
			name:    "negative timeout uses default",
			rps:     1.0,
			timeout: -1 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.rps, tt.timeout)

			require.NotNil(t, client, "NewClient() returned nil")
			require.NotNil(t, client.client, "client is nil")
			require.NotNil(t, client.limiter, "limiter is nil")
			require.NotEmpty(t, client.userAgent, "userAgent is empty")
		})
	}
}

func TestClientFetch(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(headerUserAgent) == "" {
				t.Error("User-Agent header not set")
			}

			if r.Header.Get(headerAccept) == "" {
				t.Error("Accept header not set")
			}

			w.WriteHeader(http.StatusOK)

			if _, err := w.Write([]byte(testBody)); err != nil {
				t.Errorf("write response body: %v", err)
			}
		}))
		defer server.Close()

		client := NewClient(10, 5*time.Second)

		body, err := client.Fetch(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}

		if string(body) != testBody {
			t.Errorf("Fetch() body = %q, want %q", string(body), testBody)
		}
	})

	t.Run("follows redirect", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/question/random" {
				http.Redirect(w, r, "/question/1", http.StatusFound)
				return
			}

			w.WriteHeader(http.StatusOK)

			if _, err := w.Write([]byte(testBody)); err != nil {
				t.Errorf("write response body: %v", err)
			}
		}))
		defer server.Close()

		client := NewClient(10, 5*time.Second)

		body, err := client.Fetch(context.Background(), server.URL+"/question/random")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}

		if string(body) != testBody {
			t.Errorf("Fetch() body = %q, want %q", string(body), testBody)
		}
	})

	t.Run("non-2xx status code", func(t *testing.T) {
		statuses := []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusTooManyRequests}

		for _, status := range statuses {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))

			client := NewClient(10, 5*time.Second)

			_, err := client.Fetch(context.Background(), server.URL)
			if !errors.Is(err, errors.ErrFetchFailed) {
				t.Errorf("Fetch() error = %v, want ErrFetchFailed for status %d", err, status)
			}

			server.Close()
		}
	})

	t.Run("network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		server.Close() // Closed before the request is made

		client := NewClient(10, 5*time.Second)

		_, err := client.Fetch(context.Background(), server.URL)
		if !errors.Is(err, errors.ErrFetchFailed) {
			t.Errorf("Fetch() error = %v, want ErrFetchFailed", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(100 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(10, 5*time.Second)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Fetch(ctx, server.URL)
		if err == nil {
			t.Error("Fetch() expected error for canceled context")
		}
	})

	t.Run("invalid URL", func(t *testing.T) {
		client := NewClient(10, 5*time.Second)

		_, err := client.Fetch(context.Background(), "://invalid-url")
		if err == nil {
			t.Error("Fetch() expected error for invalid URL")
		}
	})
}

func TestClientRedirectLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/redirect", http.StatusFound)
	}))
	defer server.Close()

	client := NewClient(10, 5*time.Second)

	_, err := client.Fetch(context.Background(), server.URL)
	if !errors.Is(err, errors.ErrFetchFailed) {
		t.Errorf("Fetch() error = %v, want ErrFetchFailed for redirect loop", err)
	}
}
