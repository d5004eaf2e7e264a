package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

// DefaultURL is the canonical location of the Public Suffix List.
const DefaultURL = "https://publicsuffix.org/list/public_suffix_list.dat"

// DefaultFetchTimeout bounds a dataset fetch when the caller's context
// carries no deadline of its own.
const DefaultFetchTimeout = 30 * time.Second

// HTTPSource fetches the dataset text over HTTP.
type HTTPSource struct {
	// URL is the location of the dataset. If empty, [DefaultURL] is used.
	URL string

	// Timeout bounds the fetch. If zero, [DefaultFetchTimeout] is used.
	Timeout time.Duration

	// Client is the HTTP client to use. If nil, [http.DefaultClient] is used.
	Client *http.Client
}

// String implements [Source.String].
func (s *HTTPSource) String() string {
	return "url " + s.url()
}

// ReadText implements [Source.ReadText].
func (s *HTTPSource) ReadText(ctx context.Context) (string, error) {
	timeout := s.Timeout
	if timeout == 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %s", ErrUnavailable, s.url(), resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: %s", ErrEncoding, s.url())
	}

	return string(body), nil
}

func (s *HTTPSource) url() string {
	if s.URL == "" {
		return DefaultURL
	}
	return s.URL
}
