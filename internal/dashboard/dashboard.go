// Package dashboard loads the externally-supplied dashboard document. The
// document is opaque to the service and served back verbatim; it is an
// optional resource and every failure here is non-fatal.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ErrUnavailable is returned when no dashboard document could be obtained.
var ErrUnavailable = errors.New("dashboard data unavailable")

// Data is the dashboard document as decoded JSON.
type Data map[string]any

// LoadFile reads a dashboard document from disk.
func LoadFile(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode dashboard data %s: %w", path, err)
	}
	return data, nil
}

// FetcherConfig holds configuration for fetching dashboard data over HTTP.
type FetcherConfig struct {
	// URL of the dashboard document.
	URL string

	// RequestTimeout per attempt (default: 10s).
	RequestTimeout time.Duration

	// MaxElapsedTime caps the total retry budget (default: 1m).
	MaxElapsedTime time.Duration
}

// FetchURL retrieves a dashboard document over HTTP, retrying transient
// failures with capped exponential backoff. It is meant for startup use.
func FetchURL(ctx context.Context, cfg FetcherConfig) (Data, error) {
	requestTimeout := cfg.RequestTimeout
	if requestTimeout == 0 {
		requestTimeout = 10 * time.Second
	}
	maxElapsed := cfg.MaxElapsedTime
	if maxElapsed == 0 {
		maxElapsed = time.Minute
	}

	client := &http.Client{Timeout: requestTimeout}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxElapsed

	var data Data
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, http.NoBody)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("executing request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("dashboard fetch returned status %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}

		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return backoff.Permanent(fmt.Errorf("decode dashboard response: %w", err))
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, nil
}
