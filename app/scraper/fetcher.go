package scraper

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/eubelhor/house-scraper/app/parser"
)

// Fetcher wraps the HTTP client used against the sources: bounded retries
// on transient failures (network error, 5xx), custom user agent, and a
// polite fixed delay between consecutive requests.
type Fetcher struct {
	client *resty.Client
	delay  time.Duration
	last   time.Time
}

func NewFetcher(userAgent string, timeout time.Duration, retryCount int, delay time.Duration) *Fetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(10 * time.Second).
		SetHeader("User-Agent", userAgent).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() >= 500
		})

	return &Fetcher{
		client: client,
		delay:  delay,
	}
}

// Run fetches a single source. A non-200 final status or exhausted
// retries surface as a FetchError.
func (f *Fetcher) Run(ctx context.Context, source *SourceConfig) ([]byte, error) {
	if err := f.politeWait(ctx); err != nil {
		return nil, err
	}

	if source.Settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(source.Settings.Timeout)*time.Second)
		defer cancel()
	}

	req := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", acceptHeader(source.Kind))

	slog.Debug("Fetching source", "source", source.Name, "url", source.URL)
	resp, err := req.Get(source.URL)
	f.last = time.Now()

	if err != nil {
		return nil, &FetchError{Source: source.Name, URL: source.URL, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &FetchError{Source: source.Name, URL: source.URL, StatusCode: resp.StatusCode()}
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, &FetchError{Source: source.Name, URL: source.URL, Err: errEmptyBody}
	}

	return body, nil
}

// politeWait enforces the inter-request delay. The first request goes out
// immediately.
func (f *Fetcher) politeWait(ctx context.Context) error {
	if f.last.IsZero() || f.delay <= 0 {
		return nil
	}

	wait := f.delay - time.Since(f.last)
	if wait <= 0 {
		return nil
	}

	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func acceptHeader(kind string) string {
	if kind == parser.KindGovTrack {
		return "application/json"
	}
	return "text/html,application/xhtml+xml"
}
