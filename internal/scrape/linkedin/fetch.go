package linkedin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobsweep/internal/scrape/util"
)

// FetchError is any failed page load: transport error, timeout, or a
// non-2xx status. Status is 0 when no response ever arrived. The fetcher
// never retries; whether to retry, skip, or abort belongs to the caller.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher loads guest pages over plain HTTPS GET. The public endpoints
// reject requests that don't look like a browser, so a realistic header set
// goes on every request.
type Fetcher struct {
	hc        *http.Client
	userAgent string
	limiter   *util.HostLimiter
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

func NewFetcher(timeout time.Duration, userAgent string, limiter *util.HostLimiter) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Fetcher{
		hc:        &http.Client{Timeout: timeout},
		userAgent: userAgent,
		limiter:   limiter,
	}
}

// Fetch waits for a limiter token, then GETs the URL and returns the body.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, rawURL); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	res, err := f.hc.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &FetchError{URL: rawURL, Status: res.StatusCode}
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	return string(b), nil
}
