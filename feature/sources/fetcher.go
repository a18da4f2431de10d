package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yuanweize/BTtrackers-updater/core/tracker"

	"go.uber.org/zap"
)

// Fetcher retrieves and validates tracker entries from the configured remote
// lists. Each source fails independently; the fetcher only ever returns the
// union of whatever could be collected.
type Fetcher struct {
	cfg    Config
	client *http.Client
	log    *zap.Logger
}

// NewFetcher creates a Fetcher with a request timeout from the configuration.
func NewFetcher(cfg Config, log *zap.Logger) *Fetcher {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}

	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		log:    log,
	}
}

// FetchAll retrieves trackers from every configured source and returns their
// union. Sources are fetched sequentially in configured order; a source that
// fails all its attempts is logged and skipped, never failing the whole fetch.
// An empty result is the caller's signal to abort the update.
func (f *Fetcher) FetchAll(ctx context.Context) tracker.Set {
	all := tracker.NewSet()

	f.log.Info("Fetching tracker sources", zap.Int("sources", len(f.cfg.URLs)))

	for _, url := range f.cfg.URLs {
		found, err := f.fetchSource(ctx, url)
		if err != nil {
			f.log.Error("Source failed, skipping",
				zap.String("url", url),
				zap.Error(err),
			)
			continue
		}

		f.log.Info("Source fetched",
			zap.String("url", url),
			zap.Int("valid_trackers", found.Len()),
		)
		all = all.Union(found)
	}

	f.log.Info("Fetch complete", zap.Int("unique_trackers", all.Len()))
	return all
}

// fetchSource retrieves one source with bounded retry and a fixed delay
// between failed attempts.
func (f *Fetcher) fetchSource(ctx context.Context, url string) (tracker.Set, error) {
	retries := f.cfg.MaxRetries
	if retries < 1 {
		retries = 1
	}
	delay := time.Duration(f.cfg.RetryDelaySeconds) * time.Second

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		found, err := f.get(ctx, url)
		if err == nil {
			return found, nil
		}
		lastErr = err

		f.log.Warn("Source attempt failed",
			zap.String("url", url),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", retries),
			zap.Error(err),
		)
	}

	return nil, fmt.Errorf("all %d attempts failed: %w", retries, lastErr)
}

func (f *Fetcher) get(ctx context.Context, url string) (tracker.Set, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return tracker.ParseLines(string(body)), nil
}
