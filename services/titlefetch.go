package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrFetchFailed marks a non-success HTTP status from the target site, as
// opposed to a transport-level failure.
var ErrFetchFailed = errors.New("failed to fetch URL")

var titlePattern = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	titleCacheTTL = 24 * time.Hour

	// maxTitleScanBytes caps how much of the response body is read; the
	// title element sits in <head>, far before this limit.
	maxTitleScanBytes = 1 << 20
)

// TitleFetcher fetches a page and extracts its <title> text. Results are
// cached in redis when a client is configured; the fetcher works without
// one.
type TitleFetcher struct {
	HTTP   *http.Client
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewTitleFetcher(timeout time.Duration, cache *redis.Client, logger *zap.Logger) *TitleFetcher {
	return &TitleFetcher{
		HTTP:   &http.Client{Timeout: timeout},
		Cache:  cache,
		Logger: logger,
	}
}

// NewTitleCache connects to redis and verifies the connection.
func NewTitleCache(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// FetchTitle returns the trimmed inner text of the first <title> element,
// or nil when the page has none. A non-2xx response yields ErrFetchFailed.
func (f *TitleFetcher) FetchTitle(ctx context.Context, pageURL string) (*string, error) {
	if title := f.cachedTitle(ctx, pageURL); title != nil {
		return title, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrFetchFailed
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTitleScanBytes))
	if err != nil {
		return nil, err
	}

	match := titlePattern.FindSubmatch(body)
	if match == nil {
		return nil, nil
	}

	title := strings.TrimSpace(string(match[1]))
	f.cacheTitle(ctx, pageURL, title)
	return &title, nil
}

func (f *TitleFetcher) cachedTitle(ctx context.Context, pageURL string) *string {
	if f.Cache == nil {
		return nil
	}
	title, err := f.Cache.Get(ctx, titleCacheKey(pageURL)).Result()
	if err != nil {
		if err != redis.Nil {
			f.Logger.Warn("title cache read failed", zap.Error(err))
		}
		return nil
	}
	return &title
}

func (f *TitleFetcher) cacheTitle(ctx context.Context, pageURL, title string) {
	if f.Cache == nil || title == "" {
		return
	}
	if err := f.Cache.Set(ctx, titleCacheKey(pageURL), title, titleCacheTTL).Err(); err != nil {
		f.Logger.Warn("title cache write failed", zap.Error(err))
	}
}

func titleCacheKey(pageURL string) string {
	return "title:" + pageURL
}
