// Package videosearch queries the YouTube Data API for embeddable music
// videos matching a mood query.
package videosearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the YouTube Data API v3 search endpoint.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3/search"

	// musicCategoryID restricts results to the Music video category.
	musicCategoryID = "10"

	defaultTimeout    = 10 * time.Second
	defaultCacheTTL   = time.Hour
	defaultMaxResults = 5

	userAgent = "mood-tunes/1.0"
)

// Sentinel errors.
var (
	// ErrQuotaExceeded is returned when the daily API quota is exhausted.
	ErrQuotaExceeded = errors.New("video search quota exceeded")

	// ErrInvalidKey is returned when the API key is rejected.
	ErrInvalidKey = errors.New("invalid video search API key")
)

// Video is one search result candidate.
type Video struct {
	ID    string
	Title string
}

// URL returns the watch page link for the video.
func (v Video) URL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// EmbedURL returns the embeddable player link for the video.
func (v Video) EmbedURL() string {
	return "https://www.youtube.com/embed/" + v.ID
}

// Config holds video search client settings.
type Config struct {
	APIKey     string
	BaseURL    string        // defaults to DefaultBaseURL
	Timeout    time.Duration // defaults to 10s
	CacheTTL   time.Duration // defaults to 1h
	MaxResults int           // defaults to 5
}

// Client is a YouTube search client with a TTL cache.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	maxResults int

	// In-memory cache: key = exact query string. Empty result sets are
	// cached too so an unchanged mood never re-searches within the TTL.
	ttl     time.Duration
	cache   map[string]cacheEntry
	cacheMu sync.RWMutex
	now     func() time.Time
}

type cacheEntry struct {
	videos   []Video
	storedAt time.Time
}

// NewClient creates a video search client from the provided configuration.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	return &Client{
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		maxResults: cfg.MaxResults,
		ttl:        cfg.CacheTTL,
		cache:      make(map[string]cacheEntry),
		now:        time.Now,
	}
}

// searchResponse is the search.list success body.
type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// apiErrorResponse is the search.list error body.
type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// Search returns up to MaxResults embeddable music videos for the query.
// Results (including empty ones) are cached by query until the TTL lapses.
// An empty, non-nil slice means the search succeeded with no candidates.
func (c *Client) Search(ctx context.Context, query string) ([]Video, error) {
	c.cacheMu.RLock()
	if entry, ok := c.cache[query]; ok && c.now().Sub(entry.storedAt) < c.ttl {
		c.cacheMu.RUnlock()
		return entry.videos, nil
	}
	c.cacheMu.RUnlock()

	videos, err := c.search(ctx, query)
	if err != nil {
		return nil, err
	}

	c.cacheMu.Lock()
	c.cache[query] = cacheEntry{videos: videos, storedAt: c.now()}
	c.cacheMu.Unlock()

	return videos, nil
}

func (c *Client) search(ctx context.Context, query string) ([]Video, error) {
	params := url.Values{
		"part":            {"snippet"},
		"q":               {query},
		"type":            {"video"},
		"videoCategoryId": {musicCategoryID},
		"videoEmbeddable": {"true"},
		"maxResults":      {strconv.Itoa(c.maxResults)},
		"key":             {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	videos := make([]Video, 0, len(sr.Items))
	for _, item := range sr.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, Video{ID: item.ID.VideoID, Title: item.Snippet.Title})
	}
	return videos, nil
}

func decodeAPIError(status int, body []byte) error {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Code != 0 {
		for _, e := range apiErr.Error.Errors {
			switch e.Reason {
			case "quotaExceeded", "dailyLimitExceeded", "rateLimitExceeded":
				return ErrQuotaExceeded
			case "keyInvalid":
				return ErrInvalidKey
			}
		}
		return fmt.Errorf("video search API error %d: %s", apiErr.Error.Code, apiErr.Error.Message)
	}
	return fmt.Errorf("video search API error (status %d)", status)
}
