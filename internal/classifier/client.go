// Package classifier calls a hosted text-classification API to turn free
// text into an emotion label.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultModelURL is the hosted inference endpoint for the emotion model.
	DefaultModelURL = "https://api-inference.huggingface.co/models/j-hartmann/emotion-english-distilroberta-base"

	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = time.Hour

	userAgent = "mood-tunes/1.0"
)

// Sentinel errors.
var (
	// ErrInvalidToken is returned when the API rejects the bearer token.
	ErrInvalidToken = errors.New("invalid classifier API token")

	// ErrNoLabel is returned when a 2xx response carries no usable label.
	ErrNoLabel = errors.New("no label in classifier response")

	// ErrModelLoading is returned while the hosted model is still warming up.
	ErrModelLoading = errors.New("classifier model is loading")
)

// Config holds classifier client settings.
type Config struct {
	Token    string
	ModelURL string        // defaults to DefaultModelURL
	Timeout  time.Duration // defaults to 10s
	CacheTTL time.Duration // defaults to 1h
}

// Client is an emotion-classification API client with a TTL cache.
type Client struct {
	token      string
	httpClient *http.Client
	modelURL   string

	// In-memory cache: key = exact input text.
	ttl     time.Duration
	cache   map[string]cacheEntry
	cacheMu sync.RWMutex
	now     func() time.Time
}

type cacheEntry struct {
	label    string
	storedAt time.Time
}

// NewClient creates a classifier client from the provided configuration.
func NewClient(cfg Config) *Client {
	if cfg.ModelURL == "" {
		cfg.ModelURL = DefaultModelURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &Client{
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		modelURL:   cfg.ModelURL,
		ttl:        cfg.CacheTTL,
		cache:      make(map[string]cacheEntry),
		now:        time.Now,
	}
}

// classifyRequest is the inference API request body.
type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// prediction is one label/score pair in the ranked response.
type prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// apiError is the inference API error body.
type apiError struct {
	Error string `json:"error"`
}

// Classify returns the lower-cased top-scoring emotion label for text.
// Successful results are cached by exact input text until the TTL lapses.
func (c *Client) Classify(ctx context.Context, text string) (string, error) {
	c.cacheMu.RLock()
	if entry, ok := c.cache[text]; ok && c.now().Sub(entry.storedAt) < c.ttl {
		c.cacheMu.RUnlock()
		return entry.label, nil
	}
	c.cacheMu.RUnlock()

	label, err := c.classify(ctx, text)
	if err != nil {
		return "", err
	}

	c.cacheMu.Lock()
	c.cache[text] = cacheEntry{label: label, storedAt: c.now()}
	c.cacheMu.Unlock()

	return label, nil
}

func (c *Client) classify(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "", ErrInvalidToken
		case http.StatusServiceUnavailable:
			return "", ErrModelLoading
		}
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			return "", fmt.Errorf("classifier API error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("classifier API error (status %d)", resp.StatusCode)
	}

	label, err := topLabel(body)
	if err != nil {
		return "", err
	}
	return label, nil
}

// topLabel extracts the highest-ranked label from a response body. The
// API nests the ranked list one level deep for single-input requests,
// but older model versions return it flat.
func topLabel(body []byte) (string, error) {
	var nested [][]prediction
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) > 0 && len(nested[0]) > 0 && nested[0][0].Label != "" {
			return strings.ToLower(nested[0][0].Label), nil
		}
		return "", ErrNoLabel
	}

	var flat []prediction
	if err := json.Unmarshal(body, &flat); err == nil {
		if len(flat) > 0 && flat[0].Label != "" {
			return strings.ToLower(flat[0].Label), nil
		}
		return "", ErrNoLabel
	}

	return "", fmt.Errorf("parsing classifier response: %w", ErrNoLabel)
}
