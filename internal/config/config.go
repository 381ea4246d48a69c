// Package config loads Mood Tunes configuration: non-secret settings
// from a TOML file, secrets from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Sentinel errors for the required secrets.
var (
	// ErrMissingHFToken is returned when HF_TOKEN is not set.
	ErrMissingHFToken = errors.New("missing HF_TOKEN environment variable")

	// ErrMissingYouTubeKey is returned when YOUTUBE_API_KEY is not set.
	ErrMissingYouTubeKey = errors.New("missing YOUTUBE_API_KEY environment variable")
)

// Config holds all non-secret settings.
type Config struct {
	Addr string `toml:"addr"`

	Classifier  ClassifierConfig  `toml:"classifier"`
	VideoSearch VideoSearchConfig `toml:"video_search"`
}

// ClassifierConfig holds emotion-classifier client settings.
type ClassifierConfig struct {
	ModelURL        string `toml:"model_url"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	CacheTTLMinutes int    `toml:"cache_ttl_minutes"`
}

// VideoSearchConfig holds video-search client settings.
type VideoSearchConfig struct {
	TimeoutSeconds  int `toml:"timeout_seconds"`
	CacheTTLMinutes int `toml:"cache_ttl_minutes"`
	MaxResults      int `toml:"max_results"`
}

// Secrets holds the two required API credentials.
type Secrets struct {
	HFToken       string
	YouTubeAPIKey string
}

// Default returns config with the recommended defaults: 10-second call
// timeouts and one-hour result caches for both external services.
func Default() Config {
	return Config{
		Addr: "127.0.0.1:8080",
		Classifier: ClassifierConfig{
			TimeoutSeconds:  10,
			CacheTTLMinutes: 60,
		},
		VideoSearch: VideoSearchConfig{
			TimeoutSeconds:  10,
			CacheTTLMinutes: 60,
			MaxResults:      5,
		},
	}
}

// Load reads config from the first file found, falling back to defaults
// when none exists. Lookup order: MOOD_TUNES_CONFIG, ./mood-tunes.toml,
// $XDG_CONFIG_HOME/mood-tunes/config.toml.
func Load() (Config, error) {
	cfg := Default()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if p := os.Getenv("MOOD_TUNES_CONFIG"); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, "mood-tunes.toml")

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "mood-tunes", "config.toml"))
	}

	return paths
}

// LoadSecrets reads the two API credentials from the environment.
// A missing credential is fatal at startup, never recoverable later.
func LoadSecrets() (Secrets, error) {
	token := os.Getenv("HF_TOKEN")
	if token == "" {
		return Secrets{}, ErrMissingHFToken
	}

	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		return Secrets{}, ErrMissingYouTubeKey
	}

	return Secrets{HFToken: token, YouTubeAPIKey: apiKey}, nil
}

// ClassifierTimeout returns the classifier call bound as a duration.
func (c Config) ClassifierTimeout() time.Duration {
	return time.Duration(c.Classifier.TimeoutSeconds) * time.Second
}

// ClassifierCacheTTL returns the classifier cache lifetime as a duration.
func (c Config) ClassifierCacheTTL() time.Duration {
	return time.Duration(c.Classifier.CacheTTLMinutes) * time.Minute
}

// VideoSearchTimeout returns the video search call bound as a duration.
func (c Config) VideoSearchTimeout() time.Duration {
	return time.Duration(c.VideoSearch.TimeoutSeconds) * time.Second
}

// VideoSearchCacheTTL returns the video search cache lifetime as a duration.
func (c Config) VideoSearchCacheTTL() time.Duration {
	return time.Duration(c.VideoSearch.CacheTTLMinutes) * time.Minute
}
