package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.ClassifierTimeout() != 10*time.Second {
		t.Errorf("ClassifierTimeout() = %v, want 10s", cfg.ClassifierTimeout())
	}
	if cfg.VideoSearchTimeout() != 10*time.Second {
		t.Errorf("VideoSearchTimeout() = %v, want 10s", cfg.VideoSearchTimeout())
	}
	if cfg.ClassifierCacheTTL() != time.Hour {
		t.Errorf("ClassifierCacheTTL() = %v, want 1h", cfg.ClassifierCacheTTL())
	}
	if cfg.VideoSearchCacheTTL() != time.Hour {
		t.Errorf("VideoSearchCacheTTL() = %v, want 1h", cfg.VideoSearchCacheTTL())
	}
	if cfg.VideoSearch.MaxResults != 5 {
		t.Errorf("MaxResults = %d, want 5", cfg.VideoSearch.MaxResults)
	}
}

func TestLoad_FileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
addr = "0.0.0.0:9000"

[classifier]
timeout_seconds = 5

[video_search]
max_results = 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MOOD_TUNES_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %q, want override", cfg.Addr)
	}
	if cfg.ClassifierTimeout() != 5*time.Second {
		t.Errorf("ClassifierTimeout() = %v, want 5s", cfg.ClassifierTimeout())
	}
	if cfg.VideoSearch.MaxResults != 3 {
		t.Errorf("MaxResults = %d, want 3", cfg.VideoSearch.MaxResults)
	}
	// Untouched fields keep defaults.
	if cfg.ClassifierCacheTTL() != time.Hour {
		t.Errorf("ClassifierCacheTTL() = %v, want default 1h", cfg.ClassifierCacheTTL())
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("MOOD_TUNES_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("Chdir() error = %v", err)
		}
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadSecrets(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		apiKey  string
		wantErr error
	}{
		{name: "both set", token: "hf_abc", apiKey: "yt_def"},
		{name: "missing token", token: "", apiKey: "yt_def", wantErr: ErrMissingHFToken},
		{name: "missing API key", token: "hf_abc", apiKey: "", wantErr: ErrMissingYouTubeKey},
		{name: "both missing", token: "", apiKey: "", wantErr: ErrMissingHFToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HF_TOKEN", tt.token)
			t.Setenv("YOUTUBE_API_KEY", tt.apiKey)

			secrets, err := LoadSecrets()

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadSecrets() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if secrets.HFToken != tt.token || secrets.YouTubeAPIKey != tt.apiKey {
					t.Errorf("LoadSecrets() = %+v", secrets)
				}
			}
		})
	}
}
