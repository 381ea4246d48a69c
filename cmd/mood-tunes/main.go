// Command mood-tunes runs the Mood Tunes web application: it detects a
// user's mood from typed text or a manual selection and recommends a
// matching music video.
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/veralin/go-mood-tunes/internal/classifier"
	"github.com/veralin/go-mood-tunes/internal/config"
	"github.com/veralin/go-mood-tunes/internal/videosearch"
	"github.com/veralin/go-mood-tunes/internal/web"
	webfs "github.com/veralin/go-mood-tunes/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; the environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Both credentials are required before any interaction.
	secrets, err := config.LoadSecrets()
	if err != nil {
		return err
	}

	emotions := classifier.NewClient(classifier.Config{
		Token:    secrets.HFToken,
		ModelURL: cfg.Classifier.ModelURL,
		Timeout:  cfg.ClassifierTimeout(),
		CacheTTL: cfg.ClassifierCacheTTL(),
	})

	videos := videosearch.NewClient(videosearch.Config{
		APIKey:     secrets.YouTubeAPIKey,
		Timeout:    cfg.VideoSearchTimeout(),
		CacheTTL:   cfg.VideoSearchCacheTTL(),
		MaxResults: cfg.VideoSearch.MaxResults,
	})

	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		return fmt.Errorf("creating templates filesystem: %w", err)
	}

	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("creating static filesystem: %w", err)
	}

	server, err := web.NewServer(web.ServerConfig{
		Addr:        cfg.Addr,
		Classifier:  emotions,
		Searcher:    videos,
		TemplatesFS: templates,
		StaticFS:    static,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run()
}
