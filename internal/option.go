package internal

import "github.com/scottidler/obsidian-bookmark/internal/provider"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	videos provider.VideoLookup
	pages  provider.PageSummarizer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithVideoLookup overrides the video metadata provider (used in tests).
func WithVideoLookup(v provider.VideoLookup) Option {
	return func(a *application) {
		a.videos = v
	}
}

// WithPageSummarizer overrides the webpage summarizer (used in tests).
func WithPageSummarizer(p provider.PageSummarizer) Option {
	return func(a *application) {
		a.pages = p
	}
}
