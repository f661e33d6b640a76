// Package provider implements the metadata providers consumed by the bookmark
// pipeline: a video-metadata lookup, a webpage scraper, and an LLM summarizer.
package provider

import "context"

// Metadata is the shape every provider returns for a classified link.
type Metadata struct {
	Title       string
	Description string
	Author      string
	PublishedAt string
	ImageURL    string
	Tags        []string
}

// VideoLookup returns metadata for a video identifier.
type VideoLookup interface {
	Lookup(ctx context.Context, videoID string) (*Metadata, error)
}

// PageSummarizer returns refined metadata for a web page URL.
type PageSummarizer interface {
	Summarize(ctx context.Context, url string) (*Metadata, error)
}
