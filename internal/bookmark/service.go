// Package bookmark implements the classification, metadata-consolidation, and
// note-creation pipeline for incoming bookmarks.
package bookmark

import (
	"context"
	"log/slog"

	"github.com/scottidler/obsidian-bookmark/internal/classify"
	"github.com/scottidler/obsidian-bookmark/internal/note"
	"github.com/scottidler/obsidian-bookmark/internal/parser"
	"github.com/scottidler/obsidian-bookmark/internal/provider"
	"github.com/scottidler/obsidian-bookmark/internal/storage"
)

// Request is an incoming bookmark. Folder is optional; when empty the route's
// default folder is used.
type Request struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Folder string `json:"folder,omitempty"`
	Date   string `json:"date"`
}

// Service runs the bookmark pipeline. Configuration-derived fields are shared
// read-only across concurrent requests.
type Service struct {
	rules    []classify.Rule
	defaults note.Frontmatter
	clock    *note.Clock
	store    storage.Provider
	videos   provider.VideoLookup
	pages    provider.PageSummarizer
}

// NewService creates a bookmark service.
func NewService(rules []classify.Rule, defaults note.Frontmatter, clock *note.Clock,
	store storage.Provider, videos provider.VideoLookup, pages provider.PageSummarizer) *Service {
	return &Service{
		rules:    rules,
		defaults: defaults,
		clock:    clock,
		store:    store,
		videos:   videos,
		pages:    pages,
	}
}

// Process runs the full pipeline for one bookmark: normalize, classify, fetch
// metadata by route kind, extract and consolidate title/tags, merge
// frontmatter, render, and write the note.
func (s *Service) Process(ctx context.Context, req Request) error {
	normalized, err := classify.NormalizeURL(req.URL)
	if err != nil {
		return err
	}
	route, err := classify.Classify(normalized, s.rules)
	if err != nil {
		return err
	}

	folder := req.Folder
	if folder == "" {
		folder = route.Folder
	}

	var meta *provider.Metadata
	var embed string
	switch route.Kind {
	case classify.KindShorts, classify.KindYouTube:
		videoID, err := classify.ExtractVideoID(route.URL)
		if err != nil {
			return err
		}
		meta, err = s.videos.Lookup(ctx, videoID)
		if err != nil {
			return err
		}
		embed = note.VideoEmbed(videoID, route.Width, route.Height)
	default:
		meta, err = s.pages.Summarize(ctx, route.URL)
		if err != nil {
			return err
		}
		embed = note.ImageEmbed(meta.ImageURL, route.Width, route.Height)
	}

	// Both the request title and the provider title run through the extraction
	// grammar; the request title wins when it survives cleaning.
	metaTitle, metaTags := parser.ExtractTitleTags(meta.Title)
	title, reqTags := parser.ExtractTitleTags(req.Title)
	if title == "" {
		title = metaTitle
	}
	if title == "" {
		date, _, _ := s.clock.Today()
		title = "No Title " + date
	}

	computed := note.Frontmatter{
		Date:      req.Date,
		URL:       route.URL,
		Author:    meta.Author,
		Published: meta.PublishedAt,
		Tags:      concat(reqTags, metaTags, meta.Tags),
	}
	fm := note.Merge(computed, s.defaults, s.clock)

	n := note.Render(title, meta.Description, embed, folder, fm)
	if err := s.store.Write(n.Path, []byte(n.Content)); err != nil {
		return err
	}

	slog.Info("bookmark noted",
		slog.String("url", route.URL),
		slog.String("kind", route.Kind.String()),
		slog.String("path", n.Path))
	return nil
}

func concat(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
