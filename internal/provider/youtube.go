package provider

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/scottidler/obsidian-bookmark/internal/apperr"
)

// YouTube looks up video metadata through the YouTube Data API.
type YouTube struct {
	svc *youtube.Service
}

// NewYouTube creates a YouTube provider authenticated with an API key.
func NewYouTube(ctx context.Context, apiKey string) (*YouTube, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &YouTube{svc: svc}, nil
}

// Lookup fetches the snippet for a video id. An empty result set is a
// metadata-fetch failure, not an empty Metadata.
func (y *YouTube) Lookup(ctx context.Context, videoID string) (*Metadata, error) {
	resp, err := y.svc.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: video %s: %v", apperr.ErrMetadataFetch, videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: video metadata not found for %s", apperr.ErrMetadataFetch, videoID)
	}
	sn := resp.Items[0].Snippet
	return &Metadata{
		Title:       sn.Title,
		Description: sn.Description,
		Author:      sn.ChannelTitle,
		PublishedAt: sn.PublishedAt,
		Tags:        sn.Tags,
	}, nil
}
