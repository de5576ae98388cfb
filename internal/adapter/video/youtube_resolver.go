package video

import (
	"context"
	"fmt"

	"courseforge/internal/domain"
	"courseforge/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeResolver implements domain.VideoResolver using the YouTube Data
// API v3 search endpoint.
type YouTubeResolver struct {
	service *youtube.Service
}

// NewYouTubeResolver creates a new instance of YouTubeResolver
func NewYouTubeResolver(ctx context.Context, apiKey string) (domain.VideoResolver, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube api key cannot be empty")
	}
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &YouTubeResolver{service: service}, nil
}

// ResolveVideo implements domain.VideoResolver. Returns the id of the top
// embeddable video for the query.
func (r *YouTubeResolver) ResolveVideo(ctx context.Context, searchQuery string) (string, error) {
	call := r.service.Search.List([]string{"snippet"}).
		Q(searchQuery).
		Type("video").
		VideoEmbeddable("true").
		MaxResults(5)

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("youtube search failed for %q: %w", searchQuery, err)
	}

	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			return item.Id.VideoId, nil
		}
	}

	logger.Get().Warn("No video found", zap.String("search_query", searchQuery))
	return "", domain.NewNotFoundError(fmt.Sprintf("no video found for query: %s", searchQuery))
}
