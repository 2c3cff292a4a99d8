package repository

import (
	"context"

	"youtube-tools/domain/model"
)

// ITranscript defines the transcript provider operations the use case layer
// depends on.
type ITranscript interface {
	// GetTranscript fetches the caption track for a video. An empty languages
	// slice requests the provider's default track; a non-empty slice restricts
	// the selection to exactly that ordered set.
	GetTranscript(ctx context.Context, videoID string, languages []string) ([]model.CaptionLine, error)
	// ListLanguages returns the available transcript language codes for a
	// video in provider order. No sorting is applied.
	ListLanguages(ctx context.Context, videoID string) ([]string, error)
}

// IOEmbed defines the oEmbed metadata provider.
type IOEmbed interface {
	FetchVideoData(ctx context.Context, videoID string) (*model.VideoMetadata, error)
}
