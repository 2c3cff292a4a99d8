package usecase

import (
	"context"
	"fmt"
	"strings"

	"youtube-tools/domain/dto"
	"youtube-tools/domain/model"
	"youtube-tools/domain/repository"
	"youtube-tools/infrastructure/logger"
)

// IVideoUseCase defines the video tool operations exposed over HTTP.
type IVideoUseCase interface {
	GetVideoMetadata(ctx context.Context, rawURL string) (*model.VideoMetadata, error)
	GetVideoCaptions(ctx context.Context, rawURL string, languages []string) (*dto.CaptionsResponse, error)
	GetVideoTimestamps(ctx context.Context, rawURL string, languages []string) ([]string, error)
}

// VideoUseCase implements the video tool operations.
type VideoUseCase struct {
	transcriptRepo repository.ITranscript
	oembedRepo     repository.IOEmbed
}

// NewVideoUseCase creates a new video use case instance.
func NewVideoUseCase(transcriptRepo repository.ITranscript, oembedRepo repository.IOEmbed) IVideoUseCase {
	return &VideoUseCase{
		transcriptRepo: transcriptRepo,
		oembedRepo:     oembedRepo,
	}
}

// GetVideoMetadata fetches the oEmbed record for a video. Metadata is
// decorative: when the upstream call fails for any reason a degraded record is
// substituted, so a valid URL never produces an error here.
func (u *VideoUseCase) GetVideoMetadata(ctx context.Context, rawURL string) (*model.VideoMetadata, error) {
	videoID, err := resolveVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	metadata, err := u.oembedRepo.FetchVideoData(ctx, videoID)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"videoId": videoID,
			"error":   err,
		}).Warn("oEmbed fetch failed - returning degraded metadata")
		return degradedMetadata(videoID), nil
	}
	return metadata, nil
}

// GetVideoCaptions resolves a caption track through the fallback chain and
// formats each cue with an "M:SS" timestamp.
func (u *VideoUseCase) GetVideoCaptions(ctx context.Context, rawURL string, languages []string) (*dto.CaptionsResponse, error) {
	videoID, err := resolveVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	// Never fails once the ID resolved (degraded-data policy).
	metadata, _ := u.GetVideoMetadata(ctx, rawURL)
	title := ""
	if metadata != nil && metadata.Title != nil {
		title = *metadata.Title
	}

	lines, err := u.resolveCaptions(ctx, videoID, languages)
	if err != nil {
		return nil, err
	}

	return &dto.CaptionsResponse{
		Title:     title,
		Subtitles: FormatCaptions(lines),
	}, nil
}

// GetVideoTimestamps collapses the fallback chain to two states: the requested
// (or default "en") languages, then a forced "en" retry. Each cue is rendered
// as "M:SS - text".
func (u *VideoUseCase) GetVideoTimestamps(ctx context.Context, rawURL string, languages []string) ([]string, error) {
	videoID, err := resolveVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	requested := languages
	if len(requested) == 0 {
		requested = []string{"en"}
	}
	attempts := [][]string{requested}
	if !(len(requested) == 1 && requested[0] == "en") {
		attempts = append(attempts, []string{"en"})
	}

	var failures []string
	for _, langs := range attempts {
		lines, err := u.transcriptRepo.GetTranscript(ctx, videoID, langs)
		if err != nil {
			logger.GetLogger().WithFields(map[string]interface{}{
				"videoId":   videoID,
				"languages": langs,
				"error":     err,
			}).Warn("Timestamp transcript attempt failed")
			failures = append(failures, err.Error())
			continue
		}
		if len(lines) == 0 {
			failures = append(failures, fmt.Sprintf("empty transcript for languages %v", langs))
			continue
		}

		timestamps := make([]string, 0, len(lines))
		for _, line := range lines {
			start := int(line.Start)
			timestamps = append(timestamps, fmt.Sprintf("%d:%02d - %s", start/60, start%60, line.Text))
		}
		return timestamps, nil
	}

	return nil, model.NewUpstreamError("Error generating timestamps: %s", strings.Join(failures, "; "))
}

// captionAttempt is one state of the fallback chain. Attempts are evaluated in
// order with early exit on the first non-empty transcript.
type captionAttempt struct {
	name string
	run  func(ctx context.Context) ([]model.CaptionLine, error)
}

func (u *VideoUseCase) resolveCaptions(ctx context.Context, videoID string, languages []string) ([]model.CaptionLine, error) {
	first := captionAttempt{
		name: "default language",
		run: func(ctx context.Context) ([]model.CaptionLine, error) {
			return u.transcriptRepo.GetTranscript(ctx, videoID, nil)
		},
	}
	if len(languages) > 0 {
		first = captionAttempt{
			name: "requested languages",
			run: func(ctx context.Context) ([]model.CaptionLine, error) {
				return u.transcriptRepo.GetTranscript(ctx, videoID, languages)
			},
		}
	}

	attempts := []captionAttempt{
		first,
		{
			name: "first available language",
			run: func(ctx context.Context) ([]model.CaptionLine, error) {
				codes, err := u.transcriptRepo.ListLanguages(ctx, videoID)
				if err != nil {
					return nil, err
				}
				if len(codes) == 0 {
					return nil, fmt.Errorf("no transcript languages listed for video %s", videoID)
				}
				logger.GetLogger().WithFields(map[string]interface{}{
					"videoId":   videoID,
					"available": codes,
				}).Debug("Listed available transcript languages")
				return u.transcriptRepo.GetTranscript(ctx, videoID, codes[:1])
			},
		},
		{
			name: "english fallback",
			run: func(ctx context.Context) ([]model.CaptionLine, error) {
				return u.transcriptRepo.GetTranscript(ctx, videoID, []string{"en"})
			},
		},
	}

	var failures []string
	for _, attempt := range attempts {
		lines, err := attempt.run(ctx)
		if err != nil {
			logger.GetLogger().WithFields(map[string]interface{}{
				"videoId": videoID,
				"attempt": attempt.name,
				"error":   err,
			}).Warn("Caption attempt failed")
			failures = append(failures, fmt.Sprintf("%s: %v", attempt.name, err))
			continue
		}
		if len(lines) == 0 {
			failures = append(failures, fmt.Sprintf("%s: empty transcript", attempt.name))
			continue
		}
		logger.GetLogger().WithFields(map[string]interface{}{
			"videoId": videoID,
			"attempt": attempt.name,
			"cues":    len(lines),
		}).Info("Caption attempt succeeded")
		return lines, nil
	}

	return nil, model.NewNotFoundError("Could not retrieve subtitles. %s", strings.Join(failures, "; "))
}

// FormatCaptions derives the "M:SS" timestamp for each cue. Minutes are
// unbounded and seconds zero-padded; there is no hour rollover.
func FormatCaptions(lines []model.CaptionLine) []model.FormattedCaption {
	formatted := make([]model.FormattedCaption, 0, len(lines))
	for _, line := range lines {
		start := int(line.Start)
		formatted = append(formatted, model.FormattedCaption{
			Text:      line.Text,
			Timestamp: fmt.Sprintf("%d:%02d", start/60, start%60),
			Start:     start,
			Duration:  line.Duration,
		})
	}
	return formatted
}

func resolveVideoID(rawURL string) (string, error) {
	if rawURL == "" {
		return "", model.NewInvalidInputError("No URL provided")
	}
	videoID := ExtractVideoID(rawURL)
	if videoID == "" {
		return "", model.NewInvalidInputError("Invalid YouTube URL")
	}
	return videoID, nil
}

func degradedMetadata(videoID string) *model.VideoMetadata {
	title := fmt.Sprintf("YouTube Video (%s)", videoID)
	author := "Unknown"
	thumbnail := fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", videoID)
	return &model.VideoMetadata{
		Title:        &title,
		AuthorName:   &author,
		ThumbnailURL: &thumbnail,
	}
}
