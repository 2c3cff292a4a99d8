package model

// VideoMetadata represents the oEmbed record for a video. Every field is a
// pointer because the upstream response may omit any of them.
type VideoMetadata struct {
	Title        *string `json:"title"`
	AuthorName   *string `json:"author_name"`
	AuthorURL    *string `json:"author_url"`
	Type         *string `json:"type"`
	Height       *int    `json:"height"`
	Width        *int    `json:"width"`
	Version      *string `json:"version"`
	ProviderName *string `json:"provider_name"`
	ProviderURL  *string `json:"provider_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

// CaptionLine is a single subtitle cue as returned by the transcript provider.
// Start and Duration are in seconds.
type CaptionLine struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// FormattedCaption is a CaptionLine with a derived "M:SS" timestamp and the
// start offset truncated to whole seconds.
type FormattedCaption struct {
	Text      string  `json:"text"`
	Timestamp string  `json:"timestamp"`
	Start     int     `json:"start"`
	Duration  float64 `json:"duration"`
}
