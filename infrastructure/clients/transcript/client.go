package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"youtube-tools/domain/model"
	"youtube-tools/domain/repository"
)

const (
	androidClientVersion = "20.10.38"
	androidSDKVersion    = 30
)

// Client retrieves caption tracks through YouTube's keyless innertube player
// endpoint and the per-track timedtext URLs it hands back.
type Client struct {
	playerURL  string
	userAgent  string
	httpClient *http.Client
}

// Config represents transcript client configuration.
type Config struct {
	PlayerURL string
	UserAgent string
	Timeout   time.Duration
}

// NewClient creates a new transcript client.
func NewClient(config *Config) repository.ITranscript {
	return &Client{
		playerURL:  config.PlayerURL,
		userAgent:  config.UserAgent,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// GetTranscript fetches the caption track for a video. An empty languages
// slice selects the provider's first listed track; a non-empty slice restricts
// selection to that ordered set and fails when none of its codes has a track.
func (c *Client) GetTranscript(ctx context.Context, videoID string, languages []string) ([]model.CaptionLine, error) {
	tracks, err := c.listTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, err := selectTrack(tracks, languages)
	if err != nil {
		return nil, err
	}

	lines, err := c.fetchTrack(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s track for video %s: %w", track.LanguageCode, videoID, err)
	}
	return lines, nil
}

// ListLanguages returns the available transcript language codes in the order
// the provider lists them.
func (c *Client) ListLanguages(ctx context.Context, videoID string) ([]string, error) {
	tracks, err := c.listTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(tracks))
	for _, t := range tracks {
		codes = append(codes, t.LanguageCode)
	}
	return codes, nil
}

func (c *Client) listTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	body, err := json.Marshal(playerRequest{
		Context: playerContext{
			Client: playerClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidClientVersion,
				AndroidSDKVersion: androidSDKVersion,
				HL:                "en",
			},
		},
		VideoID: videoID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode player request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.playerURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build player request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("player request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("player endpoint returned status %d for video %s", resp.StatusCode, videoID)
	}

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("failed to decode player response: %w", err)
	}

	if player.PlayabilityStatus.Status != "" && player.PlayabilityStatus.Status != "OK" {
		return nil, fmt.Errorf("video %s is not playable: %s %s",
			videoID, player.PlayabilityStatus.Status, player.PlayabilityStatus.Reason)
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, fmt.Errorf("no transcripts are available for video %s", videoID)
	}
	return tracks, nil
}

// selectTrack honors the request order of languages: the first requested code
// with a matching track wins. Matching is exact first, then base-language
// prefix (so "en" can select "en-US").
func selectTrack(tracks []captionTrack, languages []string) (*captionTrack, error) {
	if len(languages) == 0 {
		return &tracks[0], nil
	}
	for _, lang := range languages {
		for i := range tracks {
			if tracks[i].LanguageCode == lang {
				return &tracks[i], nil
			}
		}
		for i := range tracks {
			if strings.HasPrefix(tracks[i].LanguageCode, lang+"-") {
				return &tracks[i], nil
			}
		}
	}
	available := make([]string, 0, len(tracks))
	for _, t := range tracks {
		available = append(available, t.LanguageCode)
	}
	return nil, fmt.Errorf("no transcript found for languages %v (available: %s)",
		languages, strings.Join(available, ", "))
}

func (c *Client) fetchTrack(ctx context.Context, baseURL string) ([]model.CaptionLine, error) {
	trackURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid track url: %w", err)
	}
	q := trackURL.Query()
	q.Set("fmt", "json3")
	trackURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build track request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("track request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("track fetch returned status %d", resp.StatusCode)
	}

	var raw rawJSON3
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode json3 track: %w", err)
	}
	return convertEvents(raw.Events), nil
}

// convertEvents flattens json3 events into caption lines. Events without text
// segments (styling and window events) are dropped, as are newline-only cues.
func convertEvents(events []rawEvent) []model.CaptionLine {
	lines := make([]model.CaptionLine, 0, len(events))
	for _, ev := range events {
		if len(ev.Segs) == 0 {
			continue
		}
		var b strings.Builder
		for _, seg := range ev.Segs {
			b.WriteString(seg.Utf8)
		}
		text := strings.TrimSpace(strings.ReplaceAll(b.String(), "\n", " "))
		if text == "" {
			continue
		}
		lines = append(lines, model.CaptionLine{
			Text:     text,
			Start:    float64(ev.TStartMs) / 1000.0,
			Duration: float64(ev.DDurationMs) / 1000.0,
		})
	}
	return lines
}
