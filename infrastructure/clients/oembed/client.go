package oembed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"youtube-tools/domain/model"
	"youtube-tools/domain/repository"

	"github.com/google/go-querystring/query"
)

// Client fetches video metadata from YouTube's oEmbed endpoint.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Config represents oEmbed client configuration.
type Config struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

type requestParams struct {
	Format string `url:"format"`
	URL    string `url:"url"`
}

// NewClient creates a new oEmbed client.
func NewClient(config *Config) repository.IOEmbed {
	return &Client{
		baseURL:    config.URL,
		userAgent:  config.UserAgent,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// FetchVideoData issues a single oEmbed call for the video and decodes the
// metadata record. Any transport, status or decode failure is returned to the
// caller; the degraded-data policy lives a layer up.
func (c *Client) FetchVideoData(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	params := requestParams{
		Format: "json",
		URL:    fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID),
	}
	values, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode oEmbed params: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build oEmbed request: %w", err)
	}
	// YouTube rejects default client identification.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oEmbed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("oEmbed returned status %d for video %s", resp.StatusCode, videoID)
	}

	var metadata model.VideoMetadata
	if err := json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		return nil, fmt.Errorf("failed to decode oEmbed response: %w", err)
	}
	return &metadata, nil
}
