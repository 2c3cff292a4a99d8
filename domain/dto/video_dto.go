package dto

import "youtube-tools/domain/model"

// VideoRequest is the body accepted by every video endpoint. Languages is an
// ordered preference list; insertion order is priority order.
type VideoRequest struct {
	URL       string   `json:"url"`
	Languages []string `json:"languages,omitempty"`
}

// CaptionsResponse is the success body of the captions endpoint.
type CaptionsResponse struct {
	Title     string                   `json:"title"`
	Subtitles []model.FormattedCaption `json:"subtitles"`
}

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
