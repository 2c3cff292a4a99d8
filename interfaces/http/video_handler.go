package http

import (
	"errors"
	"fmt"
	"net/http"

	"youtube-tools/domain/dto"
	"youtube-tools/domain/model"
	"youtube-tools/infrastructure/logger"
	"youtube-tools/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

// IVideoHandler defines the HTTP handlers for the video tool endpoints.
type IVideoHandler interface {
	GetVideoData(c *gin.Context)
	GetVideoCaptions(c *gin.Context)
	GetVideoTimestamps(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUseCase
}

func NewVideoHandler(videoUsecase usecase.IVideoUseCase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

// GetVideoData handles POST /video-data
func (h *VideoHandler) GetVideoData(c *gin.Context) {
	req, ok := bindVideoRequest(c)
	if !ok {
		return
	}

	metadata, err := h.videoUsecase.GetVideoMetadata(c.Request.Context(), req.URL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, metadata)
}

// GetVideoCaptions handles POST /video-captions
func (h *VideoHandler) GetVideoCaptions(c *gin.Context) {
	req, ok := bindVideoRequest(c)
	if !ok {
		return
	}

	captions, err := h.videoUsecase.GetVideoCaptions(c.Request.Context(), req.URL, req.Languages)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, captions)
}

// GetVideoTimestamps handles POST /video-timestamps
func (h *VideoHandler) GetVideoTimestamps(c *gin.Context) {
	req, ok := bindVideoRequest(c)
	if !ok {
		return
	}

	timestamps, err := h.videoUsecase.GetVideoTimestamps(c.Request.Context(), req.URL, req.Languages)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, timestamps)
}

func bindVideoRequest(c *gin.Context) (*dto.VideoRequest, bool) {
	var req dto.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Detail: fmt.Sprintf("%s: %v", ErrorUnmarshal, err),
		})
		return nil, false
	}
	return &req, true
}

func respondError(c *gin.Context, err error) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		c.JSON(statusFor(appErr.Kind), dto.ErrorResponse{Detail: appErr.Message})
		return
	}
	logger.GetLogger().WithField("error", err).Error("Unexpected handler error")
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
}

func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.ErrInvalidInput:
		return http.StatusBadRequest
	case model.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
