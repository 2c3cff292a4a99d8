package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"youtube-tools/domain/model"
	"youtube-tools/usecase"
)

const (
	testURL     = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	testVideoID = "dQw4w9WgXcQ"
)

// Mock implementations
type MockTranscript struct {
	mock.Mock
}

func (m *MockTranscript) GetTranscript(ctx context.Context, videoID string, languages []string) ([]model.CaptionLine, error) {
	args := m.Called(ctx, videoID, languages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaptionLine), args.Error(1)
}

func (m *MockTranscript) ListLanguages(ctx context.Context, videoID string) ([]string, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockOEmbed struct {
	mock.Mock
}

func (m *MockOEmbed) FetchVideoData(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoMetadata), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestGetVideoMetadata_Success(t *testing.T) {
	mockTranscript := new(MockTranscript)
	mockOEmbed := new(MockOEmbed)

	mockOEmbed.On("FetchVideoData", mock.Anything, testVideoID).
		Return(&model.VideoMetadata{Title: strPtr("Never Gonna Give You Up")}, nil).
		Once()

	videoUsecase := usecase.NewVideoUseCase(mockTranscript, mockOEmbed)
	metadata, err := videoUsecase.GetVideoMetadata(context.Background(), testURL)

	require.NoError(t, err)
	require.NotNil(t, metadata.Title)
	assert.Equal(t, "Never Gonna Give You Up", *metadata.Title)
	mockOEmbed.AssertExpectations(t)
}

func TestGetVideoMetadata_DegradedOnUpstreamFailure(t *testing.T) {
	mockTranscript := new(MockTranscript)
	mockOEmbed := new(MockOEmbed)

	mockOEmbed.On("FetchVideoData", mock.Anything, testVideoID).
		Return(nil, assert.AnError).
		Once()

	videoUsecase := usecase.NewVideoUseCase(mockTranscript, mockOEmbed)
	metadata, err := videoUsecase.GetVideoMetadata(context.Background(), testURL)

	require.NoError(t, err)
	require.NotNil(t, metadata)
	assert.Equal(t, "YouTube Video (dQw4w9WgXcQ)", *metadata.Title)
	assert.Equal(t, "Unknown", *metadata.AuthorName)
	assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg", *metadata.ThumbnailURL)
	mockOEmbed.AssertExpectations(t)
}

func TestGetVideoMetadata_EmptyURL(t *testing.T) {
	videoUsecase := usecase.NewVideoUseCase(new(MockTranscript), new(MockOEmbed))

	_, err := videoUsecase.GetVideoMetadata(context.Background(), "")

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrInvalidInput, appErr.Kind)
	assert.Equal(t, "No URL provided", appErr.Message)
}

func TestGetVideoMetadata_InvalidURL(t *testing.T) {
	videoUsecase := usecase.NewVideoUseCase(new(MockTranscript), new(MockOEmbed))

	_, err := videoUsecase.GetVideoMetadata(context.Background(), "https://example.com/watch?v=abc")

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrInvalidInput, appErr.Kind)
	assert.Equal(t, "Invalid YouTube URL", appErr.Message)
}

func TestGetVideoCaptions_RequestedLanguage(t *testing.T) {
	mockTranscript := new(MockTranscript)
	mockOEmbed := new(MockOEmbed)

	mockOEmbed.On("FetchVideoData", mock.Anything, testVideoID).
		Return(&model.VideoMetadata{Title: strPtr("Some Video")}, nil).
		Once()
	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, []string{"en"}).
		Return([]model.CaptionLine{
			{Text: "hello", Start: 0.5, Duration: 2.0},
			{Text: "world", Start: 65.2, Duration: 1.5},
		}, nil).
		Once()

	videoUsecase := usecase.NewVideoUseCase(mockTranscript, mockOEmbed)
	captions, err := videoUsecase.GetVideoCaptions(context.Background(), testURL, []string{"en"})

	require.NoError(t, err)
	assert.Equal(t, "Some Video", captions.Title)
	require.Len(t, captions.Subtitles, 2)
	assert.Equal(t, "0:00", captions.Subtitles[0].Timestamp)
	assert.Equal(t, "1:05", captions.Subtitles[1].Timestamp)
	assert.Equal(t, 65, captions.Subtitles[1].Start)
	mockTranscript.AssertExpectations(t)
	mockOEmbed.AssertExpectations(t)
}

// A video captioned only in German still resolves when English is requested:
// the chain falls through to enumeration and takes the first listed track.
func TestGetVideoCaptions_FallsThroughToFirstAvailable(t *testing.T) {
	mockTranscript := new(MockTranscript)
	mockOEmbed := new(MockOEmbed)

	mockOEmbed.On("FetchVideoData", mock.Anything, testVideoID).
		Return(nil, assert.AnError).
		Once()
	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, []string{"en"}).
		Return(nil, assert.AnError).
		Once()
	mockTranscript.On("ListLanguages", mock.Anything, testVideoID).
		Return([]string{"de"}, nil).
		Once()
	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, []string{"de"}).
		Return([]model.CaptionLine{{Text: "hallo", Start: 1.0, Duration: 2.0}}, nil).
		Once()

	videoUsecase := usecase.NewVideoUseCase(mockTranscript, mockOEmbed)
	captions, err := videoUsecase.GetVideoCaptions(context.Background(), testURL, []string{"en"})

	require.NoError(t, err)
	require.Len(t, captions.Subtitles, 1)
	assert.Equal(t, "hallo", captions.Subtitles[0].Text)
	mockTranscript.AssertExpectations(t)
}

func TestGetVideoCaptions_DefaultThenEnglishFallback(t *testing.T) {
	mockTranscript := new(MockTranscript)
	mockOEmbed := new(MockOEmbed)

	mockOEmbed.On("FetchVideoData", mock.Anything, testVideoID).
		Return(nil, assert.AnError).
		Once()
	// No languages requested: default attempt uses a nil restriction.
	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, ([]string)(nil)).
		Return(nil, assert.AnError).
		Once()
	mockTranscript.On("ListLanguages", mock.Anything, testVideoID).
		Return(nil, assert.AnError).
		Once()
	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, []string{"en"}).
		Return([]model.CaptionLine{{Text: "finally", Start: 0, Duration: 1.0}}, nil).
		Once()

	videoUsecase := usecase.NewVideoUseCase(mockTranscript, mockOEmbed)
	captions, err := videoUsecase.GetVideoCaptions(context.Background(), testURL, nil)

	require.NoError(t, err)
	require.Len(t, captions.Subtitles, 1)
	assert.Equal(t, "finally", captions.Subtitles[0].Text)
	mockTranscript.AssertExpectations(t)
}

func TestGetVideoCaptions_AllAttemptsFail(t *testing.T) {
	mockTranscript := new(MockTranscript)
	mockOEmbed := new(MockOEmbed)

	mockOEmbed.On("FetchVideoData", mock.Anything, testVideoID).
		Return(nil, assert.AnError).
		Once()
	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, ([]string)(nil)).
		Return(nil, assert.AnError).
		Once()
	mockTranscript.On("ListLanguages", mock.Anything, testVideoID).
		Return([]string{}, nil).
		Once()
	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, []string{"en"}).
		Return(nil, assert.AnError).
		Once()

	videoUsecase := usecase.NewVideoUseCase(mockTranscript, mockOEmbed)
	_, err := videoUsecase.GetVideoCaptions(context.Background(), testURL, nil)

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrNotFound, appErr.Kind)
	assert.Contains(t, appErr.Message, "Could not retrieve subtitles")
	assert.Contains(t, appErr.Message, "default language")
	assert.Contains(t, appErr.Message, "english fallback")
	mockTranscript.AssertExpectations(t)
}

func TestGetVideoTimestamps_Formatting(t *testing.T) {
	mockTranscript := new(MockTranscript)
	mockOEmbed := new(MockOEmbed)

	// 3661s is 61 minutes 1 second; no hour rollover.
	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, []string{"en"}).
		Return([]model.CaptionLine{
			{Text: "intro", Start: 3.9, Duration: 2.0},
			{Text: "over an hour in", Start: 3661.0, Duration: 2.5},
		}, nil).
		Once()

	videoUsecase := usecase.NewVideoUseCase(mockTranscript, mockOEmbed)
	timestamps, err := videoUsecase.GetVideoTimestamps(context.Background(), testURL, nil)

	require.NoError(t, err)
	require.Len(t, timestamps, 2)
	assert.Equal(t, "0:03 - intro", timestamps[0])
	assert.Equal(t, "61:01 - over an hour in", timestamps[1])
	mockTranscript.AssertExpectations(t)
}

func TestGetVideoTimestamps_EnglishRetry(t *testing.T) {
	mockTranscript := new(MockTranscript)
	mockOEmbed := new(MockOEmbed)

	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, []string{"fr"}).
		Return(nil, assert.AnError).
		Once()
	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, []string{"en"}).
		Return([]model.CaptionLine{{Text: "hello", Start: 0, Duration: 1.0}}, nil).
		Once()

	videoUsecase := usecase.NewVideoUseCase(mockTranscript, mockOEmbed)
	timestamps, err := videoUsecase.GetVideoTimestamps(context.Background(), testURL, []string{"fr"})

	require.NoError(t, err)
	assert.Equal(t, []string{"0:00 - hello"}, timestamps)
	mockTranscript.AssertExpectations(t)
}

func TestGetVideoTimestamps_TotalFailure(t *testing.T) {
	mockTranscript := new(MockTranscript)
	mockOEmbed := new(MockOEmbed)

	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, []string{"fr"}).
		Return(nil, assert.AnError).
		Once()
	mockTranscript.On("GetTranscript", mock.Anything, testVideoID, []string{"en"}).
		Return(nil, assert.AnError).
		Once()

	videoUsecase := usecase.NewVideoUseCase(mockTranscript, mockOEmbed)
	_, err := videoUsecase.GetVideoTimestamps(context.Background(), testURL, []string{"fr"})

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrUpstream, appErr.Kind)
	assert.Contains(t, appErr.Message, "Error generating timestamps")
	mockTranscript.AssertExpectations(t)
}

func TestFormatCaptions(t *testing.T) {
	formatted := usecase.FormatCaptions([]model.CaptionLine{
		{Text: "a", Start: 0, Duration: 1},
		{Text: "b", Start: 59.9, Duration: 1},
		{Text: "c", Start: 60, Duration: 1},
		{Text: "d", Start: 3665.4, Duration: 1},
	})

	require.Len(t, formatted, 4)
	assert.Equal(t, "0:00", formatted[0].Timestamp)
	assert.Equal(t, "0:59", formatted[1].Timestamp)
	assert.Equal(t, "1:00", formatted[2].Timestamp)
	assert.Equal(t, "61:05", formatted[3].Timestamp)
	assert.Equal(t, 3665, formatted[3].Start)
}
