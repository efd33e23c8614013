package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/videoforge/ai-video-generator/internal/config"
	"github.com/videoforge/ai-video-generator/internal/models"
	"github.com/videoforge/ai-video-generator/internal/videogen"
	"github.com/videoforge/ai-video-generator/pkg/logger"
	"github.com/videoforge/ai-video-generator/pkg/utils"
)

type videoGenUC struct {
	baseCtx   context.Context
	cfg       *config.Config
	videoRepo videogen.Repository
	generator videogen.Generator
	checker   videogen.StatusChecker
	tracker   videogen.Tracker
	logger    logger.Logger
}

// NewVideoGenUseCase builds the usecase. baseCtx bounds the lifetime of the
// background tracking goroutines; cancelling it stops every in-flight poll
// loop.
func NewVideoGenUseCase(
	baseCtx context.Context,
	cfg *config.Config,
	videoRepo videogen.Repository,
	generator videogen.Generator,
	checker videogen.StatusChecker,
	tracker videogen.Tracker,
	log logger.Logger,
) videogen.UseCase {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &videoGenUC{
		baseCtx:   baseCtx,
		cfg:       cfg,
		videoRepo: videoRepo,
		generator: generator,
		checker:   checker,
		tracker:   tracker,
		logger:    log,
	}
}

// GenerateVideo normalizes the request, submits it upstream, persists the
// resulting record and starts tracking it until a terminal status lands.
func (u *videoGenUC) GenerateVideo(ctx context.Context, request *models.GenerationRequest) (*models.GenerationResponse, error) {
	normalizeRequest(request)
	if err := utils.ValidateStruct(ctx, request); err != nil {
		u.logger.Errorf("GenerateVideo - ValidateStruct error: %v", err)
		return nil, errors.Wrap(err, "invalid request")
	}

	settings, err := u.videoRepo.GetSettings(ctx)
	if err != nil {
		u.logger.Errorf("GenerateVideo - GetSettings error: %v", err)
		settings = models.DefaultSettings()
	}

	resp := u.generator.GenerateVideo(ctx, request, settings.SystemPrompt)

	video := models.VideoFromResponse(resp, request)
	if err := u.videoRepo.SaveVideo(ctx, video); err != nil {
		u.logger.Errorf("GenerateVideo - SaveVideo error: %v", err)
	}

	if resp.Status == models.StatusProcessing {
		go u.trackGeneration(resp.ID)
	}
	return resp, nil
}

// trackGeneration runs the poll loop for one accepted generation and
// persists the terminal record when it arrives. The loop lives on the
// usecase's base context, so server shutdown tears it down.
func (u *videoGenUC) trackGeneration(videoID string) {
	ctx := u.baseCtx

	u.tracker.Track(ctx, videoID,
		func(status *models.GenerationResponse) {
			if err := u.applyTerminalStatus(ctx, videoID, status); err != nil {
				u.logger.Errorf("trackGeneration - apply completed: %v", err)
			}
		},
		func(message string) {
			failed := &models.GenerationResponse{
				ID:     videoID,
				Status: models.StatusFailed,
				Error:  message,
			}
			if err := u.applyTerminalStatus(ctx, videoID, failed); err != nil {
				u.logger.Errorf("trackGeneration - apply failed: %v", err)
			}
		},
	)
}

func (u *videoGenUC) applyTerminalStatus(ctx context.Context, videoID string, status *models.GenerationResponse) error {
	video, err := u.videoRepo.GetVideo(ctx, videoID)
	if err != nil {
		return err
	}
	if video.Status.IsTerminal() {
		return nil
	}
	video.Status = status.Status
	video.VideoURL = status.VideoURL
	video.ThumbnailURL = status.ThumbnailURL
	if status.CompletedAt != nil {
		video.CompletedAt = status.CompletedAt
	} else if status.Status.IsTerminal() {
		now := time.Now()
		video.CompletedAt = &now
	}
	return u.videoRepo.SaveVideo(ctx, video)
}

func (u *videoGenUC) CheckStatus(ctx context.Context, videoID string) (*models.GenerationResponse, error) {
	if videoID == "" {
		return nil, errors.New("invalid video id: cannot be empty")
	}
	return u.checker.CheckVideoStatus(ctx, videoID), nil
}

func (u *videoGenUC) ListVideos(ctx context.Context) ([]*models.Video, error) {
	return u.videoRepo.GetVideos(ctx)
}

func (u *videoGenUC) GetVideo(ctx context.Context, videoID string) (*models.Video, error) {
	if videoID == "" {
		return nil, errors.New("invalid video id: cannot be empty")
	}
	return u.videoRepo.GetVideo(ctx, videoID)
}

func (u *videoGenUC) DeleteVideo(ctx context.Context, videoID string) error {
	if videoID == "" {
		return errors.New("invalid video id: cannot be empty")
	}
	if err := u.videoRepo.DeleteVideo(ctx, videoID); err != nil {
		u.logger.Errorf("DeleteVideo - repo error: %v", err)
		return errors.Wrap(err, "failed to delete video")
	}
	return nil
}

func (u *videoGenUC) GetSettings(ctx context.Context) (*models.Settings, error) {
	return u.videoRepo.GetSettings(ctx)
}

func (u *videoGenUC) UpdateSettings(ctx context.Context, patch *models.SettingsPatch) (*models.Settings, error) {
	if err := utils.ValidateStruct(ctx, patch); err != nil {
		u.logger.Errorf("UpdateSettings - ValidateStruct error: %v", err)
		return nil, errors.Wrap(err, "invalid settings")
	}
	return u.videoRepo.SaveSettings(ctx, patch)
}

func (u *videoGenUC) GetStats(ctx context.Context) (*models.Stats, error) {
	return u.videoRepo.GetStats(ctx)
}

func (u *videoGenUC) ExportData(ctx context.Context) (*models.ExportEnvelope, error) {
	return u.videoRepo.ExportData(ctx)
}

func (u *videoGenUC) ImportData(ctx context.Context, data []byte) error {
	if err := u.videoRepo.ImportData(ctx, data); err != nil {
		u.logger.Errorf("ImportData - repo error: %v", err)
		return errors.Wrap(err, "failed to import data")
	}
	return nil
}

func (u *videoGenUC) ClearAllData(ctx context.Context) error {
	return u.videoRepo.ClearAllData(ctx)
}

// normalizeRequest applies the caller-side defaults: trimmed prompt and
// style, duration clamped to [1,30], landscape/standard fallbacks.
func normalizeRequest(request *models.GenerationRequest) {
	request.Prompt = strings.TrimSpace(request.Prompt)
	request.Style = strings.TrimSpace(request.Style)
	if request.Duration == 0 {
		request.Duration = 5
	}
	if request.Duration < 1 {
		request.Duration = 1
	}
	if request.Duration > 30 {
		request.Duration = 30
	}
	if request.AspectRatio == "" {
		request.AspectRatio = string(models.AspectLandscape)
	}
	if request.Quality == "" {
		request.Quality = string(models.QualityStandard)
	}
}
