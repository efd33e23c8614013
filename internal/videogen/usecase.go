package videogen

import (
	"context"

	"github.com/videoforge/ai-video-generator/internal/models"
)

type UseCase interface {
	GenerateVideo(ctx context.Context, request *models.GenerationRequest) (*models.GenerationResponse, error)
	CheckStatus(ctx context.Context, videoID string) (*models.GenerationResponse, error)

	ListVideos(ctx context.Context) ([]*models.Video, error)
	GetVideo(ctx context.Context, videoID string) (*models.Video, error)
	DeleteVideo(ctx context.Context, videoID string) error

	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, patch *models.SettingsPatch) (*models.Settings, error)
	GetStats(ctx context.Context) (*models.Stats, error)

	ExportData(ctx context.Context) (*models.ExportEnvelope, error)
	ImportData(ctx context.Context, data []byte) error
	ClearAllData(ctx context.Context) error
}
