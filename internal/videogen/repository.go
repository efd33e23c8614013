package videogen

import (
	"context"
	"errors"

	"github.com/videoforge/ai-video-generator/internal/models"
)

// ErrVideoNotFound is returned by lookups for an unknown video id.
var ErrVideoNotFound = errors.New("video not found")

// Repository is the persistence store for the three logical collections:
// videos, settings and stats. Implementations keep videos newest-first and
// recompute stats on every video write.
type Repository interface {
	GetVideos(ctx context.Context) ([]*models.Video, error)
	SaveVideo(ctx context.Context, video *models.Video) error
	DeleteVideo(ctx context.Context, videoID string) error
	GetVideo(ctx context.Context, videoID string) (*models.Video, error)

	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, patch *models.SettingsPatch) (*models.Settings, error)

	GetStats(ctx context.Context) (*models.Stats, error)

	ExportData(ctx context.Context) (*models.ExportEnvelope, error)
	ImportData(ctx context.Context, data []byte) error
	ClearAllData(ctx context.Context) error
}
