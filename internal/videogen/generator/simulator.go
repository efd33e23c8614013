package generator

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/videoforge/ai-video-generator/internal/models"
	"github.com/videoforge/ai-video-generator/internal/videogen"
)

const (
	// simulationWindow is the wall-clock window one simulated generation
	// spans. Progress is derived from the current position inside it.
	simulationWindow = 300000 * time.Millisecond
	msPerPercent     = 3000
)

// SimulatedStatus is a stand-in StatusChecker: the upstream API exposes no
// real job status, so progress is fabricated from wall-clock time. A real
// backend integration replaces this with an actual status query behind the
// same interface.
type SimulatedStatus struct {
	nowFn func() time.Time
}

func NewSimulatedStatus() *SimulatedStatus {
	return &SimulatedStatus{nowFn: time.Now}
}

var _ videogen.StatusChecker = (*SimulatedStatus)(nil)

func (s *SimulatedStatus) CheckVideoStatus(_ context.Context, videoID string) *models.GenerationResponse {
	now := s.nowFn()
	elapsed := now.UnixMilli() % int64(simulationWindow/time.Millisecond)
	progress := math.Min(100, float64(elapsed)/msPerPercent)

	// The window never yields exactly 100 before rolling over, so the
	// terminal check works on the rounded value.
	if math.Round(progress) >= 100 {
		completedAt := now
		return &models.GenerationResponse{
			ID:           videoID,
			Status:       models.StatusCompleted,
			VideoURL:     fmt.Sprintf("https://placehold.co/1920x1080.mp4?text=Generated+Video+%s", videoID),
			ThumbnailURL: fmt.Sprintf("https://placehold.co/1920x1080?text=Video+Thumbnail+%s", videoID),
			Progress:     100,
			CreatedAt:    now.Add(-simulationWindow),
			CompletedAt:  &completedAt,
		}
	}

	return &models.GenerationResponse{
		ID:                     videoID,
		Status:                 models.StatusProcessing,
		Progress:               int(math.Round(progress)),
		EstimatedTimeRemaining: int(math.Round((100 - progress) * 3)),
		CreatedAt:              now.Add(-time.Duration(progress*msPerPercent) * time.Millisecond),
	}
}

// DownloadURL synthesizes the placeholder download location for a video.
func DownloadURL(videoID string) string {
	return fmt.Sprintf("https://placehold.co/1920x1080.mp4?text=Video+Download+%s", videoID)
}
