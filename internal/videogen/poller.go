package videogen

import (
	"context"

	"github.com/videoforge/ai-video-generator/internal/models"
)

// Tracker polls a generation until it reaches a terminal status, then fires
// exactly one of the callbacks and stops. Cancelling the context stops the
// loop on every path; no timer may outlive the caller.
type Tracker interface {
	Track(ctx context.Context, videoID string, onCompleted func(*models.GenerationResponse), onError func(string))
}
