package videogen

import (
	"context"

	"github.com/videoforge/ai-video-generator/internal/models"
)

// Generator issues a create request against the upstream generation API.
// Failures never escape as errors: any transport or upstream problem is
// converted into a response with status failed so callers always receive a
// well-formed record.
type Generator interface {
	GenerateVideo(ctx context.Context, request *models.GenerationRequest, systemPrompt string) *models.GenerationResponse
}

// StatusChecker reports the current status of a generation. The shipped
// implementation simulates progress from wall-clock time; a real backend
// integration replaces it behind the same interface.
type StatusChecker interface {
	CheckVideoStatus(ctx context.Context, videoID string) *models.GenerationResponse
}
