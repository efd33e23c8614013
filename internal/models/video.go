package models

import "time"

type VideoStatus string

const (
	StatusPending    VideoStatus = "pending"
	StatusProcessing VideoStatus = "processing"
	StatusCompleted  VideoStatus = "completed"
	StatusFailed     VideoStatus = "failed"
)

// IsTerminal reports whether a video can no longer change status.
func (s VideoStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type AspectRatio string

const (
	AspectLandscape AspectRatio = "landscape"
	AspectPortrait  AspectRatio = "portrait"
	AspectSquare    AspectRatio = "square"
)

type Quality string

const (
	QualityStandard Quality = "standard"
	QualityHigh     Quality = "high"
	QualityPremium  Quality = "premium"
)

// Video is the persisted record for a single generation request.
type Video struct {
	ID           string      `json:"id" validate:"required"`
	Prompt       string      `json:"prompt" validate:"required,lte=2000"`
	Status       VideoStatus `json:"status" validate:"required"`
	VideoURL     string      `json:"videoUrl,omitempty"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty"`
	Duration     int         `json:"duration,omitempty" validate:"omitempty,gte=1,lte=30"`
	AspectRatio  string      `json:"aspectRatio"`
	Quality      string      `json:"quality"`
	Style        string      `json:"style,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	CompletedAt  *time.Time  `json:"completedAt,omitempty"`
	FileSize     int64       `json:"fileSize,omitempty"`
}

type GenerationRequest struct {
	Prompt      string `json:"prompt" validate:"required,lte=2000"`
	Duration    int    `json:"duration,omitempty" validate:"omitempty,gte=1,lte=30"`
	AspectRatio string `json:"aspectRatio,omitempty" validate:"omitempty,oneof=landscape portrait square"`
	Quality     string `json:"quality,omitempty" validate:"omitempty,oneof=standard high premium"`
	Style       string `json:"style,omitempty"`
}

// GenerationResponse describes the current lifecycle status of a request.
// Both the create call and the status poll return this shape.
type GenerationResponse struct {
	ID                     string      `json:"id"`
	Status                 VideoStatus `json:"status"`
	VideoURL               string      `json:"videoUrl,omitempty"`
	ThumbnailURL           string      `json:"thumbnailUrl,omitempty"`
	Error                  string      `json:"error,omitempty"`
	Progress               int         `json:"progress,omitempty"`
	EstimatedTimeRemaining int         `json:"estimatedTimeRemaining,omitempty"`
	CreatedAt              time.Time   `json:"createdAt"`
	CompletedAt            *time.Time  `json:"completedAt,omitempty"`
}

// VideoFromResponse builds the persisted record for an accepted request.
func VideoFromResponse(resp *GenerationResponse, req *GenerationRequest) *Video {
	return &Video{
		ID:          resp.ID,
		Prompt:      req.Prompt,
		Status:      resp.Status,
		Duration:    req.Duration,
		AspectRatio: req.AspectRatio,
		Quality:     req.Quality,
		Style:       req.Style,
		CreatedAt:   resp.CreatedAt,
	}
}
