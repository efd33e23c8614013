package models

import "time"

const DefaultSystemPrompt = `You are an expert video generation assistant. Generate high-quality videos based on user prompts.

Guidelines:
- Create visually compelling and coherent video content
- Ensure smooth transitions and professional quality
- Follow the specified duration, aspect ratio, and style requirements
- Generate content that is appropriate and engaging
- Focus on visual storytelling and cinematic quality

Respond only with the video generation request, no additional text.`

// Settings is the singleton user configuration. Reads always return the
// defaults shallow-merged with whatever partial override is stored.
type Settings struct {
	SystemPrompt             string `json:"systemPrompt"`
	DefaultDuration          int    `json:"defaultDuration" validate:"omitempty,gte=1,lte=30"`
	DefaultAspectRatio       string `json:"defaultAspectRatio" validate:"omitempty,oneof=landscape portrait square"`
	DefaultQuality           string `json:"defaultQuality" validate:"omitempty,oneof=standard high premium"`
	MaxConcurrentGenerations int    `json:"maxConcurrentGenerations"`
	AutoDownload             bool   `json:"autoDownload"`
}

// SettingsPatch is a partial settings update. Nil fields are left untouched.
type SettingsPatch struct {
	SystemPrompt             *string `json:"systemPrompt,omitempty"`
	DefaultDuration          *int    `json:"defaultDuration,omitempty" validate:"omitempty,gte=1,lte=30"`
	DefaultAspectRatio       *string `json:"defaultAspectRatio,omitempty" validate:"omitempty,oneof=landscape portrait square"`
	DefaultQuality           *string `json:"defaultQuality,omitempty" validate:"omitempty,oneof=standard high premium"`
	MaxConcurrentGenerations *int    `json:"maxConcurrentGenerations,omitempty"`
	AutoDownload             *bool   `json:"autoDownload,omitempty"`
}

func DefaultSettings() *Settings {
	return &Settings{
		SystemPrompt:             DefaultSystemPrompt,
		DefaultDuration:          5,
		DefaultAspectRatio:       string(AspectLandscape),
		DefaultQuality:           string(QualityStandard),
		MaxConcurrentGenerations: 3,
		AutoDownload:             false,
	}
}

// Apply merges the patch over s field by field.
func (s *Settings) Apply(p *SettingsPatch) {
	if p == nil {
		return
	}
	if p.SystemPrompt != nil {
		s.SystemPrompt = *p.SystemPrompt
	}
	if p.DefaultDuration != nil {
		s.DefaultDuration = *p.DefaultDuration
	}
	if p.DefaultAspectRatio != nil {
		s.DefaultAspectRatio = *p.DefaultAspectRatio
	}
	if p.DefaultQuality != nil {
		s.DefaultQuality = *p.DefaultQuality
	}
	if p.MaxConcurrentGenerations != nil {
		s.MaxConcurrentGenerations = *p.MaxConcurrentGenerations
	}
	if p.AutoDownload != nil {
		s.AutoDownload = *p.AutoDownload
	}
}

// Stats is the derived aggregate over the whole video collection. It is
// recomputed from scratch on every video write, never maintained
// incrementally.
type Stats struct {
	TotalGenerated      int        `json:"totalGenerated"`
	TotalProcessingTime float64    `json:"totalProcessingTime"`
	SuccessRate         float64    `json:"successRate"`
	StorageUsed         int64      `json:"storageUsed"`
	LastGenerated       *time.Time `json:"lastGenerated,omitempty"`
}

// ExportEnvelope wraps a full dump of all three collections.
type ExportEnvelope struct {
	Videos     []*Video  `json:"videos"`
	Settings   *Settings `json:"settings"`
	Stats      *Stats    `json:"stats"`
	ExportedAt time.Time `json:"exportedAt"`
}
