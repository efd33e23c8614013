package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/videoforge/ai-video-generator/internal/config"
	"github.com/videoforge/ai-video-generator/internal/models"
	"github.com/videoforge/ai-video-generator/internal/videogen"
	"github.com/videoforge/ai-video-generator/pkg/logger"
)

const defaultEstimatedTime = 300 // seconds

// Client submits generation requests to the upstream chat-completions
// endpoint. The upstream contract is opaque: the call either succeeds or
// fails, and the client synthesizes the generation record either way.
type Client struct {
	cfg        *config.GeneratorConfig
	httpClient *http.Client
	logger     logger.Logger
}

func NewClient(cfg *config.GeneratorConfig, log logger.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

var _ videogen.Generator = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// GenerateVideo issues one upstream call and synthesizes the response
// record. It performs no validation of its own and never returns an error:
// failures become a record with status failed.
func (c *Client) GenerateVideo(ctx context.Context, request *models.GenerationRequest, systemPrompt string) *models.GenerationResponse {
	if systemPrompt == "" {
		systemPrompt = models.DefaultSystemPrompt
	}

	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildEnhancedPrompt(request)},
		},
	}

	if err := c.submit(ctx, payload); err != nil {
		c.logger.Errorf("generator.Client.GenerateVideo - upstream call: %v", err)
		return &models.GenerationResponse{
			ID:        NewVideoID(),
			Status:    models.StatusFailed,
			Error:     err.Error(),
			CreatedAt: time.Now(),
		}
	}

	videoID := NewVideoID()
	c.logger.Infof("generation request accepted, video id %s", videoID)
	return &models.GenerationResponse{
		ID:                     videoID,
		Status:                 models.StatusProcessing,
		Progress:               0,
		EstimatedTimeRemaining: defaultEstimatedTime,
		CreatedAt:              time.Now(),
	}
}

func (c *Client) submit(ctx context.Context, payload chatRequest) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.CustomerID != "" {
		req.Header.Set("customerId", c.cfg.CustomerID)
	}
	if c.cfg.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AuthToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("video generation failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	// The upstream body carries no job handle; it is decoded only for the
	// diagnostic log.
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		c.logger.Debugf("upstream response: %v", body)
	}
	return nil
}

// NewVideoID generates an identifier from the current timestamp and a
// random suffix. There is no uniqueness check against the store: a
// collision falls back to last-write-wins on the id key.
func NewVideoID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("video_%d_%s", time.Now().UnixMilli(), suffix)
}

// buildEnhancedPrompt embeds the technical requirements into the user
// prompt as natural-language text, which is the only channel the upstream
// accepts them through.
func buildEnhancedPrompt(request *models.GenerationRequest) string {
	duration := request.Duration
	if duration == 0 {
		duration = 5
	}
	aspectRatio := request.AspectRatio
	if aspectRatio == "" {
		aspectRatio = string(models.AspectLandscape)
	}
	quality := request.Quality
	if quality == "" {
		quality = string(models.QualityStandard)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a video: %s", request.Prompt)
	b.WriteString("\n\nTechnical Requirements:")
	fmt.Fprintf(&b, "\n- Duration: %d seconds", duration)
	fmt.Fprintf(&b, "\n- Aspect Ratio: %s", aspectRatio)
	fmt.Fprintf(&b, "\n- Quality: %s", quality)
	if request.Style != "" {
		fmt.Fprintf(&b, "\n- Style: %s", request.Style)
	}
	b.WriteString("\n\nCinematic Guidelines:")
	b.WriteString("\n- Ensure smooth motion and professional transitions")
	b.WriteString("\n- Maintain visual coherence throughout the video")
	b.WriteString("\n- Focus on engaging visual storytelling")
	b.WriteString("\n- Create compelling and appropriate content")
	return b.String()
}
