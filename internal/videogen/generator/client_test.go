package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/videoforge/ai-video-generator/internal/config"
	"github.com/videoforge/ai-video-generator/internal/models"
	"github.com/videoforge/ai-video-generator/pkg/logger"
)

func newTestClient(endpoint string) *Client {
	return NewClient(&config.GeneratorConfig{
		Endpoint:       endpoint,
		Model:          "replicate/google/veo-3",
		CustomerID:     "tester@example.com",
		AuthToken:      "token",
		RequestTimeout: 5 * time.Second,
	}, logger.NewTestLogger())
}

func TestGenerateVideoSuccess(t *testing.T) {
	var gotBody chatRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" {
			t.Errorf("missing auth header")
		}
		if r.Header.Get("customerId") != "tester@example.com" {
			t.Errorf("missing customerId header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)
	resp := client.GenerateVideo(context.Background(), &models.GenerationRequest{
		Prompt:      "a dog in space",
		Duration:    10,
		AspectRatio: "portrait",
		Quality:     "high",
		Style:       "cinematic",
	}, "")

	if resp.Status != models.StatusProcessing {
		t.Fatalf("status = %s, want processing", resp.Status)
	}
	if resp.Progress != 0 {
		t.Fatalf("progress = %d, want 0", resp.Progress)
	}
	if resp.EstimatedTimeRemaining != 300 {
		t.Fatalf("estimatedTimeRemaining = %d, want 300", resp.EstimatedTimeRemaining)
	}
	if resp.CreatedAt.IsZero() {
		t.Fatalf("createdAt not set")
	}

	if gotBody.Model != "replicate/google/veo-3" {
		t.Fatalf("model = %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", gotBody.Messages)
	}
	if gotBody.Messages[0].Content != models.DefaultSystemPrompt {
		t.Fatalf("empty system prompt must fall back to the default")
	}
	user := gotBody.Messages[1].Content
	for _, want := range []string{
		"Generate a video: a dog in space",
		"- Duration: 10 seconds",
		"- Aspect Ratio: portrait",
		"- Quality: high",
		"- Style: cinematic",
		"Cinematic Guidelines:",
	} {
		if !strings.Contains(user, want) {
			t.Fatalf("user prompt missing %q:\n%s", want, user)
		}
	}
}

func TestGenerateVideoUsesProvidedSystemPrompt(t *testing.T) {
	var gotBody chatRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)
	client.GenerateVideo(context.Background(), &models.GenerationRequest{Prompt: "hi"}, "custom prompt")

	if gotBody.Messages[0].Content != "custom prompt" {
		t.Fatalf("system prompt = %q, want custom prompt", gotBody.Messages[0].Content)
	}
}

func TestGenerateVideoUpstreamErrorYieldsFailedRecord(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)
	resp := client.GenerateVideo(context.Background(), &models.GenerationRequest{Prompt: "hi"}, "")

	if resp.Status != models.StatusFailed {
		t.Fatalf("status = %s, want failed", resp.Status)
	}
	if !strings.Contains(resp.Error, "502") {
		t.Fatalf("error should carry upstream status: %q", resp.Error)
	}
	if resp.ID == "" {
		t.Fatalf("failed record still needs an id")
	}
}

func TestGenerateVideoTransportErrorYieldsFailedRecord(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	resp := client.GenerateVideo(context.Background(), &models.GenerationRequest{Prompt: "hi"}, "")

	if resp.Status != models.StatusFailed {
		t.Fatalf("status = %s, want failed", resp.Status)
	}
	if resp.Error == "" {
		t.Fatalf("transport failure must surface an error message")
	}
}

func TestNewVideoIDFormat(t *testing.T) {
	idPattern := regexp.MustCompile(`^video_\d+_[0-9a-f]{9}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewVideoID()
		if !idPattern.MatchString(id) {
			t.Fatalf("id %q does not match expected format", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
