package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/videoforge/ai-video-generator/internal/models"
	"github.com/videoforge/ai-video-generator/internal/videogen"
	"github.com/videoforge/ai-video-generator/pkg/logger"
)

type stubUseCase struct {
	generateResp *models.GenerationResponse
	generateErr  error
	statusResp   *models.GenerationResponse
	deleted      []string
}

func (s *stubUseCase) GenerateVideo(_ context.Context, _ *models.GenerationRequest) (*models.GenerationResponse, error) {
	return s.generateResp, s.generateErr
}

func (s *stubUseCase) CheckStatus(_ context.Context, id string) (*models.GenerationResponse, error) {
	resp := *s.statusResp
	resp.ID = id
	return &resp, nil
}

func (s *stubUseCase) ListVideos(context.Context) ([]*models.Video, error) {
	return []*models.Video{}, nil
}

func (s *stubUseCase) GetVideo(_ context.Context, id string) (*models.Video, error) {
	if id == "missing" {
		return nil, videogen.ErrVideoNotFound
	}
	return &models.Video{ID: id, Prompt: "p", Status: models.StatusProcessing}, nil
}

func (s *stubUseCase) DeleteVideo(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubUseCase) GetSettings(context.Context) (*models.Settings, error) {
	return models.DefaultSettings(), nil
}

func (s *stubUseCase) UpdateSettings(_ context.Context, patch *models.SettingsPatch) (*models.Settings, error) {
	settings := models.DefaultSettings()
	settings.Apply(patch)
	return settings, nil
}

func (s *stubUseCase) GetStats(context.Context) (*models.Stats, error) {
	return &models.Stats{TotalGenerated: 2}, nil
}

func (s *stubUseCase) ExportData(context.Context) (*models.ExportEnvelope, error) {
	return &models.ExportEnvelope{ExportedAt: time.Now()}, nil
}

func (s *stubUseCase) ImportData(context.Context, []byte) error { return nil }

func (s *stubUseCase) ClearAllData(context.Context) error { return nil }

func newStub() *stubUseCase {
	return &stubUseCase{
		generateResp: &models.GenerationResponse{
			ID:                     "video_1_a",
			Status:                 models.StatusProcessing,
			EstimatedTimeRemaining: 300,
			CreatedAt:              time.Now(),
		},
		statusResp: &models.GenerationResponse{Status: models.StatusProcessing, Progress: 40},
	}
}

func doRequest(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestGenerateVideoMissingPrompt(t *testing.T) {
	h := NewVideoGenHandler(newStub(), logger.NewTestLogger())
	rec := doRequest(t, h.GenerateVideo(), http.MethodPost, "/api/v1/generate-video", `{"prompt":"   "}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Video prompt is required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGenerateVideoOversizedPromptRejectedAtBoundary(t *testing.T) {
	stub := newStub()
	stub.generateResp = nil // must never be reached
	h := NewVideoGenHandler(stub, logger.NewTestLogger())

	long := strings.Repeat("a", 2001)
	rec := doRequest(t, h.GenerateVideo(), http.MethodPost, "/api/v1/generate-video", `{"prompt":"`+long+`"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Prompt is too long") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGenerateVideoMultibytePromptWithinLimit(t *testing.T) {
	h := NewVideoGenHandler(newStub(), logger.NewTestLogger())

	// 1200 characters but 3600 bytes; the limit counts characters.
	prompt := strings.Repeat("猫", 1200)
	rec := doRequest(t, h.GenerateVideo(), http.MethodPost, "/api/v1/generate-video", `{"prompt":"`+prompt+`"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestGenerateVideoMultibytePromptOverLimit(t *testing.T) {
	stub := newStub()
	stub.generateResp = nil // must never be reached
	h := NewVideoGenHandler(stub, logger.NewTestLogger())

	prompt := strings.Repeat("猫", 2001)
	rec := doRequest(t, h.GenerateVideo(), http.MethodPost, "/api/v1/generate-video", `{"prompt":"`+prompt+`"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Prompt is too long") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGenerateVideoSuccess(t *testing.T) {
	h := NewVideoGenHandler(newStub(), logger.NewTestLogger())
	rec := doRequest(t, h.GenerateVideo(), http.MethodPost, "/api/v1/generate-video", `{"prompt":"a cat"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp models.GenerationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "video_1_a" || resp.Status != models.StatusProcessing {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestVideoStatusRequiresID(t *testing.T) {
	h := NewVideoGenHandler(newStub(), logger.NewTestLogger())
	rec := doRequest(t, h.VideoStatus(), http.MethodGet, "/api/v1/video-status", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Video ID is required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestVideoStatusReturnsRecord(t *testing.T) {
	h := NewVideoGenHandler(newStub(), logger.NewTestLogger())
	rec := doRequest(t, h.VideoStatus(), http.MethodGet, "/api/v1/video-status?id=video_1_a", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp models.GenerationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "video_1_a" || resp.Progress != 40 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestVideosDownloadAction(t *testing.T) {
	h := NewVideoGenHandler(newStub(), logger.NewTestLogger())
	rec := doRequest(t, h.Videos(), http.MethodGet, "/api/v1/videos?action=download&id=video_1_a", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp["downloadUrl"], "video_1_a") {
		t.Fatalf("download url missing id: %s", resp["downloadUrl"])
	}
}

func TestVideosCapabilityDescriptor(t *testing.T) {
	h := NewVideoGenHandler(newStub(), logger.NewTestLogger())
	rec := doRequest(t, h.Videos(), http.MethodGet, "/api/v1/videos", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Video management API is active") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestDeleteVideoRequiresID(t *testing.T) {
	stub := newStub()
	h := NewVideoGenHandler(stub, logger.NewTestLogger())
	rec := doRequest(t, h.DeleteVideo(), http.MethodDelete, "/api/v1/videos", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(stub.deleted) != 0 {
		t.Fatalf("delete must not reach the usecase without an id")
	}
}

func TestDeleteVideoAcknowledges(t *testing.T) {
	stub := newStub()
	h := NewVideoGenHandler(stub, logger.NewTestLogger())
	rec := doRequest(t, h.DeleteVideo(), http.MethodDelete, "/api/v1/videos?id=video_1_a", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(stub.deleted) != 1 || stub.deleted[0] != "video_1_a" {
		t.Fatalf("delete not forwarded: %+v", stub.deleted)
	}
}

func TestGetVideoByIDNotFound(t *testing.T) {
	h := NewVideoGenHandler(newStub(), logger.NewTestLogger())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("video_id")
	c.SetParamValues("missing")

	if err := h.GetVideoByID()(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateSettingsAppliesPatch(t *testing.T) {
	h := NewVideoGenHandler(newStub(), logger.NewTestLogger())
	rec := doRequest(t, h.UpdateSettings(), http.MethodPut, "/api/v1/settings", `{"defaultDuration":12}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var settings models.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if settings.DefaultDuration != 12 {
		t.Fatalf("patch not applied: %+v", settings)
	}
	if settings.DefaultQuality != "standard" {
		t.Fatalf("defaults lost: %+v", settings)
	}
}

func TestGetStats(t *testing.T) {
	h := NewVideoGenHandler(newStub(), logger.NewTestLogger())
	rec := doRequest(t, h.GetStats(), http.MethodGet, "/api/v1/stats", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var stats models.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.TotalGenerated != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
