package http

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/videoforge/ai-video-generator/internal/models"
	"github.com/videoforge/ai-video-generator/internal/videogen"
	"github.com/videoforge/ai-video-generator/internal/videogen/generator"
	"github.com/videoforge/ai-video-generator/pkg/logger"
)

const maxPromptLength = 2000

type videoGenHandler struct {
	videoUC videogen.UseCase
	logger  logger.Logger
}

func NewVideoGenHandler(videoUC videogen.UseCase, log logger.Logger) videogen.Handler {
	return &videoGenHandler{
		videoUC: videoUC,
		logger:  log,
	}
}

// GenerateVideo validates the prompt at the boundary; oversized or missing
// prompts never reach the generation client.
func (h *videoGenHandler) GenerateVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		request := &models.GenerationRequest{}
		if err := c.Bind(request); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		if strings.TrimSpace(request.Prompt) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Video prompt is required"})
		}
		if utf8.RuneCountInString(request.Prompt) > maxPromptLength {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Prompt is too long. Please limit to 2000 characters."})
		}

		result, err := h.videoUC.GenerateVideo(c.Request().Context(), request)
		if err != nil {
			h.logger.Errorf("GenerateVideo handler: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error":   "Video generation failed",
				"details": err.Error(),
			})
		}
		return c.JSON(http.StatusOK, result)
	}
}

// GenerateVideoInfo returns the static capability descriptor. No side
// effect.
func (h *videoGenHandler) GenerateVideoInfo() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":        "Video generation API is active",
			"endpoint":       "/api/v1/generate-video",
			"method":         "POST",
			"description":    "Generate videos using AI",
			"requiredFields": []string{"prompt"},
			"optionalFields": []string{"duration", "aspectRatio", "quality", "style"},
		})
	}
}

func (h *videoGenHandler) VideoStatus() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID := c.QueryParam("id")
		if videoID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Video ID is required"})
		}
		status, err := h.videoUC.CheckStatus(c.Request().Context(), videoID)
		if err != nil {
			h.logger.Errorf("VideoStatus handler: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error":   "Failed to check video status",
				"details": err.Error(),
			})
		}
		return c.JSON(http.StatusOK, status)
	}
}

// Videos serves the download action when requested and the capability
// descriptor otherwise.
func (h *videoGenHandler) Videos() echo.HandlerFunc {
	return func(c echo.Context) error {
		action := c.QueryParam("action")
		videoID := c.QueryParam("id")

		if action == "download" && videoID != "" {
			return c.JSON(http.StatusOK, map[string]string{
				"message":      "Video download",
				"videoId":      videoID,
				"downloadUrl":  generator.DownloadURL(videoID),
				"instructions": "Use the downloadUrl to fetch the video file",
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": "Video management API is active",
			"endpoints": map[string]string{
				"download": "/api/v1/videos?action=download&id=VIDEO_ID",
				"list":     "/api/v1/videos/list",
				"delete":   "DELETE /api/v1/videos?id=VIDEO_ID",
			},
			"description": "Manage generated videos",
		})
	}
}

func (h *videoGenHandler) DeleteVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID := c.QueryParam("id")
		if videoID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Video ID is required for deletion"})
		}
		if err := h.videoUC.DeleteVideo(c.Request().Context(), videoID); err != nil {
			h.logger.Errorf("DeleteVideo handler: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error":   "Video deletion failed",
				"details": err.Error(),
			})
		}
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Video deletion processed",
			"videoId": videoID,
		})
	}
}

func (h *videoGenHandler) ListVideos() echo.HandlerFunc {
	return func(c echo.Context) error {
		videos, err := h.videoUC.ListVideos(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, videos)
	}
}

func (h *videoGenHandler) GetVideoByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		video, err := h.videoUC.GetVideo(c.Request().Context(), c.Param("video_id"))
		if err != nil {
			if errors.Is(err, videogen.ErrVideoNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Video not found"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, video)
	}
}

func (h *videoGenHandler) GetSettings() echo.HandlerFunc {
	return func(c echo.Context) error {
		settings, err := h.videoUC.GetSettings(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, settings)
	}
}

func (h *videoGenHandler) UpdateSettings() echo.HandlerFunc {
	return func(c echo.Context) error {
		patch := &models.SettingsPatch{}
		if err := c.Bind(patch); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		settings, err := h.videoUC.UpdateSettings(c.Request().Context(), patch)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, settings)
	}
}

func (h *videoGenHandler) GetStats() echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := h.videoUC.GetStats(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, stats)
	}
}

func (h *videoGenHandler) ExportData() echo.HandlerFunc {
	return func(c echo.Context) error {
		envelope, err := h.videoUC.ExportData(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, envelope)
	}
}

func (h *videoGenHandler) ImportData() echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		if err := h.videoUC.ImportData(c.Request().Context(), data); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Data imported successfully"})
	}
}

func (h *videoGenHandler) ClearAllData() echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.videoUC.ClearAllData(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "All data cleared"})
	}
}
