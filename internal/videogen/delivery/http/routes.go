package http

import (
	"github.com/labstack/echo/v4"
	"github.com/videoforge/ai-video-generator/internal/videogen"
)

func MapVideoGenRoutes(group *echo.Group, h videogen.Handler) {
	group.POST("/generate-video", h.GenerateVideo())
	group.GET("/generate-video", h.GenerateVideoInfo())
	group.GET("/video-status", h.VideoStatus())

	group.GET("/videos", h.Videos())
	group.DELETE("/videos", h.DeleteVideo())
	group.GET("/videos/list", h.ListVideos())
	group.GET("/videos/:video_id", h.GetVideoByID())

	group.GET("/settings", h.GetSettings())
	group.PUT("/settings", h.UpdateSettings())
	group.GET("/stats", h.GetStats())

	group.GET("/data/export", h.ExportData())
	group.POST("/data/import", h.ImportData())
	group.DELETE("/data", h.ClearAllData())
}
