package videogen

import "github.com/labstack/echo/v4"

type Handler interface {
	GenerateVideo() echo.HandlerFunc
	GenerateVideoInfo() echo.HandlerFunc
	VideoStatus() echo.HandlerFunc
	Videos() echo.HandlerFunc
	DeleteVideo() echo.HandlerFunc

	ListVideos() echo.HandlerFunc
	GetVideoByID() echo.HandlerFunc
	GetSettings() echo.HandlerFunc
	UpdateSettings() echo.HandlerFunc
	GetStats() echo.HandlerFunc
	ExportData() echo.HandlerFunc
	ImportData() echo.HandlerFunc
	ClearAllData() echo.HandlerFunc
}
