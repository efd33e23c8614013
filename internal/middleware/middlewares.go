package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/videoforge/ai-video-generator/internal/config"
	"github.com/videoforge/ai-video-generator/pkg/logger"
	"github.com/videoforge/ai-video-generator/pkg/utils"
)

type MiddlewareManager struct {
	cfg     *config.Config
	origins []string
	logger  logger.Logger
}

// Middleware manager constructor
func NewMiddlewareManager(cfg *config.Config, origins []string, logger logger.Logger) *MiddlewareManager {
	return &MiddlewareManager{cfg: cfg, origins: origins, logger: logger}
}

// RequestLoggerMiddleware logs method, path, status and latency for every
// request.
func (mw *MiddlewareManager) RequestLoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		req := c.Request()
		res := c.Response()
		mw.logger.Infof("RequestID: %s, Method: %s, URI: %s, Status: %d, Time: %s",
			utils.GetRequestID(c), req.Method, req.URL.Path, res.Status, time.Since(start),
		)
		return err
	}
}
