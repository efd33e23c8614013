package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/videoforge/ai-video-generator/internal/middleware"
	videogenHttp "github.com/videoforge/ai-video-generator/internal/videogen/delivery/http"
	videogenGenerator "github.com/videoforge/ai-video-generator/internal/videogen/generator"
	videogenPoller "github.com/videoforge/ai-video-generator/internal/videogen/poller"
	videogenRepository "github.com/videoforge/ai-video-generator/internal/videogen/repository"
	videogenUsecase "github.com/videoforge/ai-video-generator/internal/videogen/usecase"
	"github.com/videoforge/ai-video-generator/pkg/utils"
)

func (s *Server) MapHandlers(ctx context.Context, e *echo.Echo) error {
	vRepo := videogenRepository.NewVideoRedisRepo(s.redisClient, s.cfg.Storage.KeyPrefix, s.logger)

	generatorClient := videogenGenerator.NewClient(&s.cfg.Generator, s.logger)
	checker := videogenGenerator.NewSimulatedStatus()
	if !s.cfg.Generator.Simulate {
		// No real upstream status query exists yet; the simulation is the
		// only checker available.
		s.logger.Warnf("generator.Simulate is disabled but no real status backend is configured, using simulated progress")
	}
	tracker := videogenPoller.New(checker, s.cfg.Poller.Interval, s.logger)

	videoUC := videogenUsecase.NewVideoGenUseCase(ctx, s.cfg, vRepo, generatorClient, checker, tracker, s.logger)
	videoHandlers := videogenHttp.NewVideoGenHandler(videoUC, s.logger)

	mw := middleware.NewMiddlewareManager(s.cfg, []string{"*"}, s.logger)
	e.Use(mw.RequestLoggerMiddleware)

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")

	videogenHttp.MapVideoGenRoutes(v1, videoHandlers)
	health.GET("", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
	return nil
}
