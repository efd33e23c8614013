package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/videoforge/ai-video-generator/internal/config"
	"github.com/videoforge/ai-video-generator/internal/server"
	"github.com/videoforge/ai-video-generator/pkg/db/redis"
	"github.com/videoforge/ai-video-generator/pkg/logger"
)

func main() {
	log.Println("Starting server")
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	configFile := "config.yml"
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}

	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()
	appLogger.Infof("AppVersion: %s, LogLevel: %s, Mode: %s", cfg.Server.AppVersion, cfg.Logger.Level, cfg.Server.Mode)

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to redis: %s", err)
	}
	appLogger.Infof("redis connected")
	defer redisClient.Close()

	s := server.NewServer(cfg, redisClient, appLogger)
	if err = s.Run(); err != nil {
		appLogger.Infof("could not start server: %s", err)
	}
}
