package main

import (
	"context"
	"fmt"

	"estimate-srv/config"
	"estimate-srv/internal/httpserver"
	"estimate-srv/pkg/discord"
	pkgGemini "estimate-srv/pkg/gemini"
	"estimate-srv/pkg/log"
	pkgRedis "estimate-srv/pkg/redis"
	pkgVoyage "estimate-srv/pkg/voyage"
)

// @title       Estimate Service API
// @description Slot-filling chatbot and estimation API for IT project quotes.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 4. Initialize Redis
	redisClient, err := pkgRedis.NewRedis(pkgRedis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize Voyage (embedding)
	voyageClient := pkgVoyage.NewVoyage(pkgVoyage.VoyageConfig{
		APIKey: cfg.Voyage.APIKey,
		Model:  cfg.Voyage.Model,
	})

	// 6. Initialize Gemini (LLM)
	geminiClient, err := pkgGemini.NewGemini(pkgGemini.GeminiConfig{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Gemini client: %v", err)
		return
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		RedisClient:  redisClient,
		VoyageClient: voyageClient,
		GeminiClient: geminiClient,

		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
