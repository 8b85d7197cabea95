package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Redis - session store, result cache, embedding cache
	Redis RedisConfig

	// Voyage - Embedding
	Voyage VoyageConfig

	// Gemini - LLM
	Gemini GeminiConfig

	// Dialogue - orchestrator tuning
	Dialogue DialogueConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// VoyageConfig is the configuration for Voyage AI (embedding). Same shape as pkg/voyage.VoyageConfig.
type VoyageConfig struct {
	APIKey string
	Model  string
}

// GeminiConfig is the configuration for Google Gemini (LLM). Same shape as pkg/gemini.GeminiConfig.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// DialogueConfig tunes the slot-filling orchestrator.
type DialogueConfig struct {
	RetryCeiling   int     // unproductive turns before the session is destroyed
	SessionTTL     int     // in seconds
	ResultTTL      int     // in seconds
	FuzzyThreshold float64 // cosine similarity cutoff for fuzzy slot matching
}

// DiscordConfig is the configuration for the Discord error webhook.
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("estimate-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/estimate/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Voyage - Embedding
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")

	// Gemini - LLM
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")

	// Dialogue
	cfg.Dialogue.RetryCeiling = viper.GetInt("dialogue.retry_ceiling")
	cfg.Dialogue.SessionTTL = viper.GetInt("dialogue.session_ttl")
	cfg.Dialogue.ResultTTL = viper.GetInt("dialogue.result_ttl")
	cfg.Dialogue.FuzzyThreshold = viper.GetFloat64("dialogue.fuzzy_threshold")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("dialogue.retry_ceiling", 3)
	viper.SetDefault("dialogue.session_ttl", 1800)
	viper.SetDefault("dialogue.result_ttl", 86400)
	viper.SetDefault("dialogue.fuzzy_threshold", 0.5)
}
