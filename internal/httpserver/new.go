package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"estimate-srv/config"
	"estimate-srv/internal/embedding"
	"estimate-srv/internal/estimate"
	"estimate-srv/internal/slot"
	"estimate-srv/pkg/discord"
	pkgGemini "estimate-srv/pkg/gemini"
	"estimate-srv/pkg/log"
	pkgRedis "estimate-srv/pkg/redis"
	pkgVoyage "estimate-srv/pkg/voyage"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// External Clients
	redisClient  pkgRedis.IRedis
	voyageClient pkgVoyage.IVoyage
	geminiClient pkgGemini.IGemini

	// Domain Usecases (wired in mapHandlers)
	embeddingUC embedding.UseCase
	classifier  slot.Classifier
	estimateUC  estimate.UseCase

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// External Clients
	RedisClient  pkgRedis.IRedis
	VoyageClient pkgVoyage.IVoyage
	GeminiClient pkgGemini.IGemini

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		redisClient:  cfg.RedisClient,
		voyageClient: cfg.VoyageClient,
		geminiClient: cfg.GeminiClient,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.voyageClient == nil {
		return errors.New("voyageClient is required")
	}
	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}
	// discord is optional

	return nil
}
