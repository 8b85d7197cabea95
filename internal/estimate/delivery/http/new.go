package http

import (
	"estimate-srv/internal/estimate"
	"estimate-srv/internal/middleware"
	"estimate-srv/pkg/discord"
	"estimate-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for estimate HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      estimate.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc estimate.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
