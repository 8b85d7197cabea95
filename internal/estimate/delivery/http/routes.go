package http

import (
	"estimate-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.CORS())
	{
		api.GET("/estimates/:user_id", h.GetResult)
		api.GET("/estimates/:user_id/shrunk", h.GetShrunk)
		api.DELETE("/estimates/:user_id", h.Reset)
	}
}
