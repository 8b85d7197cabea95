package http

import (
	"estimate-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/webhook/kakao", h.KakaoSkill)

	api := r.Group("/api/v1")
	api.Use(mw.CORS())
	{
		api.POST("/turns", h.Turn)
	}
}
