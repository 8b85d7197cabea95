package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	dialogueHTTP "estimate-srv/internal/dialogue/delivery/http"
	dialogueRedis "estimate-srv/internal/dialogue/repository/redis"
	dialogueUsecase "estimate-srv/internal/dialogue/usecase"
	"estimate-srv/internal/middleware"
)

func (srv *HTTPServer) setupDialogueDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	sessionTTL := time.Duration(srv.config.Dialogue.SessionTTL) * time.Second
	repo := dialogueRedis.New(srv.redisClient, sessionTTL, srv.l)

	uc := dialogueUsecase.New(srv.l, repo, srv.estimateUC, srv.classifier, srv.config.Dialogue.RetryCeiling)

	handler := dialogueHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Dialogue domain registered")
	return nil
}
