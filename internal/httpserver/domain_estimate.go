package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	estimateHTTP "estimate-srv/internal/estimate/delivery/http"
	estimateRedis "estimate-srv/internal/estimate/repository/redis"
	estimateUsecase "estimate-srv/internal/estimate/usecase"
	"estimate-srv/internal/middleware"
)

func (srv *HTTPServer) setupEstimateDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	resultTTL := time.Duration(srv.config.Dialogue.ResultTTL) * time.Second
	repo := estimateRedis.New(srv.redisClient, resultTTL, srv.l)

	srv.estimateUC = estimateUsecase.New(srv.l, repo, srv.geminiClient)

	handler := estimateHTTP.New(srv.l, srv.estimateUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Estimate domain registered")
	return nil
}
