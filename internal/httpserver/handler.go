package httpserver

import (
	"context"

	"estimate-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(srv.l)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.setupCoreDomains(ctx); err != nil {
		return err
	}
	if err := srv.setupEstimateDomain(ctx, srv.gin.Group(""), mw); err != nil {
		return err
	}
	if err := srv.setupDialogueDomain(ctx, srv.gin.Group(""), mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
