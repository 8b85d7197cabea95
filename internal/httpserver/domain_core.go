package httpserver

import (
	"context"

	embeddingRepo "estimate-srv/internal/embedding/repository/redis"
	embeddingUsecase "estimate-srv/internal/embedding/usecase"
	"estimate-srv/internal/slot"
)

func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	embeddingCacheRepo := embeddingRepo.New(srv.redisClient, srv.l)

	srv.embeddingUC = embeddingUsecase.New(embeddingCacheRepo, srv.voyageClient, srv.l)

	srv.classifier = slot.New(srv.embeddingUC, srv.config.Dialogue.FuzzyThreshold, srv.l)

	srv.l.Infof(ctx, "Core domains (Embedding, Slot) initialized")
	return nil
}
