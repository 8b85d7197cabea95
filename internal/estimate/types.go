package estimate

import "estimate-srv/internal/model"

type GetResultInput struct {
	UserID string
}

type GetShrunkInput struct {
	UserID string
}

type ResultOutput struct {
	Status  model.EstimationStatus
	Summary string
	Text    string
}

type ShrunkOutput struct {
	Summary string
	Text    string
}
