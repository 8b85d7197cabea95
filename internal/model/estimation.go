package model

import (
	"fmt"
	"time"
)

// EstimationRequest is the frozen parameter set built once all slots are filled.
type EstimationRequest struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Topic       string    `json:"topic"`
	Deliverable string    `json:"deliverable"`
	Period      string    `json:"period"`
	Budget      string    `json:"budget"`
	Categories  []string  `json:"categories"`
	Token       int64     `json:"token"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary renders the captured request as a single line for polling replies.
func (r EstimationRequest) Summary() string {
	return fmt.Sprintf("주제: %s / 산출물: %s / 기간: %s / 예산: %s",
		r.Topic, r.Deliverable, r.Period, r.Budget)
}

// EstimationStatus is the lifecycle state of a cached estimate.
type EstimationStatus string

const (
	EstimationPending EstimationStatus = "PENDING"
	EstimationReady   EstimationStatus = "READY"
)

// EstimationResult is the cached outcome of one estimation cycle, keyed by
// user. It carries the frozen request so the shrunk variant can be built
// later without the session.
type EstimationResult struct {
	UserID   string            `json:"user_id"`
	Token    int64             `json:"token"`
	Status   EstimationStatus  `json:"status"`
	Request  EstimationRequest `json:"request"`
	FullText string            `json:"full_text"`
	// ShrunkText is computed lazily on first request and cached thereafter.
	ShrunkText string    `json:"shrunk_text,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
