package model

import "time"

// SlotKind names one piece of structured information the dialogue collects.
type SlotKind string

const (
	SlotTopic       SlotKind = "topic"
	SlotDeliverable SlotKind = "deliverable"
	SlotPeriod      SlotKind = "period"
	SlotBudget      SlotKind = "budget"
	SlotNone        SlotKind = "none"
)

// Session is the per-user in-progress dialogue state for one estimation cycle.
// Slot fields hold normalized, validated values only; empty means unfilled.
type Session struct {
	UserID            string   `json:"user_id"`
	Topic             string   `json:"topic"`
	Deliverable       string   `json:"deliverable"`
	Period            string   `json:"period"`
	Budget            string   `json:"budget"`
	RetryCount        int      `json:"retry_count"`
	LastRequestedSlot SlotKind `json:"last_requested_slot"`

	// Token increases with every dispatched estimation for this user and gates
	// stale background writes to the result cache.
	Token     int64     `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// Slot returns the stored value for kind.
func (s *Session) Slot(kind SlotKind) string {
	switch kind {
	case SlotTopic:
		return s.Topic
	case SlotDeliverable:
		return s.Deliverable
	case SlotPeriod:
		return s.Period
	case SlotBudget:
		return s.Budget
	}
	return ""
}

// SetSlot stores a normalized value for kind.
func (s *Session) SetSlot(kind SlotKind, value string) {
	switch kind {
	case SlotTopic:
		s.Topic = value
	case SlotDeliverable:
		s.Deliverable = value
	case SlotPeriod:
		s.Period = value
	case SlotBudget:
		s.Budget = value
	}
}

// IsComplete reports whether all four slots are filled.
func (s *Session) IsComplete() bool {
	return s.Topic != "" && s.Deliverable != "" && s.Period != "" && s.Budget != ""
}
