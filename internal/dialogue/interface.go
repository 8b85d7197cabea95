package dialogue

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleTurn processes one user utterance and returns the next reply.
	// Turns for the same user are serialized; the returned reply always
	// reflects a consistent session state.
	HandleTurn(ctx context.Context, input TurnInput) (Reply, error)
}
