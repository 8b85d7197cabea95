package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"estimate-srv/internal/category"
	"estimate-srv/internal/dialogue"
	"estimate-srv/internal/dialogue/repository"
	"estimate-srv/internal/model"
)

func (uc *implUseCase) HandleTurn(ctx context.Context, input dialogue.TurnInput) (dialogue.Reply, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		// A turn without an identifier cannot be sessioned. Degrade to the
		// redirect message instead of failing the webhook.
		return dialogue.Reply{Text: msgOffTopic}, nil
	}
	utterance := strings.TrimSpace(input.Utterance)

	uc.locks.Lock(userID)
	defer uc.locks.Unlock(userID)

	if reply, handled, err := uc.handleCommand(ctx, userID, utterance); handled {
		return reply, err
	}

	sess, err := uc.repo.Get(ctx, userID)
	isNew := false
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Errorf(ctx, "dialogue.usecase.HandleTurn: get session: %v", err)
			return dialogue.Reply{}, err
		}
		// No session yet. Off-topic chatter gets a redirect without
		// creating state.
		if !hasIntent(utterance, input.Params) {
			return dialogue.Reply{Text: msgOffTopic}, nil
		}
		sess = model.Session{
			UserID:            userID,
			LastRequestedSlot: model.SlotNone,
			CreatedAt:         time.Now(),
		}
		isNew = true
	}

	progressed := uc.applyParams(&sess, input.Params)

	for _, kind := range dialogue.SlotOrder {
		if sess.Slot(kind) != "" {
			continue
		}
		value := uc.extract(ctx, &sess, kind, utterance)
		if value == "" {
			// A slot is only attempted once every slot before it is filled.
			// Stop at the first miss and ask for that slot.
			break
		}
		sess.SetSlot(kind, value)
		progressed = true
	}

	if progressed || isNew {
		sess.RetryCount = 0
	} else {
		sess.RetryCount++
		if sess.RetryCount >= uc.retryCeiling {
			return uc.exhaust(ctx, userID)
		}
	}

	if sess.IsComplete() {
		return uc.dispatch(ctx, sess)
	}

	next := firstEmptySlot(&sess)
	retrying := sess.RetryCount > 0
	sess.LastRequestedSlot = next
	if err := uc.repo.Save(ctx, sess); err != nil {
		uc.l.Errorf(ctx, "dialogue.usecase.HandleTurn: save session: %v", err)
		return dialogue.Reply{}, err
	}

	text := promptFor(next)
	if retrying {
		text = retryPrompt(next)
	}
	if isNew {
		text = msgGreeting + "\n\n" + text
	}
	return dialogue.Reply{Text: text}, nil
}

// exhaust destroys the session and any cached estimate after too many
// consecutive unusable answers. The next turn starts from scratch.
func (uc *implUseCase) exhaust(ctx context.Context, userID string) (dialogue.Reply, error) {
	if err := uc.repo.Delete(ctx, userID); err != nil {
		uc.l.Errorf(ctx, "dialogue.usecase.exhaust: delete session: %v", err)
		return dialogue.Reply{}, err
	}
	if err := uc.estimateUC.Reset(ctx, userID); err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.exhaust: reset estimate: %v", err)
	}
	return dialogue.Reply{
		Text: msgRetryExhausted,
		QuickReplies: []dialogue.QuickReply{
			{Label: dialogue.CommandNewCycle, Message: dialogue.CommandNewCycle},
		},
	}, nil
}

// dispatch freezes the completed session into an estimation request, hands it
// to the estimate usecase, and closes the dialogue cycle.
func (uc *implUseCase) dispatch(ctx context.Context, sess model.Session) (dialogue.Reply, error) {
	// Nanosecond tokens stay unique across dialogue cycles, so a completion
	// from an abandoned cycle can never be mistaken for the current one.
	sess.Token = time.Now().UnixNano()

	req := model.EstimationRequest{
		ID:          uuid.NewString(),
		UserID:      sess.UserID,
		Topic:       sess.Topic,
		Deliverable: sess.Deliverable,
		Period:      sess.Period,
		Budget:      sess.Budget,
		Categories:  category.Infer(sess.Topic, sess.Deliverable),
		Token:       sess.Token,
		CreatedAt:   time.Now(),
	}
	uc.estimateUC.Dispatch(ctx, req)

	// The cycle is done; keeping a complete session around would re-dispatch
	// on every subsequent utterance.
	if err := uc.repo.Delete(ctx, sess.UserID); err != nil {
		uc.l.Errorf(ctx, "dialogue.usecase.dispatch: delete session: %v", err)
	}

	return dialogue.Reply{
		Text: dispatchAck(req.Summary()),
		QuickReplies: []dialogue.QuickReply{
			{Label: dialogue.CommandGetResult, Message: dialogue.CommandGetResult},
			{Label: dialogue.CommandNewCycle, Message: dialogue.CommandNewCycle},
		},
	}, nil
}

func firstEmptySlot(sess *model.Session) model.SlotKind {
	for _, kind := range dialogue.SlotOrder {
		if sess.Slot(kind) == "" {
			return kind
		}
	}
	return model.SlotNone
}
