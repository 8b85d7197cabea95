package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"estimate-srv/internal/dialogue"
	"estimate-srv/internal/estimate"
	"estimate-srv/internal/model"
)

// matchCommand reports whether utterance invokes cmd, allowing an optional
// ":<arg>" suffix from messenger button payloads. The argument is ignored.
func matchCommand(utterance, cmd string) bool {
	if !strings.HasPrefix(utterance, cmd) {
		return false
	}
	rest := utterance[len(cmd):]
	return rest == "" || strings.HasPrefix(rest, ":")
}

// handleCommand short-circuits the slot flow for the fixed Korean commands.
// It returns handled=false for everything else.
func (uc *implUseCase) handleCommand(ctx context.Context, userID, utterance string) (dialogue.Reply, bool, error) {
	switch {
	case matchCommand(utterance, dialogue.CommandGetResult):
		reply, err := uc.commandGetResult(ctx, userID)
		return reply, true, err
	case matchCommand(utterance, dialogue.CommandGetShrunk):
		reply, err := uc.commandGetShrunk(ctx, userID)
		return reply, true, err
	case matchCommand(utterance, dialogue.CommandNewCycle):
		reply, err := uc.commandNewCycle(ctx, userID)
		return reply, true, err
	}
	return dialogue.Reply{}, false, nil
}

func (uc *implUseCase) commandGetResult(ctx context.Context, userID string) (dialogue.Reply, error) {
	out, err := uc.estimateUC.GetResult(ctx, estimate.GetResultInput{UserID: userID})
	if err != nil {
		if errors.Is(err, estimate.ErrResultNotFound) {
			return replyNoResult(), nil
		}
		uc.l.Errorf(ctx, "dialogue.usecase.commandGetResult: %v", err)
		return dialogue.Reply{}, err
	}

	if out.Status != model.EstimationReady {
		return dialogue.Reply{
			Text: out.Summary + "\n\n" + msgResultPending,
			QuickReplies: []dialogue.QuickReply{
				{Label: dialogue.CommandGetResult, Message: dialogue.CommandGetResult},
			},
		}, nil
	}

	return dialogue.Reply{
		Text: out.Text,
		QuickReplies: []dialogue.QuickReply{
			{Label: dialogue.CommandGetShrunk, Message: dialogue.CommandGetShrunk},
			{Label: dialogue.CommandNewCycle, Message: dialogue.CommandNewCycle},
		},
	}, nil
}

func (uc *implUseCase) commandGetShrunk(ctx context.Context, userID string) (dialogue.Reply, error) {
	out, err := uc.estimateUC.GetShrunk(ctx, estimate.GetShrunkInput{UserID: userID})
	if err != nil {
		if errors.Is(err, estimate.ErrResultNotFound) {
			return replyNoResult(), nil
		}
		if errors.Is(err, estimate.ErrResultNotReady) {
			return dialogue.Reply{
				Text: msgShrunkNotReady,
				QuickReplies: []dialogue.QuickReply{
					{Label: dialogue.CommandGetResult, Message: dialogue.CommandGetResult},
				},
			}, nil
		}
		uc.l.Errorf(ctx, "dialogue.usecase.commandGetShrunk: %v", err)
		return dialogue.Reply{}, err
	}

	return dialogue.Reply{
		Text: out.Text,
		QuickReplies: []dialogue.QuickReply{
			{Label: dialogue.CommandNewCycle, Message: dialogue.CommandNewCycle},
		},
	}, nil
}

// commandNewCycle drops all user state and opens a fresh session waiting on
// the first slot.
func (uc *implUseCase) commandNewCycle(ctx context.Context, userID string) (dialogue.Reply, error) {
	if err := uc.repo.Delete(ctx, userID); err != nil {
		uc.l.Errorf(ctx, "dialogue.usecase.commandNewCycle: delete session: %v", err)
		return dialogue.Reply{}, err
	}
	if err := uc.estimateUC.Reset(ctx, userID); err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.commandNewCycle: reset estimate: %v", err)
	}

	sess := model.Session{
		UserID:            userID,
		LastRequestedSlot: model.SlotTopic,
		CreatedAt:         time.Now(),
	}
	if err := uc.repo.Save(ctx, sess); err != nil {
		uc.l.Errorf(ctx, "dialogue.usecase.commandNewCycle: save session: %v", err)
		return dialogue.Reply{}, err
	}

	return dialogue.Reply{
		Text: msgNewCycle + "\n\n" + promptFor(model.SlotTopic),
	}, nil
}

func replyNoResult() dialogue.Reply {
	return dialogue.Reply{
		Text: msgResultNotFound,
		QuickReplies: []dialogue.QuickReply{
			{Label: dialogue.CommandNewCycle, Message: dialogue.CommandNewCycle},
		},
	}
}
