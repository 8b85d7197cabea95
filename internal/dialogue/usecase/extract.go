package usecase

import (
	"context"
	"strings"

	"estimate-srv/internal/dialogue"
	"estimate-srv/internal/model"
	"estimate-srv/internal/slot"
)

// intentMarkers open a session from a first utterance. Anything else without
// them is treated as off-topic chatter.
var intentMarkers = []string{
	"견적", "프로젝트", "개발", "제작", "만들", "의뢰", "외주", "구축",
	"앱", "어플", "웹", "사이트", "홈페이지", "플랫폼", "챗봇", "대시보드",
	"시스템", "솔루션", "자동화",
}

// hasIntent reports whether the opening turn looks like an estimation
// request. Structured params count as intent on their own.
func hasIntent(utterance string, params map[string]string) bool {
	for _, v := range params {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	folded := strings.ReplaceAll(strings.ToLower(utterance), " ", "")
	for _, marker := range intentMarkers {
		if strings.Contains(folded, marker) {
			return true
		}
	}
	return false
}

// applyParams folds messenger-extracted values into the session. Values run
// through the same normalization gates as free text and win over it.
func (uc *implUseCase) applyParams(sess *model.Session, params map[string]string) bool {
	progressed := false
	for _, kind := range dialogue.SlotOrder {
		raw := strings.TrimSpace(params[string(kind)])
		if raw == "" {
			continue
		}

		var value string
		switch kind {
		case model.SlotPeriod:
			if slot.IsValidPeriod(raw) {
				value = slot.NormalizePeriod(raw)
			}
		case model.SlotBudget:
			value = slot.NormalizeBudget(raw)
		default:
			if slot.IsValidAnswer(raw) {
				value = raw
			}
		}

		if value != "" && value != sess.Slot(kind) {
			sess.SetSlot(kind, value)
			progressed = true
		}
	}
	return progressed
}

// extract pulls a value for one unfilled slot out of the utterance. An empty
// return means the utterance carries nothing usable for that slot.
func (uc *implUseCase) extract(ctx context.Context, sess *model.Session, kind model.SlotKind, utterance string) string {
	if utterance == "" {
		return ""
	}

	switch kind {
	case model.SlotTopic:
		if v := uc.classifier.ExtractTopic(utterance); v != "" {
			return v
		}
		if sess.LastRequestedSlot != model.SlotTopic {
			return ""
		}
		if v := uc.classifier.FuzzyMatch(ctx, utterance, model.SlotTopic); v != "" {
			return v
		}
		// A direct answer to the topic question is accepted verbatim as long
		// as it is a real answer and not clearly meant for another slot.
		if slot.IsValidAnswer(utterance) &&
			!uc.classifier.IsLikelyDeliverable(utterance) &&
			!slot.IsValidPeriod(utterance) &&
			slot.NormalizeBudget(utterance) == "" {
			return utterance
		}
		return ""

	case model.SlotDeliverable:
		if v := uc.classifier.ExtractDeliverables(utterance); v != "" {
			return v
		}
		if sess.LastRequestedSlot == model.SlotDeliverable {
			return uc.classifier.FuzzyMatch(ctx, utterance, model.SlotDeliverable)
		}
		return ""

	case model.SlotPeriod:
		if slot.IsValidPeriod(utterance) {
			return slot.NormalizePeriod(utterance)
		}
		return ""

	case model.SlotBudget:
		if !slot.IsValidAnswer(utterance) {
			return ""
		}
		return slot.NormalizeBudget(utterance)
	}
	return ""
}
