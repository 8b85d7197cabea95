package dialogue

import "estimate-srv/internal/model"

// Commands are matched against the leading part of an utterance, so messenger
// buttons can append an argument after a colon.
const (
	CommandGetResult = "견적 결과 확인"
	CommandGetShrunk = "축소 견적 확인"
	CommandNewCycle  = "새 견적 요청"
)

// SlotOrder is the fixed order in which unfilled slots are prompted.
var SlotOrder = []model.SlotKind{
	model.SlotTopic,
	model.SlotDeliverable,
	model.SlotPeriod,
	model.SlotBudget,
}

// TurnInput is one inbound utterance. Params carries structured values the
// messenger extracted on its side; they take precedence over the utterance.
type TurnInput struct {
	UserID    string
	Utterance string
	Params    map[string]string
}

// QuickReply is a suggested next message rendered as a button.
type QuickReply struct {
	Label   string
	Message string
}

// Reply is the outbound message for one turn.
type Reply struct {
	Text         string
	QuickReplies []QuickReply
}
