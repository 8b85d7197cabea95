package usecase

import (
	"fmt"

	"estimate-srv/internal/model"
)

// slotPrompts asks for one unfilled slot.
var slotPrompts = map[model.SlotKind]string{
	model.SlotTopic:       "어떤 주제의 프로젝트를 계획하고 계신가요?\n(예: 쇼핑몰, 헬스케어, 교육)",
	model.SlotDeliverable: "어떤 산출물이 필요하신가요?\n(예: 웹, 앱, 챗봇, 대시보드)",
	model.SlotPeriod:      "예상 기간은 어느 정도인가요?\n(예: 2개월, 3주)",
	model.SlotBudget:      "예산은 어느 정도로 생각하고 계신가요?\n(예: 500만원, 1억)",
}

const (
	msgGreeting = "안녕하세요! IT 프로젝트 견적 상담 챗봇입니다.\n몇 가지 여쭤보고 맞춤 견적을 안내해 드릴게요."

	msgOffTopic = "IT 프로젝트 견적 상담을 도와드리는 챗봇입니다.\n" +
		"프로젝트 견적이 궁금하시면 어떤 서비스를 만들고 싶으신지 말씀해주세요."

	msgRetryPrefix = "죄송해요, 답변을 잘 이해하지 못했어요.\n"

	msgRetryExhausted = "여러 번 답변을 이해하지 못해 상담을 초기화했어요.\n" +
		"처음부터 다시 시작하시려면 아래 버튼을 눌러주세요."

	msgNewCycle = "새 견적 상담을 시작할게요."

	msgDispatchAck = "견적 요청이 접수되었습니다!\n%s\n\n" +
		"분석에는 잠시 시간이 걸려요. 아래 버튼으로 결과를 확인해주세요."

	msgResultPending = "아직 견적을 분석하고 있어요.\n잠시 후 다시 확인해주세요."

	msgResultNotFound = "진행 중인 견적 요청이 없습니다.\n" +
		"새 상담을 시작하시려면 아래 버튼을 눌러주세요."

	msgShrunkNotReady = "전체 견적 분석이 끝난 뒤에 축소 견적을 확인할 수 있어요.\n" +
		"잠시 후 다시 시도해주세요."
)

func promptFor(kind model.SlotKind) string {
	return slotPrompts[kind]
}

func retryPrompt(kind model.SlotKind) string {
	return msgRetryPrefix + slotPrompts[kind]
}

func dispatchAck(summary string) string {
	return fmt.Sprintf(msgDispatchAck, summary)
}
