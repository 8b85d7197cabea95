package usecase

import (
	"fmt"
	"strings"

	"estimate-srv/internal/catalog"
	"estimate-srv/internal/model"
)

const fullSystemInstruction = `당신은 IT 외주 프로젝트 견적 전문가입니다.
아래 단가표를 기준으로 고객의 요구사항에 맞는 상세 견적서를 작성하세요.
반드시 단가표의 단계 구분과 금액을 그대로 사용하고, 다음 형식을 지키세요.

▶ 단계명
- 비용: N원
- 주요 기능:
  · 기능

마지막 줄에는 "총 견적: N원"을 반드시 포함하세요.
단가표에 없는 항목이나 금액을 만들어내지 마세요.`

const shrunkCeilingInstruction = `당신은 IT 외주 프로젝트 견적 전문가입니다.
고객의 예산이 전체 견적보다 적습니다. 단가표에서 필수 단계만 남기고
선택 단계를 제외하여 요청 예산 이내의 축소 견적서를 작성하세요.
단계 구분과 금액은 단가표를 그대로 사용하고, 동일한 형식을 지키세요.
마지막 줄에는 "총 견적: N원"을 반드시 포함하고, 제외한 단계를
한 줄로 안내하세요.`

const shrunkMinimumInstruction = `당신은 IT 외주 프로젝트 견적 전문가입니다.
고객의 예산이 가장 저렴한 단일 단계 비용에도 미치지 못합니다.
단가표에서 실행 가능한 최소 범위의 견적서를 작성하고, 예산으로는
해당 범위까지만 진행 가능함을 정중히 안내하세요. 단계 구분과 금액은
단가표를 그대로 사용하고, 동일한 형식을 지키세요.`

func buildFullPrompt(req model.EstimationRequest) string {
	var b strings.Builder
	b.WriteString("## 고객 요구사항\n")
	b.WriteString(fmt.Sprintf("- 주제: %s\n", req.Topic))
	b.WriteString(fmt.Sprintf("- 산출물: %s\n", req.Deliverable))
	b.WriteString(fmt.Sprintf("- 기간: %s\n", req.Period))
	b.WriteString(fmt.Sprintf("- 예산: %s\n", req.Budget))
	b.WriteString("\n## 단가표\n")
	b.WriteString(catalog.Render(req.Categories, catalog.RenderOptions{}))
	return b.String()
}

// buildShrunkPrompt returns the prompt and system instruction for the
// budget-constrained variant. When the budget cannot cover even the cheapest
// priced stage, the instruction switches to a minimum-viable-scope framing.
func buildShrunkPrompt(req model.EstimationRequest) (string, string) {
	budget := parseBudgetAmount(req.Budget)

	instruction := shrunkCeilingInstruction
	if budget > 0 && budget < catalog.MinStageCost(req.Categories) {
		instruction = shrunkMinimumInstruction
	}

	var b strings.Builder
	b.WriteString("## 고객 요구사항\n")
	b.WriteString(fmt.Sprintf("- 주제: %s\n", req.Topic))
	b.WriteString(fmt.Sprintf("- 산출물: %s\n", req.Deliverable))
	b.WriteString(fmt.Sprintf("- 기간: %s\n", req.Period))
	b.WriteString(fmt.Sprintf("- 예산: %s\n", req.Budget))
	b.WriteString("\n## 단가표\n")
	b.WriteString(catalog.Render(req.Categories, catalog.RenderOptions{
		BudgetCeiling: budget,
		TrimOptional:  true,
	}))
	return b.String(), instruction
}

// parseBudgetAmount extracts the numeric won amount from a normalized budget
// string such as "5,000,000원". It returns zero for free-form budgets that
// never passed normalization.
func parseBudgetAmount(budget string) int64 {
	s := strings.TrimSuffix(strings.TrimSpace(budget), "원")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int64(r-'0')
	}
	return n
}

// fallbackText renders the catalog directly when generation fails, so the
// user still receives a priced answer along with the failure detail.
func fallbackText(req model.EstimationRequest, cause error) string {
	return fmt.Sprintf("죄송합니다, 견적 생성 중 오류가 발생했습니다 (%v).\n기본 단가표로 안내드립니다.\n\n%s",
		cause, catalog.Render(req.Categories, catalog.RenderOptions{}))
}
