package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	c, ok := Get(CategoryPlatform)
	require.True(t, ok)
	assert.Equal(t, CategoryPlatform, c.ID)
	assert.NotEmpty(t, c.Stages)

	_, ok = Get("없는_카테고리")
	assert.False(t, ok)
}

func TestTotalCost(t *testing.T) {
	assert.Equal(t, int64(9000000), TotalCost([]string{CategoryPlatform}))
	assert.Equal(t, int64(0), TotalCost([]string{"unknown"}))

	// Two categories sum independently.
	both := TotalCost([]string{CategoryPlatform, CategoryVisualization})
	assert.Equal(t, TotalCost([]string{CategoryPlatform})+TotalCost([]string{CategoryVisualization}), both)
}

func TestMinStageCost(t *testing.T) {
	// Zero-cost handover stages must not win.
	assert.Equal(t, int64(400000), MinStageCost([]string{CategoryVisualization}))
	assert.Equal(t, int64(1000000), MinStageCost([]string{CategoryPlatform}))
	assert.Equal(t, int64(0), MinStageCost([]string{"unknown"}))
}

func TestRender(t *testing.T) {
	out := Render([]string{CategoryVisualization}, RenderOptions{})

	assert.Contains(t, out, "[시각화 대시보드 서비스 상세 견적]")
	assert.Contains(t, out, "▶ 기획 요구사항 정의")
	assert.Contains(t, out, "- 비용: 400,000원")
	assert.Contains(t, out, "총 견적: 4,200,000원")
	// Zero-cost stage included by default.
	assert.Contains(t, out, "관리자 교육 전달")
}

func TestRenderTrimOptional(t *testing.T) {
	out := Render([]string{CategoryVisualization}, RenderOptions{TrimOptional: true})

	assert.NotContains(t, out, "관리자 교육 전달")
	// Total unchanged: trimmed stages cost nothing.
	assert.Contains(t, out, "총 견적: 4,200,000원")
}

func TestRenderBudgetCeiling(t *testing.T) {
	out := Render([]string{CategoryPlatform}, RenderOptions{BudgetCeiling: 5000000})
	assert.Contains(t, out, "요청 예산: 5,000,000원")

	out = Render([]string{CategoryPlatform}, RenderOptions{})
	assert.NotContains(t, out, "요청 예산")
}

func TestRenderSkipsUnknownIDs(t *testing.T) {
	out := Render([]string{"unknown", CategoryChatbot}, RenderOptions{})
	require.Equal(t, 1, strings.Count(out, "서비스 상세 견적"))
	assert.Contains(t, out, "AI 챗봇")
}
