package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2개월", "2개월"},
		{"3주", "3주"},
		{"2 개월", "2개월"},
		{"2달", "2개월"},
		{"대략 6개월 정도요", "6개월"},
		{"soon", "soon"},
		{"  최대한 빨리  ", "최대한 빨리"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePeriod(tt.in), "input %q", tt.in)
	}
}

func TestIsValidPeriod(t *testing.T) {
	assert.True(t, IsValidPeriod("2개월"))
	assert.True(t, IsValidPeriod("3주"))
	assert.True(t, IsValidPeriod("두 달은 아니고 3달 정도"))

	assert.False(t, IsValidPeriod("soon"))
	assert.False(t, IsValidPeriod("빨리요"))
	assert.False(t, IsValidPeriod("몰라요 3주쯤?"), "refusal marker wins")
	assert.False(t, IsValidPeriod(""))
}

func TestNormalizeBudget(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"500만원", "5,000,000원"},
		{"100만원", "1,000,000원"},
		{"3천원", "3,000원"},
		{"1억", "100,000,000원"},
		{"2조", "2,000,000,000,000원"},
		{"1000원", "1,000원"},
		{"예산은 300만원 정도입니다", "3,000,000원"},
		{"5,000,000원", "5,000,000원"},
		// No explicit unit: ambiguous, rejected.
		{"500", ""},
		{"오백", ""},
		{"모름", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeBudget(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeBudgetIdempotent(t *testing.T) {
	inputs := []string{"500만원", "1억", "3천원", "1234원", "7조"}
	for _, in := range inputs {
		once := NormalizeBudget(in)
		assert.Equal(t, once, NormalizeBudget(once), "input %q", in)
	}
}

func TestIsValidAnswer(t *testing.T) {
	assert.True(t, IsValidAnswer("mobile app"))
	assert.True(t, IsValidAnswer("쇼핑몰 웹사이트"))
	assert.True(t, IsValidAnswer("3주"))

	assert.False(t, IsValidAnswer("no"))
	assert.False(t, IsValidAnswer(""))
	assert.False(t, IsValidAnswer("  "))
	assert.False(t, IsValidAnswer("몰라요"))
	assert.False(t, IsValidAnswer("글쎄요"))
	assert.False(t, IsValidAnswer("아직 안 정했어요"))
	assert.False(t, IsValidAnswer("I don't know"))
	assert.False(t, IsValidAnswer("no idea"))
}
