package slot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"estimate-srv/internal/embedding"
	"estimate-srv/internal/model"
	"estimate-srv/pkg/log"
)

// fakeEmbedding maps texts to fixed vectors so cosine scores are predictable.
type fakeEmbedding struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedding) vector(text string) []float32 {
	if v, ok := f.vectors[text]; ok {
		return v
	}
	return []float32{0, 1}
}

func (f *fakeEmbedding) Generate(_ context.Context, input embedding.GenerateInput) (embedding.GenerateOutput, error) {
	if f.err != nil {
		return embedding.GenerateOutput{}, f.err
	}
	return embedding.GenerateOutput{Vector: f.vector(input.Text)}, nil
}

func (f *fakeEmbedding) GenerateMany(_ context.Context, input embedding.GenerateManyInput) (embedding.GenerateManyOutput, error) {
	if f.err != nil {
		return embedding.GenerateManyOutput{}, f.err
	}
	out := make([][]float32, len(input.Texts))
	for i, t := range input.Texts {
		out[i] = f.vector(t)
	}
	return embedding.GenerateManyOutput{Vectors: out}, nil
}

func TestIsLikelyDeliverable(t *testing.T) {
	c := New(&fakeEmbedding{}, 0, log.NewNop())

	assert.True(t, c.IsLikelyDeliverable("쇼핑몰 앱 만들고 싶어요"))
	assert.True(t, c.IsLikelyDeliverable("관리자 페이지가 필요해요"), "whitespace folded before matching")
	assert.True(t, c.IsLikelyDeliverable("Dashboard 구축"))
	assert.False(t, c.IsLikelyDeliverable("그냥 상담이요"))
}

func TestIsLikelyTopic(t *testing.T) {
	c := New(&fakeEmbedding{}, 0, log.NewNop())

	assert.True(t, c.IsLikelyTopic("쇼핑몰을 운영하고 있어요"))
	assert.True(t, c.IsLikelyTopic("헬스케어 쪽입니다"))
	assert.False(t, c.IsLikelyTopic("음 글쎄요"))
}

func TestExtractDeliverables(t *testing.T) {
	c := New(&fakeEmbedding{}, 0, log.NewNop())

	// Multi-match: collected, deduplicated, sorted, comma-joined.
	assert.Equal(t, "앱,웹", c.ExtractDeliverables("웹이랑 앱 둘 다요"))
	assert.Equal(t, "앱", c.ExtractDeliverables("앱 앱 앱"))
	assert.Equal(t, "", c.ExtractDeliverables("아직 모르겠어요"))

	got := c.ExtractDeliverables("웹하고 관리자 페이지도 필요해요")
	assert.Equal(t, "관리자페이지,웹", got)
}

func TestExtractTopic(t *testing.T) {
	c := New(&fakeEmbedding{}, 0, log.NewNop())

	assert.Equal(t, "쇼핑몰", c.ExtractTopic("쇼핑몰 앱 만들고 싶어요"))
	assert.Equal(t, "", c.ExtractTopic("멋진 거 만들어 주세요"))
}

func TestFuzzyMatch(t *testing.T) {
	fake := &fakeEmbedding{vectors: map[string][]float32{
		"어풀":  {1, 0},
		"앱":   {0.9, 0.1},
		"플랫폼": {0, 1},
	}}
	c := New(fake, 0.5, log.NewNop())

	got := c.FuzzyMatch(context.Background(), "어풀", model.SlotDeliverable)
	assert.Equal(t, "앱", got)
}

func TestFuzzyMatchBelowThreshold(t *testing.T) {
	fake := &fakeEmbedding{vectors: map[string][]float32{"이상한 입력": {1, 0}}}
	// Vocabulary entries all embed to {0,1}: similarity 0 against the query.
	c := New(fake, 0.5, log.NewNop())

	assert.Equal(t, "", c.FuzzyMatch(context.Background(), "이상한 입력", model.SlotDeliverable))
}

func TestFuzzyMatchEmbeddingFailure(t *testing.T) {
	c := New(&fakeEmbedding{err: errors.New("voyage down")}, 0.5, log.NewNop())

	// Collaborator failure degrades to "no match", never an error.
	assert.Equal(t, "", c.FuzzyMatch(context.Background(), "앱", model.SlotDeliverable))
}

func TestFuzzyMatchUnknownKind(t *testing.T) {
	c := New(&fakeEmbedding{}, 0.5, log.NewNop())
	assert.Equal(t, "", c.FuzzyMatch(context.Background(), "앱", model.SlotBudget))
}
