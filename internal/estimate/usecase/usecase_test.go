package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estimate-srv/internal/catalog"
	"estimate-srv/internal/estimate"
	"estimate-srv/internal/estimate/repository/memory"
	"estimate-srv/internal/model"
	"estimate-srv/pkg/log"
)

type fakeGemini struct {
	mu    sync.Mutex
	calls int
	text  string
	err   error
	// block, when non-nil, is closed by the test to release Generate.
	block chan struct{}
}

func (f *fakeGemini) Generate(_ context.Context, prompt, _ string) (string, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.calls++
	err := f.err
	f.mu.Unlock()
	if err != nil {
		return "", err
	}
	if f.text != "" {
		return f.text, nil
	}
	return "견적서\n" + prompt, nil
}

func (f *fakeGemini) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *fakeGemini) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newRequest(userID string, token int64) model.EstimationRequest {
	return model.EstimationRequest{
		ID:          "req-1",
		UserID:      userID,
		Topic:       "쇼핑몰",
		Deliverable: "앱",
		Period:      "2개월",
		Budget:      "1,000,000원",
		Categories:  []string{catalog.CategoryMobileApp},
		Token:       token,
		CreatedAt:   time.Now(),
	}
}

func waitReady(t *testing.T, uc estimate.UseCase, userID string) estimate.ResultOutput {
	t.Helper()
	var out estimate.ResultOutput
	require.Eventually(t, func() bool {
		var err error
		out, err = uc.GetResult(context.Background(), estimate.GetResultInput{UserID: userID})
		return err == nil && out.Status == model.EstimationReady
	}, 2*time.Second, 10*time.Millisecond)
	return out
}

func TestDispatchAndGetResult(t *testing.T) {
	g := &fakeGemini{text: "총 견적: 7,800,000원"}
	uc := New(log.NewNop(), memory.New(), g)

	req := newRequest("user-1", 1)
	uc.Dispatch(context.Background(), req)

	// The pending entry is visible immediately, before generation finishes.
	out, err := uc.GetResult(context.Background(), estimate.GetResultInput{UserID: "user-1"})
	require.NoError(t, err)
	assert.Contains(t, []model.EstimationStatus{model.EstimationPending, model.EstimationReady}, out.Status)
	assert.Contains(t, out.Summary, "쇼핑몰")

	out = waitReady(t, uc, "user-1")
	assert.Equal(t, "총 견적: 7,800,000원", out.Text)
	assert.Equal(t, 1, g.callCount())
}

func TestGetResultNotFound(t *testing.T) {
	uc := New(log.NewNop(), memory.New(), &fakeGemini{})

	_, err := uc.GetResult(context.Background(), estimate.GetResultInput{UserID: "nobody"})
	assert.ErrorIs(t, err, estimate.ErrResultNotFound)

	_, err = uc.GetResult(context.Background(), estimate.GetResultInput{})
	assert.ErrorIs(t, err, estimate.ErrUserRequired)
}

func TestGenerateFailureStillReady(t *testing.T) {
	g := &fakeGemini{err: assert.AnError}
	uc := New(log.NewNop(), memory.New(), g)

	uc.Dispatch(context.Background(), newRequest("user-1", 1))

	out := waitReady(t, uc, "user-1")
	assert.Contains(t, out.Text, "오류")
	assert.Contains(t, out.Text, "총 견적")
}

func TestStaleGenerationDiscarded(t *testing.T) {
	release := make(chan struct{})
	g := &fakeGemini{text: "old text", block: release}
	repo := memory.New()
	uc := New(log.NewNop(), repo, g)

	// First dispatch stalls inside generation.
	uc.Dispatch(context.Background(), newRequest("user-1", 1))

	// Second dispatch overwrites the pending entry with a newer token.
	req2 := newRequest("user-1", 2)
	req2.Topic = "헬스케어"
	uc.Dispatch(context.Background(), req2)

	close(release)

	out := waitReady(t, uc, "user-1")
	assert.Contains(t, out.Summary, "헬스케어")

	// The stale completion with token 1 must not resurface.
	time.Sleep(50 * time.Millisecond)
	stored, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Token)
}

func TestGetShrunkCached(t *testing.T) {
	g := &fakeGemini{text: "견적 텍스트"}
	uc := New(log.NewNop(), memory.New(), g)

	uc.Dispatch(context.Background(), newRequest("user-1", 1))
	waitReady(t, uc, "user-1")
	full := g.callCount()

	out1, err := uc.GetShrunk(context.Background(), estimate.GetShrunkInput{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "견적 텍스트", out1.Text)
	assert.Equal(t, full+1, g.callCount())

	out2, err := uc.GetShrunk(context.Background(), estimate.GetShrunkInput{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, out1.Text, out2.Text)
	assert.Equal(t, full+1, g.callCount(), "shrunk variant is cached after the first request")
}

func TestGetShrunkFailureNotCached(t *testing.T) {
	g := &fakeGemini{text: "견적 텍스트"}
	uc := New(log.NewNop(), memory.New(), g)

	uc.Dispatch(context.Background(), newRequest("user-1", 1))
	waitReady(t, uc, "user-1")

	g.setErr(assert.AnError)
	out, err := uc.GetShrunk(context.Background(), estimate.GetShrunkInput{UserID: "user-1"})
	require.NoError(t, err)
	assert.Contains(t, out.Text, "오류")

	// Once generation works again, the real variant replaces the fallback.
	g.setErr(nil)
	out, err = uc.GetShrunk(context.Background(), estimate.GetShrunkInput{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "견적 텍스트", out.Text)

	calls := g.callCount()
	out, err = uc.GetShrunk(context.Background(), estimate.GetShrunkInput{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "견적 텍스트", out.Text)
	assert.Equal(t, calls, g.callCount())
}

func TestGetShrunkNotReady(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	uc := New(log.NewNop(), memory.New(), &fakeGemini{block: release})

	uc.Dispatch(context.Background(), newRequest("user-1", 1))

	_, err := uc.GetShrunk(context.Background(), estimate.GetShrunkInput{UserID: "user-1"})
	assert.ErrorIs(t, err, estimate.ErrResultNotReady)
}

func TestGetShrunkNotFound(t *testing.T) {
	uc := New(log.NewNop(), memory.New(), &fakeGemini{})

	_, err := uc.GetShrunk(context.Background(), estimate.GetShrunkInput{UserID: "nobody"})
	assert.ErrorIs(t, err, estimate.ErrResultNotFound)
}

func TestReset(t *testing.T) {
	g := &fakeGemini{}
	uc := New(log.NewNop(), memory.New(), g)

	uc.Dispatch(context.Background(), newRequest("user-1", 1))
	waitReady(t, uc, "user-1")

	require.NoError(t, uc.Reset(context.Background(), "user-1"))

	_, err := uc.GetResult(context.Background(), estimate.GetResultInput{UserID: "user-1"})
	assert.ErrorIs(t, err, estimate.ErrResultNotFound)
}

func TestBuildShrunkPromptInstruction(t *testing.T) {
	req := newRequest("user-1", 1)

	// Budget below the cheapest priced stage flips to minimum-scope framing.
	req.Budget = "100,000원"
	_, instruction := buildShrunkPrompt(req)
	assert.Contains(t, instruction, "최소 범위")

	req.Budget = "3,000,000원"
	prompt, instruction := buildShrunkPrompt(req)
	assert.Contains(t, instruction, "축소 견적서")
	assert.Contains(t, prompt, "요청 예산: 3,000,000원")
}

func TestParseBudgetAmount(t *testing.T) {
	assert.Equal(t, int64(5000000), parseBudgetAmount("5,000,000원"))
	assert.Equal(t, int64(100000000), parseBudgetAmount("100,000,000원"))
	assert.Equal(t, int64(0), parseBudgetAmount("넉넉하게"))
	assert.Equal(t, int64(0), parseBudgetAmount(""))
}

func TestFallbackTextIncludesCatalog(t *testing.T) {
	text := fallbackText(newRequest("user-1", 1), assert.AnError)
	assert.True(t, strings.Contains(text, "총 견적:"))
	assert.Contains(t, text, assert.AnError.Error())
}
