package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estimate-srv/internal/dialogue"
	"estimate-srv/internal/middleware"
	"estimate-srv/pkg/log"
)

type stubUseCase struct {
	lastInput dialogue.TurnInput
	reply     dialogue.Reply
}

func (s *stubUseCase) HandleTurn(_ context.Context, input dialogue.TurnInput) (dialogue.Reply, error) {
	s.lastInput = input
	return s.reply, nil
}

func newTestRouter(uc dialogue.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc, nil)
	h.RegisterRoutes(r.Group(""), middleware.New(log.NewNop()))
	return r
}

func TestKakaoSkillWebhook(t *testing.T) {
	stub := &stubUseCase{reply: dialogue.Reply{
		Text: "예상 기간은 어느 정도인가요?",
		QuickReplies: []dialogue.QuickReply{
			{Label: "새 견적 요청", Message: "새 견적 요청"},
		},
	}}
	r := newTestRouter(stub)

	body := `{
		"userRequest": {
			"utterance": "쇼핑몰 앱이요",
			"user": {"id": "kakao-user-1"}
		},
		"action": {
			"params": {"period": "2개월", "ignored": 42}
		}
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/kakao", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "kakao-user-1", stub.lastInput.UserID)
	assert.Equal(t, "쇼핑몰 앱이요", stub.lastInput.Utterance)
	assert.Equal(t, "2개월", stub.lastInput.Params["period"])
	// Non-string params are dropped, not coerced.
	_, ok := stub.lastInput.Params["ignored"]
	assert.False(t, ok)

	var resp kakaoSkillResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2.0", resp.Version)
	require.Len(t, resp.Template.Outputs, 1)
	assert.Equal(t, "예상 기간은 어느 정도인가요?", resp.Template.Outputs[0].SimpleText.Text)
	require.Len(t, resp.Template.QuickReplies, 1)
	assert.Equal(t, "message", resp.Template.QuickReplies[0].Action)
	assert.Equal(t, "새 견적 요청", resp.Template.QuickReplies[0].MessageText)
}

func TestKakaoSkillWebhookEmptyPayload(t *testing.T) {
	stub := &stubUseCase{reply: dialogue.Reply{Text: "안내"}}
	r := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/kakao", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Missing fields bind to their zero values; the webhook still answers.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, stub.lastInput.UserID)
	assert.Empty(t, stub.lastInput.Utterance)
}

func TestTurnEndpoint(t *testing.T) {
	stub := &stubUseCase{reply: dialogue.Reply{Text: "다음 질문"}}
	r := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/turns",
		bytes.NewBufferString(`{"user_id": "u1", "utterance": "견적 문의"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		ErrorCode int      `json:"error_code"`
		Data      turnResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 0, envelope.ErrorCode)
	assert.Equal(t, "다음 질문", envelope.Data.Text)
}

func TestTurnEndpointMissingUser(t *testing.T) {
	stub := &stubUseCase{}
	r := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/turns",
		bytes.NewBufferString(`{"utterance": "견적 문의"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// user_id is a required binding on the REST surface.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
