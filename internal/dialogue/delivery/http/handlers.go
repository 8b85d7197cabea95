package http

import (
	"net/http"

	"estimate-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Kakao skill webhook
// @Description Process one chatbot turn and answer in the Kakao skill v2 format
// @Tags Dialogue
// @Accept json
// @Produce json
// @Param body body kakaoSkillReq true "Kakao skill payload"
// @Success 200 {object} kakaoSkillResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /webhook/kakao [post]
func (h *handler) KakaoSkill(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processKakaoSkillRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.http.KakaoSkill: processKakaoSkillRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	reply, err := h.uc.HandleTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.http.KakaoSkill: usecase HandleTurn failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// Kakao expects its own envelope, not the service one.
	c.JSON(http.StatusOK, h.newKakaoResp(reply))
}

// @Summary Process a dialogue turn
// @Description Send one utterance and receive the next reply
// @Tags Dialogue
// @Accept json
// @Produce json
// @Param body body turnReq true "Turn request"
// @Success 200 {object} turnResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/turns [post]
func (h *handler) Turn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTurnRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.http.Turn: processTurnRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	reply, err := h.uc.HandleTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.http.Turn: usecase HandleTurn failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newTurnResp(reply))
}
