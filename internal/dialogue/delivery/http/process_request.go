package http

import (
	"github.com/gin-gonic/gin"
)

// processKakaoSkillRequest tolerates malformed payloads: unknown or missing
// fields simply bind to their zero values and the usecase decides what to do.
func (h *handler) processKakaoSkillRequest(c *gin.Context) (kakaoSkillReq, error) {
	var req kakaoSkillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return kakaoSkillReq{}, err
	}
	return req, nil
}

func (h *handler) processTurnRequest(c *gin.Context) (turnReq, error) {
	var req turnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
