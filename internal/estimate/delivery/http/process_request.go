package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processGetResultRequest(c *gin.Context) (getResultReq, error) {
	req := getResultReq{
		UserID: c.Param("user_id"),
	}
	return req, nil
}

func (h *handler) processGetShrunkRequest(c *gin.Context) (getShrunkReq, error) {
	req := getShrunkReq{
		UserID: c.Param("user_id"),
	}
	return req, nil
}
