package http

import (
	"estimate-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Get estimation result
// @Description Return the cached estimate for a user, pending or ready
// @Tags Estimate
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} resultResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/estimates/{user_id} [get]
func (h *handler) GetResult(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetResultRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "estimate.delivery.http.GetResult: processGetResultRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetResult(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "estimate.delivery.http.GetResult: usecase GetResult failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newResultResp(o))
}

// @Summary Get budget-constrained estimate
// @Description Return the shrunk variant of a completed estimate
// @Tags Estimate
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} shrunkResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/estimates/{user_id}/shrunk [get]
func (h *handler) GetShrunk(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetShrunkRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "estimate.delivery.http.GetShrunk: processGetShrunkRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetShrunk(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "estimate.delivery.http.GetShrunk: usecase GetShrunk failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newShrunkResp(o))
}

// @Summary Reset estimation state
// @Description Drop the cached estimate for a user
// @Tags Estimate
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/estimates/{user_id} [delete]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("user_id")
	if err := h.uc.Reset(ctx, userID); err != nil {
		h.l.Errorf(ctx, "estimate.delivery.http.Reset: usecase Reset failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
