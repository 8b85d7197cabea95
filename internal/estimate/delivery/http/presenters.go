package http

import (
	"estimate-srv/internal/estimate"
)

type getResultReq struct {
	UserID string
}

func (r getResultReq) toInput() estimate.GetResultInput {
	return estimate.GetResultInput{
		UserID: r.UserID,
	}
}

type getShrunkReq struct {
	UserID string
}

func (r getShrunkReq) toInput() estimate.GetShrunkInput {
	return estimate.GetShrunkInput{
		UserID: r.UserID,
	}
}

type resultResp struct {
	Status  string `json:"status"`
	Summary string `json:"summary"`
	Text    string `json:"text,omitempty"`
}

func (h *handler) newResultResp(o estimate.ResultOutput) resultResp {
	return resultResp{
		Status:  string(o.Status),
		Summary: o.Summary,
		Text:    o.Text,
	}
}

type shrunkResp struct {
	Summary string `json:"summary"`
	Text    string `json:"text"`
}

func (h *handler) newShrunkResp(o estimate.ShrunkOutput) shrunkResp {
	return shrunkResp{
		Summary: o.Summary,
		Text:    o.Text,
	}
}
