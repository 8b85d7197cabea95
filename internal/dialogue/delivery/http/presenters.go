package http

import (
	"estimate-srv/internal/dialogue"
)

// kakaoSkillReq is the Kakao skill server v2 webhook payload. Only the fields
// the dialogue needs are bound; anything missing degrades to empty.
type kakaoSkillReq struct {
	UserRequest struct {
		Utterance string `json:"utterance"`
		User      struct {
			ID string `json:"id"`
		} `json:"user"`
	} `json:"userRequest"`
	Action struct {
		Params map[string]any `json:"params"`
	} `json:"action"`
}

func (r kakaoSkillReq) toInput() dialogue.TurnInput {
	params := make(map[string]string, len(r.Action.Params))
	for k, v := range r.Action.Params {
		if s, ok := v.(string); ok {
			params[k] = s
		}
	}
	return dialogue.TurnInput{
		UserID:    r.UserRequest.User.ID,
		Utterance: r.UserRequest.Utterance,
		Params:    params,
	}
}

// Kakao skill server v2 response shapes.
type kakaoSkillResp struct {
	Version  string        `json:"version"`
	Template kakaoTemplate `json:"template"`
}

type kakaoTemplate struct {
	Outputs      []kakaoOutput     `json:"outputs"`
	QuickReplies []kakaoQuickReply `json:"quickReplies,omitempty"`
}

type kakaoOutput struct {
	SimpleText kakaoSimpleText `json:"simpleText"`
}

type kakaoSimpleText struct {
	Text string `json:"text"`
}

type kakaoQuickReply struct {
	Label       string `json:"label"`
	Action      string `json:"action"`
	MessageText string `json:"messageText"`
}

func (h *handler) newKakaoResp(reply dialogue.Reply) kakaoSkillResp {
	resp := kakaoSkillResp{
		Version: "2.0",
		Template: kakaoTemplate{
			Outputs: []kakaoOutput{
				{SimpleText: kakaoSimpleText{Text: reply.Text}},
			},
		},
	}
	for _, qr := range reply.QuickReplies {
		resp.Template.QuickReplies = append(resp.Template.QuickReplies, kakaoQuickReply{
			Label:       qr.Label,
			Action:      "message",
			MessageText: qr.Message,
		})
	}
	return resp
}

type turnReq struct {
	UserID    string            `json:"user_id" binding:"required"`
	Utterance string            `json:"utterance"`
	Params    map[string]string `json:"params,omitempty"`
}

func (r turnReq) toInput() dialogue.TurnInput {
	return dialogue.TurnInput{
		UserID:    r.UserID,
		Utterance: r.Utterance,
		Params:    r.Params,
	}
}

type quickReplyResp struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

type turnResp struct {
	Text         string           `json:"text"`
	QuickReplies []quickReplyResp `json:"quick_replies,omitempty"`
}

func (h *handler) newTurnResp(reply dialogue.Reply) turnResp {
	resp := turnResp{Text: reply.Text}
	for _, qr := range reply.QuickReplies {
		resp.QuickReplies = append(resp.QuickReplies, quickReplyResp{
			Label:   qr.Label,
			Message: qr.Message,
		})
	}
	return resp
}
