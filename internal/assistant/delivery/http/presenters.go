package http

import (
	"planboard/internal/assistant"
	"planboard/internal/model"
	"planboard/pkg/response"
)

// --- Request DTOs ---

type createSessionReq struct {
	PlanID    string `json:"planId"    binding:"required,max=64"`
	SectionID string `json:"sectionId" binding:"omitempty,max=64"`
	FieldID   string `json:"fieldId"   binding:"omitempty,max=64"`
}

func (r createSessionReq) toInput() assistant.CreateSessionInput {
	return assistant.CreateSessionInput{
		PlanID:         r.PlanID,
		FocusedSection: r.SectionID,
		FocusedField:   r.FieldID,
	}
}

type messageReq struct {
	Text string `json:"text" binding:"required,min=1,max=4000"`
}

type focusReq struct {
	SectionID string `json:"sectionId" binding:"required,max=64"`
	FieldID   string `json:"fieldId"   binding:"omitempty,max=64"`
}

// --- Response DTOs ---

type messageResp struct {
	ID        string             `json:"id"`
	Role      string             `json:"role"`
	Text      string             `json:"text"`
	CreatedAt *response.DateTime `json:"createdAt,omitempty"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:        m.ID,
		Role:      string(m.Role),
		Text:      m.Text,
		CreatedAt: response.NewDateTime(m.CreatedAt),
	}
}

type suggestionResp struct {
	FieldID   string `json:"fieldId"`
	SectionID string `json:"sectionId,omitempty"`
	Content   string `json:"content"`
}

type appliedResp struct {
	SectionID string `json:"sectionId"`
	FieldID   string `json:"fieldId"`
	Content   string `json:"content"`
}

type sessionResp struct {
	ID             string          `json:"id"`
	PlanID         string          `json:"planId"`
	State          string          `json:"state"`
	FocusedSection string          `json:"focusedSection,omitempty"`
	FocusedField   string          `json:"focusedField,omitempty"`
	Messages       []messageResp   `json:"messages"`
	Pending        *suggestionResp `json:"pending,omitempty"`
}

func newSessionResp(sess assistant.Session) sessionResp {
	msgs := make([]messageResp, len(sess.Messages))
	for i, m := range sess.Messages {
		msgs[i] = newMessageResp(m)
	}
	resp := sessionResp{
		ID:             sess.ID,
		PlanID:         sess.PlanID,
		State:          string(sess.State),
		FocusedSection: sess.FocusedSection,
		FocusedField:   sess.FocusedField,
		Messages:       msgs,
	}
	if sess.Pending != nil {
		resp.Pending = &suggestionResp{
			FieldID:   sess.Pending.FieldID,
			SectionID: sess.Pending.SectionID,
			Content:   sess.Pending.Content,
		}
	}
	return resp
}

type sendResp struct {
	Reply   messageResp  `json:"reply"`
	Session sessionResp  `json:"session"`
	Applied *appliedResp `json:"applied,omitempty"`
}

func newSendResp(out assistant.SendMessageOutput) sendResp {
	resp := sendResp{
		Reply:   newMessageResp(out.Reply),
		Session: newSessionResp(out.Session),
	}
	if out.Applied != nil {
		resp.Applied = &appliedResp{
			SectionID: out.Applied.SectionID,
			FieldID:   out.Applied.FieldID,
			Content:   out.Applied.Content,
		}
	}
	return resp
}

type applyResp struct {
	Session sessionResp `json:"session"`
	Applied appliedResp `json:"applied"`
}

func newApplyResp(out assistant.ApplyOutput) applyResp {
	return applyResp{
		Session: newSessionResp(out.Session),
		Applied: appliedResp{
			SectionID: out.Applied.SectionID,
			FieldID:   out.Applied.FieldID,
			Content:   out.Applied.Content,
		},
	}
}
