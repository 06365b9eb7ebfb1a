package http

import (
	"planboard/internal/businessplan"
	"planboard/internal/model"
)

// --- Request DTOs ---

type updateReq struct {
	ID     string `json:"-"`
	Title  string `json:"title"  binding:"omitempty,min=1,max=255"`
	Status string `json:"status" binding:"omitempty,oneof=draft active archived"`
}

func (r updateReq) toInput() businessplan.UpdateInput {
	return businessplan.UpdateInput{
		ID:     r.ID,
		Title:  r.Title,
		Status: r.Status,
	}
}

type saveSectionReq struct {
	PlanID    string         `json:"-"`
	SectionID string         `json:"-"`
	Content   map[string]any `json:"content" binding:"required"`
}

func (r saveSectionReq) toInput() businessplan.SaveSectionInput {
	return businessplan.SaveSectionInput{
		PlanID:    r.PlanID,
		SectionID: r.SectionID,
		Content:   model.SectionContent(r.Content),
	}
}

// --- Response DTOs ---

type planResp struct {
	ID      string                    `json:"id"`
	Title   string                    `json:"title"`
	Status  string                    `json:"status"`
	Content map[string]map[string]any `json:"content"`
}

func newPlanResp(p model.BusinessPlan) planResp {
	content := make(map[string]map[string]any, len(p.Content))
	for sectionID, fields := range p.Content {
		content[sectionID] = map[string]any(fields)
	}
	return planResp{
		ID:      p.ID,
		Title:   p.Title,
		Status:  p.Status,
		Content: content,
	}
}
