package http

import (
	"planboard/internal/category"
	"planboard/internal/model"
)

// --- Response DTOs ---

type categoryResp struct {
	Name           string `json:"name"`
	Count          int    `json:"count"`
	CompletedCount int    `json:"completedCount"`
	IsParent       bool   `json:"isParent"`
	ParentName     string `json:"parentName,omitempty"`
	IsVirtual      bool   `json:"isVirtual"`
	ListID         string `json:"listId,omitempty"`
}

func newCategoryResp(c model.Category) categoryResp {
	return categoryResp{
		Name:           c.Name,
		Count:          c.Count,
		CompletedCount: c.CompletedCount,
		IsParent:       c.IsParent,
		ParentName:     c.ParentName,
		IsVirtual:      c.IsVirtual,
		ListID:         c.ListID,
	}
}

type deriveResp struct {
	Categories []categoryResp `json:"categories"`
	Total      int            `json:"total"`
}

func (h *handler) newDeriveResp(out category.DeriveOutput) deriveResp {
	categories := make([]categoryResp, len(out.Categories))
	for i, c := range out.Categories {
		categories[i] = newCategoryResp(c)
	}
	return deriveResp{
		Categories: categories,
		Total:      len(categories),
	}
}
