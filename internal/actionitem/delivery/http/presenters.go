package http

import (
	"planboard/internal/actionitem"
	"planboard/internal/model"
	"planboard/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
	ListID  string `json:"listId"  binding:"omitempty,max=64"`
}

func (r createReq) toInput() actionitem.CreateInput {
	return actionitem.CreateInput{
		Content: r.Content,
		ListID:  r.ListID,
	}
}

type listReq struct {
	ListID    string `form:"listId"`
	Category  string `form:"category"`
	Completed string `form:"completed" binding:"omitempty,oneof=true false"`
	Fresh     bool   `form:"fresh"`
}

func (r listReq) toInput() actionitem.ListInput {
	return actionitem.ListInput{
		ListID:        r.ListID,
		Category:      r.Category,
		CompletedOnly: r.Completed == "true",
		PendingOnly:   r.Completed == "false",
		FreshFetch:    r.Fresh,
	}
}

type completeReq struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}

// --- Response DTOs ---

type itemResp struct {
	ID          string             `json:"id"`
	Content     string             `json:"content"`
	IsCompleted bool               `json:"isCompleted"`
	ListID      string             `json:"listId,omitempty"`
	CreatedAt   *response.DateTime `json:"createdAt,omitempty"`
	UpdatedAt   *response.DateTime `json:"updatedAt,omitempty"`
}

func newItemResp(it model.ActionItem) itemResp {
	return itemResp{
		ID:          it.ID,
		Content:     it.Content,
		IsCompleted: it.IsCompleted,
		ListID:      it.ListID,
		CreatedAt:   response.NewDateTime(it.CreatedAt),
		UpdatedAt:   response.NewDateTime(it.UpdatedAt),
	}
}

type listResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out actionitem.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{Items: items, Total: out.Total}
}

type actionListResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
	Ordinal  int    `json:"ordinal"`
	IsParent bool   `json:"isParent"`
}

func newActionListResp(l model.ActionList) actionListResp {
	return actionListResp{
		ID:       l.ID,
		Name:     l.Name,
		ParentID: l.ParentID,
		Ordinal:  l.Ordinal,
		IsParent: l.IsParent(),
	}
}

type listTreeResp struct {
	Lists []actionListResp `json:"lists"`
}

func (h *handler) newListTreeResp(out actionitem.ListTreeOutput) listTreeResp {
	lists := make([]actionListResp, len(out.Lists))
	for i, l := range out.Lists {
		lists[i] = newActionListResp(l)
	}
	return listTreeResp{Lists: lists}
}

type listDetailResp struct {
	List  actionListResp `json:"list"`
	Items []itemResp     `json:"items"`
}

func (h *handler) newListDetailResp(out actionitem.ListDetailOutput) listDetailResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listDetailResp{
		List:  newActionListResp(out.List),
		Items: items,
	}
}
