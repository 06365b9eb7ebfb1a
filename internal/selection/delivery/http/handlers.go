package http

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/model"
	"planboard/internal/selection"
	"planboard/pkg/response"
)

type selectReq struct {
	Category string `json:"category"`
	ListID   string `json:"listId"`
}

type toggleReq struct {
	Parent string `json:"parent" binding:"required"`
}

type restoreReq struct {
	Query string `json:"query" binding:"required"`
}

type stateResp struct {
	SessionID        string   `json:"sessionId"`
	SelectedCategory string   `json:"selectedCategory"`
	SelectedListID   string   `json:"selectedListId,omitempty"`
	ShowChildren     bool     `json:"showChildren"`
	ExpandedParents  []string `json:"expandedParents"`
	AllItems         bool     `json:"allItems"`
	DeepLink         string   `json:"deepLink"`
}

func newStateResp(out selection.StateOutput) stateResp {
	expanded := out.State.ExpandedParents
	if expanded == nil {
		expanded = []string{}
	}
	return stateResp{
		SessionID:        out.State.SessionID,
		SelectedCategory: out.State.SelectedCategory,
		SelectedListID:   out.State.SelectedListID,
		ShowChildren:     out.State.ShowChildren,
		ExpandedParents:  expanded,
		AllItems:         out.State.IsAllItems(),
		DeepLink:         out.DeepLink,
	}
}

func scopeFrom(c *gin.Context) model.Scope {
	return model.Scope{SessionID: c.Param("sessionId")}
}

// Get godoc
// @Summary     Get selection state
// @Tags        Selection
// @Produce     json
// @Param       sessionId path string true "Session ID"
// @Success     200 {object} stateResp
// @Router      /api/v1/selection/{sessionId} [GET]
func (h *handler) Get(c *gin.Context) {
	out, err := h.uc.Get(c.Request.Context(), scopeFrom(c), c.Param("sessionId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, newStateResp(out))
}

// Select godoc
// @Summary     Select a category
// @Description Selecting a child category forces its parent expanded. An unknown category name is kept; item queries scoped to it return no results.
// @Tags        Selection
// @Accept      json
// @Produce     json
// @Param       sessionId path string    true "Session ID"
// @Param       body      body selectReq true "Selection"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/selection/{sessionId}/select [PUT]
func (h *handler) Select(c *gin.Context) {
	ctx := c.Request.Context()

	var req selectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Select(ctx, scopeFrom(c), selection.SelectInput{
		SessionID: c.Param("sessionId"),
		Category:  req.Category,
		ListID:    req.ListID,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Select: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, newStateResp(out))
}

// ToggleParent godoc
// @Summary     Toggle a parent's expanded flag
// @Tags        Selection
// @Accept      json
// @Produce     json
// @Param       sessionId path string    true "Session ID"
// @Param       body      body toggleReq true "Parent name"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/selection/{sessionId}/expand [PUT]
func (h *handler) ToggleParent(c *gin.Context) {
	ctx := c.Request.Context()

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ToggleParent(ctx, scopeFrom(c), selection.ToggleParentInput{
		SessionID: c.Param("sessionId"),
		Parent:    req.Parent,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleParent: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, newStateResp(out))
}

// Clear godoc
// @Summary     Clear selection ("All Items")
// @Tags        Selection
// @Produce     json
// @Param       sessionId path string true "Session ID"
// @Success     200 {object} stateResp
// @Router      /api/v1/selection/{sessionId} [DELETE]
func (h *handler) Clear(c *gin.Context) {
	out, err := h.uc.Clear(c.Request.Context(), scopeFrom(c), c.Param("sessionId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, newStateResp(out))
}

// Restore godoc
// @Summary     Restore selection from a deep link
// @Tags        Selection
// @Accept      json
// @Produce     json
// @Param       sessionId path string     true "Session ID"
// @Param       body      body restoreReq true "Deep link query string"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/selection/{sessionId}/restore [PUT]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	var req restoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Restore(ctx, scopeFrom(c), c.Param("sessionId"), req.Query)
	if err != nil {
		h.l.Errorf(ctx, "uc.Restore: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, newStateResp(out))
}
