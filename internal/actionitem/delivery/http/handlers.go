package http

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/model"
	"planboard/pkg/response"
)

func scopeFrom(c *gin.Context) model.Scope {
	return model.Scope{SessionID: c.GetHeader("X-Session-ID")}
}

// Create godoc
// @Summary     Create an action item
// @Description Creates a new action item. A leading [Label] or {Label} in content becomes a virtual category.
// @Tags        ActionItem
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/action-items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// List godoc
// @Summary     List action items
// @Description Lists action items scoped by list, category name, or completion state.
// @Tags        ActionItem
// @Accept      json
// @Produce     json
// @Param       listId    query string false "Scope to a list"
// @Param       category  query string false "Scope to a derived category name"
// @Param       completed query string false "true or false"
// @Param       fresh     query bool   false "Bypass upstream caches"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/action-items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// SetCompleted godoc
// @Summary     Set item completion
// @Description Marks an action item completed or pending.
// @Tags        ActionItem
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Item ID"
// @Param       body body completeReq true "Completion flag"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/action-items/{id}/complete [PUT]
func (h *handler) SetCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetCompleted(ctx, scopeFrom(c), c.Param("id"), *req.IsCompleted)
	if err != nil {
		h.l.Errorf(ctx, "uc.SetCompleted: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an action item
// @Tags        ActionItem
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/action-items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, scopeFrom(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListTree godoc
// @Summary     List action lists
// @Description Returns all lists ordered for two-level tree rendering.
// @Tags        ActionList
// @Produce     json
// @Success     200 {object} listTreeResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/action-item-lists [GET]
func (h *handler) ListTree(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTree(ctx, scopeFrom(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTree: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListTreeResp(output))
}

// ListDetail godoc
// @Summary     Get one action list
// @Description Returns a single list and its items.
// @Tags        ActionList
// @Produce     json
// @Param       id path string true "List ID"
// @Success     200 {object} listDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/action-item-lists/{id} [GET]
func (h *handler) ListDetail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListDetail(ctx, scopeFrom(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListDetail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListDetailResp(output))
}
