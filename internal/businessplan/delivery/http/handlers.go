package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"planboard/internal/businessplan"
	"planboard/internal/model"
	"planboard/pkg/response"
)

func scopeFrom(c *gin.Context) model.Scope {
	return model.Scope{SessionID: c.GetHeader("X-Session-ID")}
}

func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, businessplan.ErrPlanNotFound):
		response.NotFound(c, err)
	case errors.Is(err, businessplan.ErrMissingSection),
		errors.Is(err, businessplan.ErrMissingField):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

// Detail godoc
// @Summary     Get a business plan
// @Tags        BusinessPlan
// @Produce     json
// @Param       id path string true "Plan ID"
// @Success     200 {object} planResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/business-plans/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, scopeFrom(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newPlanResp(output.Plan))
}

// Update godoc
// @Summary     Update plan metadata
// @Description Updates title and status. Plan content is saved per section.
// @Tags        BusinessPlan
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Plan ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/business-plans/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	req.ID = c.Param("id")

	output, err := h.uc.Update(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newPlanResp(output.Plan))
}

// SaveSection godoc
// @Summary     Save one plan section
// @Description Replaces a single section of the plan content. Last write wins.
// @Tags        BusinessPlan
// @Accept      json
// @Produce     json
// @Param       id        path string         true "Plan ID"
// @Param       sectionId path string         true "Section ID"
// @Param       body      body saveSectionReq true "Section content"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/business-plans/{id}/sections/{sectionId} [PUT]
func (h *handler) SaveSection(c *gin.Context) {
	ctx := c.Request.Context()

	var req saveSectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	req.PlanID = c.Param("id")
	req.SectionID = c.Param("sectionId")

	if err := h.uc.SaveSection(ctx, scopeFrom(c), req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.SaveSection: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
