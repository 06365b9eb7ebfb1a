package http

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/category"
	"planboard/internal/model"
	"planboard/pkg/response"
)

// Derive godoc
// @Summary     Derive the category set
// @Description Rebuilds sidebar categories from action items and lists. Real lists shadow virtual (bracket-derived) categories of the same name.
// @Tags        Category
// @Accept      json
// @Produce     json
// @Param       fresh query bool false "Bypass upstream caches"
// @Success     200 {object} deriveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [GET]
func (h *handler) Derive(c *gin.Context) {
	ctx := c.Request.Context()

	sc := model.Scope{SessionID: c.GetHeader("X-Session-ID")}
	fresh := c.Query("fresh") == "true"

	output, err := h.uc.Derive(ctx, sc, category.DeriveInput{FreshFetch: fresh})
	if err != nil {
		h.l.Errorf(ctx, "uc.Derive: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newDeriveResp(output))
}
