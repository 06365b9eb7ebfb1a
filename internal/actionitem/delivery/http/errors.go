package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"planboard/internal/actionitem"
	"planboard/pkg/response"
)

// respondError maps domain errors onto the response envelope. Unknown errors
// become 500 without leaking detail.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, actionitem.ErrItemNotFound),
		errors.Is(err, actionitem.ErrListNotFound):
		response.NotFound(c, err)
	case errors.Is(err, actionitem.ErrEmptyContent):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
