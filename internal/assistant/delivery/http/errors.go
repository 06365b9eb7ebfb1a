package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"planboard/internal/assistant"
	"planboard/internal/businessplan"
	"planboard/pkg/response"
)

// respondError maps domain errors onto the response envelope. Unknown errors
// become 500 without leaking detail.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrSessionNotFound),
		errors.Is(err, businessplan.ErrPlanNotFound):
		response.NotFound(c, err)
	case errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, assistant.ErrNoPendingSuggest),
		errors.Is(err, assistant.ErrMissingPlanID),
		errors.Is(err, businessplan.ErrMissingSection):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
