package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateSessionReq binds and validates the create session body.
func (h *handler) processCreateSessionReq(c *gin.Context) (createSessionReq, error) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processMessageReq binds and validates the chat message body.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFocusReq binds and validates the focus change body.
func (h *handler) processFocusReq(c *gin.Context) (focusReq, error) {
	var req focusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
