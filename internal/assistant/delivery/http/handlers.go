package http

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/assistant"
	"planboard/internal/model"
	"planboard/pkg/response"
)

func scopeFrom(c *gin.Context) model.Scope {
	return model.Scope{SessionID: c.GetHeader("X-Session-ID")}
}

// CreateSession godoc
// @Summary     Start an assistant session
// @Description Opens a chat session bound to a business plan, resuming the plan's saved transcript.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body createSessionReq true "Session data"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Plan Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sess, err := h.uc.CreateSession(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(sess))
}

// GetSession godoc
// @Summary     Get an assistant session
// @Description Returns the session transcript, state, and any pending suggestion.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.uc.GetSession(ctx, scopeFrom(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(sess))
}

// SendMessage godoc
// @Summary     Send a chat message
// @Description Sends a user message. An approval reply while a suggestion is pending applies it instead of asking again.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Session ID"
// @Param       body body messageReq true "Message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendMessage(ctx, scopeFrom(c), assistant.SendMessageInput{
		SessionID: c.Param("id"),
		Text:      req.Text,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSendResp(output))
}

// SetFocus godoc
// @Summary     Change the focused field
// @Description Points the session at the section/field the user is editing, so generic suggestions land there.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       id   path string   true "Session ID"
// @Param       body body focusReq true "Focus target"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/sessions/{id}/focus [PUT]
func (h *handler) SetFocus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFocusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sess, err := h.uc.SetFocus(ctx, scopeFrom(c), assistant.FocusInput{
		SessionID: c.Param("id"),
		SectionID: req.SectionID,
		FieldID:   req.FieldID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(sess))
}

// Apply godoc
// @Summary     Apply the pending suggestion
// @Description Writes the pending suggestion into its business-plan field and returns where it landed.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} applyResp
// @Failure     400 {object} response.Resp "No Pending Suggestion"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/sessions/{id}/apply [POST]
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Apply(ctx, scopeFrom(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Apply: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newApplyResp(output))
}

// Dismiss godoc
// @Summary     Dismiss the pending suggestion
// @Description Drops the pending suggestion without writing anything.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/sessions/{id}/dismiss [POST]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.uc.Dismiss(ctx, scopeFrom(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(sess))
}
