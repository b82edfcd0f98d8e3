package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-quick-add/pkg/response"
)

const contentTypeCalendar = "text/calendar; charset=utf-8"

// Parse godoc
// @Summary     Parse quick-add text
// @Description Turns one line of free text into a structured item plus suggestions awaiting confirmation.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quick-add/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Confirm godoc
// @Summary     Confirm a suggestion
// @Description Applies a suggestion to the item and removes it from the pending list.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body confirmReq true "Current item and suggestion"
// @Success     200  {object} confirmResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quick-add/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConfirmReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Confirm(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Confirm: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newConfirmResp(output))
}

// Toggle godoc
// @Summary     Toggle a field
// @Description Flips type, privacy or all-day, cycles priority, or adds/removes a category.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body toggleReq true "Current item and field"
// @Success     200  {object} toggleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quick-add/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Toggle(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// ExportICS godoc
// @Summary     Export items as iCalendar
// @Description Encodes items as VEVENT/VTODO components.
// @Tags        QuickAdd
// @Accept      json
// @Produce     text/calendar
// @Param       body body icsReq true "Items to export"
// @Success     200  {string} string "iCalendar document"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quick-add/ics [POST]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processICSReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.uc.ExportICS(ctx, &buf, req.Items); err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Data(http.StatusOK, contentTypeCalendar, buf.Bytes())
}

// Categories godoc
// @Summary     List categories
// @Description Returns the configured categories the parser matches against.
// @Tags        QuickAdd
// @Produce     json
// @Success     200 {object} categoriesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quick-add/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.uc.Categories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Categories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCategoriesResp(list))
}

// NewSession godoc
// @Summary     Open a compose session
// @Description Starts a session that remembers confirmed suggestions across keystrokes.
// @Tags        QuickAdd
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quick-add/sessions [POST]
func (h *handler) NewSession(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.NewSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.NewSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(s))
}

// SessionParse godoc
// @Summary     Re-parse session text
// @Description Parses the latest text of a session, re-applying confirmed suggestions. Older sequence numbers are rejected.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Session ID"
// @Param       body body sessionParseReq true "Text and sequence number"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Session not found"
// @Failure     409  {object} response.Resp "Stale input"
// @Router      /api/v1/quick-add/sessions/{id}/parse [POST]
func (h *handler) SessionParse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SessionParse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SessionParse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// SessionConfirm godoc
// @Summary     Confirm a suggestion in a session
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Session ID"
// @Param       body body sessionConfirmReq true "Suggestion"
// @Success     200  {object} confirmResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Session not found"
// @Router      /api/v1/quick-add/sessions/{id}/confirm [POST]
func (h *handler) SessionConfirm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionConfirmReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SessionConfirm(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SessionConfirm: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newConfirmResp(output))
}

// SessionToggle godoc
// @Summary     Toggle a field in a session
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Session ID"
// @Param       body body sessionToggleReq true "Field"
// @Success     200  {object} toggleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Session not found"
// @Router      /api/v1/quick-add/sessions/{id}/toggle [POST]
func (h *handler) SessionToggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionToggleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SessionToggle(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SessionToggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}
