package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-quick-add/pkg/response"
)

var errMissingSessionID = response.NewHTTPError(http.StatusBadRequest, "session id is required")

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processConfirmReq(c *gin.Context) (confirmReq, error) {
	var req confirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processICSReq(c *gin.Context) (icsReq, error) {
	var req icsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSessionParseReq binds the body and the session id URI param.
func (h *handler) processSessionParseReq(c *gin.Context) (sessionParseReq, error) {
	var req sessionParseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingSessionID
	}
	return req, req.validate()
}

func (h *handler) processSessionConfirmReq(c *gin.Context) (sessionConfirmReq, error) {
	var req sessionConfirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingSessionID
	}
	return req, nil
}

func (h *handler) processSessionToggleReq(c *gin.Context) (sessionToggleReq, error) {
	var req sessionToggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingSessionID
	}
	return req, nil
}
