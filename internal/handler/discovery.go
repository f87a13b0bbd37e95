package handler

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) discoveryGet(c *gin.Context) {
	var pid *uint32
	if value, ok := h.getPIDFromRequest(c); ok {
		pid = &value
	}

	resp, err := h.services.Discovery.Discover(c.Request.Context(), pid)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeResponse(c, resp)
}
