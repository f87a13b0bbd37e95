package handler

import (
	"github.com/gin-gonic/gin"
)

// notRequiredAuthMiddleware stores the caller's pid when a valid token is
// present and lets anonymous requests through.
func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	pid, err := h.pidFromHeader(c)
	if err != nil {
		c.Next()
		return
	}

	c.Set(PID_KEY, pid)

	c.Next()
}
