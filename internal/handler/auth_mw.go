package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/miiverse-service/pkg/utils"
	"github.com/gin-gonic/gin"
)

func (h *Handler) pidFromHeader(c *gin.Context) (uint32, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return 0, errNotAuthorized
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if accessToken == "" {
		return 0, errNotAuthorized
	}

	claims, err := utils.DecodeJWT(accessToken, h.config.AccessSecret)
	if err != nil {
		return 0, err
	}

	return utils.PIDFromClaims(claims)
}

func (h *Handler) authMiddleware(c *gin.Context) {
	if _, ok := h.getPIDFromRequest(c); !ok {
		h.abortWithXMLError(c, http.StatusUnauthorized)
		return
	}

	c.Next()
}

func (h *Handler) getPIDFromRequest(c *gin.Context) (uint32, bool) {
	value, exists := c.Get(PID_KEY)
	if !exists {
		return 0, false
	}

	pid, ok := value.(uint32)
	return pid, ok
}
