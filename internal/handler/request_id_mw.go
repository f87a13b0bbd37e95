package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const REQUEST_ID_HEADER = "X-Request-ID"

func (h *Handler) requestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(REQUEST_ID_HEADER)
	if _, err := uuid.Parse(requestID); err != nil {
		requestID = uuid.NewString()
	}

	c.Set(REQUEST_ID_KEY, requestID)
	c.Header(REQUEST_ID_HEADER, requestID)

	start := time.Now()
	c.Next()

	h.logger.Info("request",
		zap.String("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("duration", time.Since(start)),
	)
}
