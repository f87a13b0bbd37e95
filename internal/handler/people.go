package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/BloggingApp/miiverse-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) peopleGet(c *gin.Context) {
	var input dto.GetPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		h.abortWithXMLError(c, http.StatusBadRequest)
		return
	}

	body, err := h.services.Post.People(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeXML(c, body)
}

func (h *Handler) peopleGetFollowing(c *gin.Context) {
	pidString := strings.TrimSpace(c.Param("pid"))
	pid, err := strconv.ParseUint(pidString, 10, 32)
	if err != nil {
		h.logger.Sugar().Debugf("%s: %q", errInvalidPID.Error(), pidString)
		h.abortWithXMLError(c, http.StatusBadRequest)
		return
	}

	body, err := h.services.People.Following(c.Request.Context(), uint32(pid))
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeXML(c, body)
}
