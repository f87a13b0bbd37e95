package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/miiverse-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) topicsGet(c *gin.Context) {
	body, err := h.services.Community.Topics(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeXML(c, body)
}

func (h *Handler) communitiesGet(c *gin.Context) {
	var input dto.GetPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		h.abortWithXMLError(c, http.StatusBadRequest)
		return
	}

	body, err := h.services.Community.Communities(c.Request.Context(), input.Limit, input.Offset)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeXML(c, body)
}

func (h *Handler) communitiesGetByID(c *gin.Context) {
	communityID := strings.TrimSpace(c.Param("communityID"))

	body, err := h.services.Community.Community(c.Request.Context(), communityID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeXML(c, body)
}

func (h *Handler) communitiesGetPosts(c *gin.Context) {
	communityID := strings.TrimSpace(c.Param("communityID"))

	var input dto.GetPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		h.abortWithXMLError(c, http.StatusBadRequest)
		return
	}

	body, err := h.services.Post.CommunityPosts(c.Request.Context(), communityID, input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeXML(c, body)
}
