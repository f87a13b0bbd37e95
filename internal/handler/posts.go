package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/miiverse-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsGetByID(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	body, err := h.services.Post.SinglePost(c.Request.Context(), postID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeXML(c, body)
}

func (h *Handler) postsGetReplies(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	var input dto.GetPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		h.abortWithXMLError(c, http.StatusBadRequest)
		return
	}

	body, err := h.services.Post.Replies(c.Request.Context(), postID, input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeXML(c, body)
}

func (h *Handler) postsSearch(c *gin.Context) {
	var input dto.SearchPostsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		h.abortWithXMLError(c, http.StatusBadRequest)
		return
	}

	body, err := h.services.Post.Search(c.Request.Context(), strings.TrimSpace(input.Query))
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeXML(c, body)
}

func (h *Handler) postsEmpathy(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	body, err := h.services.Post.Empathy(c.Request.Context(), postID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.writeXML(c, body)
}
