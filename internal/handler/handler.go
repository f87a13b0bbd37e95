package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/miiverse-service/internal/dto"
	"github.com/BloggingApp/miiverse-service/internal/service"
	"github.com/BloggingApp/miiverse-service/internal/xmlresponse"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	PID_KEY        = "pid"
	REQUEST_ID_KEY = "request-id"
)

type Config struct {
	ClientOrigin string
	AccessSecret []byte
}

type Handler struct {
	services *service.Service
	logger   *zap.Logger
	config   Config
}

func New(services *service.Service, logger *zap.Logger, config Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestIDMiddleware)

	if h.config.ClientOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{h.config.ClientOrigin},
			AllowMethods:     []string{"POST", "GET"},
			AllowCredentials: true,
		}))
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1", h.notRequiredAuthMiddleware)
	{
		v1.GET("/endpoint", h.discoveryGet)
		v1.GET("/topics", h.topicsGet)
		v1.GET("/posts.search", h.postsSearch)

		communities := v1.Group("/communities")
		{
			communities.GET("", h.communitiesGet)
			communities.GET("/:communityID", h.communitiesGetByID)
			communities.GET("/:communityID/posts", h.communitiesGetPosts)
		}

		posts := v1.Group("/posts/:postID")
		{
			posts.GET("", h.postsGetByID)
			posts.GET("/replies", h.postsGetReplies)
			posts.POST("/empathies", h.authMiddleware, h.postsEmpathy)
		}

		people := v1.Group("/people")
		{
			people.GET("", h.peopleGet)
			people.GET("/:pid/following", h.peopleGetFollowing)
		}
	}

	return r
}

func (h *Handler) writeXML(c *gin.Context, body string) {
	c.Data(http.StatusOK, dto.ContentTypeXML, []byte(body))
}

func (h *Handler) writeResponse(c *gin.Context, resp dto.XMLResponse) {
	if resp.Body == "" {
		c.Status(resp.Status)
		return
	}

	c.Data(resp.Status, resp.ContentType, []byte(resp.Body))
}

// writeError answers not-found without a body and everything else with the
// generic XML error document.
func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	h.abortWithXMLError(c, http.StatusInternalServerError)
}

func (h *Handler) abortWithXMLError(c *gin.Context, status int) {
	body, err := xmlresponse.Error(status, SERVER_ERROR_CODE, SERVER_ERROR_MESSAGE)
	if err != nil {
		h.logger.Sugar().Errorf("failed to render error response: %s", err.Error())
		c.AbortWithStatus(status)
		return
	}

	c.Data(status, dto.ContentTypeXML, []byte(body))
	c.Abort()
}
