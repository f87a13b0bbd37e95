package service

import (
	"context"
	"time"

	"github.com/BloggingApp/miiverse-service/internal/config"
	"github.com/BloggingApp/miiverse-service/internal/dto"
	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/BloggingApp/miiverse-service/internal/repository"
	"github.com/BloggingApp/miiverse-service/internal/xmlresponse"
	"go.uber.org/zap"
)

const TOPIC_COMMUNITIES_LIMIT = 10

type Discovery interface {
	Endpoint(ctx context.Context, pid *uint32) (*model.Endpoint, error)
	Discover(ctx context.Context, pid *uint32) (dto.XMLResponse, error)
}

type Post interface {
	xmlresponse.PostFetcher
	SinglePost(ctx context.Context, id string) (string, error)
	Replies(ctx context.Context, id string, req dto.GetPostsRequest) (string, error)
	CommunityPosts(ctx context.Context, communityID string, req dto.GetPostsRequest) (string, error)
	Search(ctx context.Context, query string) (string, error)
	People(ctx context.Context, req dto.GetPostsRequest) (string, error)
	Empathy(ctx context.Context, id string) (string, error)
}

type Community interface {
	Topics(ctx context.Context) (string, error)
	Communities(ctx context.Context, limit int, offset int) (string, error)
	Community(ctx context.Context, communityID string) (string, error)
}

type People interface {
	Following(ctx context.Context, pid uint32) (string, error)
}

type Service struct {
	Discovery
	Post
	Community
	People
}

func New(logger *zap.Logger, repo *repository.Repository, generator *xmlresponse.Generator, cacheConfig config.CacheConfig) *Service {
	posts := newPostService(logger, repo, generator, cacheConfig)

	return &Service{
		Discovery: newDiscoveryService(logger, repo, cacheConfig),
		Post:      posts,
		Community: newCommunityService(logger, repo, generator, posts),
		People:    newPeopleService(logger, repo, generator),
	}
}

func observe(document string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}

	documentsRendered.WithLabelValues(document, status).Inc()
	documentRenderDuration.WithLabelValues(document).Observe(time.Since(start).Seconds())
}
