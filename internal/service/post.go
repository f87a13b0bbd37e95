package service

import (
	"context"
	"errors"
	"time"

	"github.com/BloggingApp/miiverse-service/internal/config"
	"github.com/BloggingApp/miiverse-service/internal/dto"
	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/BloggingApp/miiverse-service/internal/repository"
	"github.com/BloggingApp/miiverse-service/internal/repository/redisrepo"
	"github.com/BloggingApp/miiverse-service/internal/xmlresponse"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const PEOPLE_REQUEST_NAME = "people"

type postService struct {
	logger      *zap.Logger
	repo        *repository.Repository
	generator   *xmlresponse.Generator
	cacheConfig config.CacheConfig
}

func newPostService(logger *zap.Logger, repo *repository.Repository, generator *xmlresponse.Generator, cacheConfig config.CacheConfig) Post {
	return &postService{
		logger:      logger,
		repo:        repo,
		generator:   generator,
		cacheConfig: cacheConfig,
	}
}

func optionsFromRequest(name string, req dto.GetPostsRequest) xmlresponse.Options {
	return xmlresponse.Options{
		WithMii:  req.WithMii,
		AppData:  req.AppData,
		TopicTag: req.TopicTag,
		Name:     name,
	}
}

func (s *postService) FetchRecentPosts(ctx context.Context, titleID string, limit int) ([]*model.Post, error) {
	key := redisrepo.TitlePostsKey(titleID, limit)

	cachedPosts, err := redisrepo.GetMany[model.Post](s.repo.Redis.Default, ctx, key)
	if err == nil {
		return cachedPosts, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get title(%s) posts from redis: %s", titleID, err.Error())
	}

	posts, err := s.repo.Postgres.Post.FindRecentByTitleID(ctx, titleID, limit)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Sugar().Errorf("failed to find title(%s) posts from postgres: %s", titleID, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, key, posts, s.cacheConfig.PostsTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set title(%s) posts in redis: %s", titleID, err.Error())
	}

	return posts, nil
}

func (s *postService) findByID(ctx context.Context, id string) (*model.Post, error) {
	cachedPost, err := redisrepo.Get[model.Post](s.repo.Redis.Default, ctx, redisrepo.PostKey(id))
	if err == nil {
		if cachedPost == nil {
			return nil, ErrNotFound
		}
		return cachedPost, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%s) from redis: %s", id, err.Error())
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Sugar().Errorf("failed to find post(%s) from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostKey(id), post, s.cacheConfig.PostsTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%s) in redis: %s", id, err.Error())
	}

	if post == nil {
		return nil, ErrNotFound
	}

	return post, nil
}

func (s *postService) render(document string, body string, err error) (string, error) {
	if err != nil {
		s.logger.Sugar().Errorf("failed to render %s response: %s", document, err.Error())
		return "", ErrInternal
	}

	return body, nil
}

func (s *postService) SinglePost(ctx context.Context, id string) (body string, err error) {
	defer func(start time.Time) { observe("post", start, err) }(time.Now())

	post, err := s.findByID(ctx, id)
	if err != nil {
		return "", err
	}

	body, err = s.generator.SinglePost(post)
	return s.render("post", body, err)
}

func (s *postService) Replies(ctx context.Context, id string, req dto.GetPostsRequest) (body string, err error) {
	defer func(start time.Time) { observe("replies", start, err) }(time.Now())

	if _, err := s.findByID(ctx, id); err != nil {
		return "", err
	}

	replies, err := s.repo.Postgres.Post.FindReplies(ctx, id, req.Limit, req.Offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%s) replies from postgres: %s", id, err.Error())
		return "", ErrInternal
	}

	body, err = s.generator.Replies(replies, optionsFromRequest("replies", req))
	return s.render("replies", body, err)
}

func (s *postService) CommunityPosts(ctx context.Context, communityID string, req dto.GetPostsRequest) (body string, err error) {
	defer func(start time.Time) { observe("posts", start, err) }(time.Now())

	community, err := s.repo.Postgres.Community.FindByID(ctx, communityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}

		s.logger.Sugar().Errorf("failed to find community(%s) from postgres: %s", communityID, err.Error())
		return "", ErrInternal
	}

	posts, err := s.repo.Postgres.Post.FindByCommunity(ctx, communityID, req.Limit, req.Offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find community(%s) posts from postgres: %s", communityID, err.Error())
		return "", ErrInternal
	}

	body, err = s.generator.Posts(posts, community, optionsFromRequest("posts", req))
	return s.render("posts", body, err)
}

func (s *postService) Search(ctx context.Context, query string) (body string, err error) {
	defer func(start time.Time) { observe("posts.search", start, err) }(time.Now())

	post, err := s.repo.Postgres.Post.Search(ctx, query)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}

		s.logger.Sugar().Errorf("failed to search posts(%q) from postgres: %s", query, err.Error())
		return "", ErrInternal
	}

	body, err = s.generator.Query(post)
	return s.render("posts.search", body, err)
}

func (s *postService) People(ctx context.Context, req dto.GetPostsRequest) (body string, err error) {
	defer func(start time.Time) { observe("people", start, err) }(time.Now())

	posts, err := s.repo.Postgres.Post.FindRecent(ctx, req.Limit, req.Offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find recent posts from postgres: %s", err.Error())
		return "", ErrInternal
	}

	body, err = s.generator.People(posts, optionsFromRequest(PEOPLE_REQUEST_NAME, req))
	return s.render("people", body, err)
}

func (s *postService) Empathy(ctx context.Context, id string) (body string, err error) {
	defer func(start time.Time) { observe("empty", start, err) }(time.Now())

	if err := s.repo.Postgres.Post.IncrEmpathy(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}

		s.logger.Sugar().Errorf("failed to increment post(%s) empathy: %s", id, err.Error())
		return "", ErrInternal
	}

	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostKey(id)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s) from redis: %s", id, err.Error())
	}

	body, err = s.generator.Empty()
	return s.render("empty", body, err)
}
