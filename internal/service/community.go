package service

import (
	"context"
	"errors"
	"time"

	"github.com/BloggingApp/miiverse-service/internal/repository"
	"github.com/BloggingApp/miiverse-service/internal/xmlresponse"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type communityService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	generator *xmlresponse.Generator
	fetcher   xmlresponse.PostFetcher
}

func newCommunityService(logger *zap.Logger, repo *repository.Repository, generator *xmlresponse.Generator, fetcher xmlresponse.PostFetcher) Community {
	return &communityService{
		logger:    logger,
		repo:      repo,
		generator: generator,
		fetcher:   fetcher,
	}
}

func (s *communityService) Topics(ctx context.Context) (body string, err error) {
	defer func(start time.Time) { observe("topics", start, err) }(time.Now())

	communities, err := s.repo.Postgres.Community.FindPopular(ctx, TOPIC_COMMUNITIES_LIMIT)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find popular communities from postgres: %s", err.Error())
		return "", ErrInternal
	}

	body, err = s.generator.Topics(ctx, communities, s.fetcher)
	if err != nil {
		s.logger.Sugar().Errorf("failed to render topics response: %s", err.Error())
		return "", ErrInternal
	}

	return body, nil
}

func (s *communityService) Communities(ctx context.Context, limit int, offset int) (body string, err error) {
	defer func(start time.Time) { observe("communities", start, err) }(time.Now())

	communities, err := s.repo.Postgres.Community.FindAll(ctx, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find communities from postgres: %s", err.Error())
		return "", ErrInternal
	}

	body, err = s.generator.Communities(communities)
	if err != nil {
		s.logger.Sugar().Errorf("failed to render communities response: %s", err.Error())
		return "", ErrInternal
	}

	return body, nil
}

func (s *communityService) Community(ctx context.Context, communityID string) (body string, err error) {
	defer func(start time.Time) { observe("community", start, err) }(time.Now())

	community, err := s.repo.Postgres.Community.FindByID(ctx, communityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}

		s.logger.Sugar().Errorf("failed to find community(%s) from postgres: %s", communityID, err.Error())
		return "", ErrInternal
	}

	body, err = s.generator.Community(community)
	if err != nil {
		s.logger.Sugar().Errorf("failed to render community response: %s", err.Error())
		return "", ErrInternal
	}

	return body, nil
}
