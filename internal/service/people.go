package service

import (
	"context"
	"time"

	"github.com/BloggingApp/miiverse-service/internal/repository"
	"github.com/BloggingApp/miiverse-service/internal/xmlresponse"
	"go.uber.org/zap"
)

type peopleService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	generator *xmlresponse.Generator
}

func newPeopleService(logger *zap.Logger, repo *repository.Repository, generator *xmlresponse.Generator) People {
	return &peopleService{
		logger:    logger,
		repo:      repo,
		generator: generator,
	}
}

func (s *peopleService) Following(ctx context.Context, pid uint32) (body string, err error) {
	defer func(start time.Time) { observe("user_infos", start, err) }(time.Now())

	people, err := s.repo.Postgres.Settings.FindFollowing(ctx, pid)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%d) following from postgres: %s", pid, err.Error())
		return "", ErrInternal
	}

	body, err = s.generator.Following(people)
	if err != nil {
		s.logger.Sugar().Errorf("failed to render user_infos response: %s", err.Error())
		return "", ErrInternal
	}

	return body, nil
}
