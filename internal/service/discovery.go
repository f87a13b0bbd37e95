package service

import (
	"context"
	"errors"

	"github.com/BloggingApp/miiverse-service/internal/config"
	"github.com/BloggingApp/miiverse-service/internal/discovery"
	"github.com/BloggingApp/miiverse-service/internal/dto"
	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/BloggingApp/miiverse-service/internal/repository"
	"github.com/BloggingApp/miiverse-service/internal/repository/redisrepo"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type discoveryService struct {
	logger      *zap.Logger
	repo        *repository.Repository
	cacheConfig config.CacheConfig
}

func newDiscoveryService(logger *zap.Logger, repo *repository.Repository, cacheConfig config.CacheConfig) Discovery {
	return &discoveryService{
		logger:      logger,
		repo:        repo,
		cacheConfig: cacheConfig,
	}
}

// accessLevel falls back to prod for anonymous callers and whenever the
// identity cannot be resolved.
func (s *discoveryService) accessLevel(ctx context.Context, pid *uint32) string {
	if pid == nil {
		return model.AccessLevelProd
	}

	pnid, err := s.repo.Postgres.PNID.FindByPID(ctx, *pid)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Sugar().Errorf("failed to find pnid(%d) from postgres: %s", *pid, err.Error())
		}
		return model.AccessLevelProd
	}

	if pnid.ServerAccessLevel == "" {
		return model.AccessLevelProd
	}

	return pnid.ServerAccessLevel
}

// Endpoint returns (nil, nil) when no record exists for the caller's environment.
func (s *discoveryService) Endpoint(ctx context.Context, pid *uint32) (*model.Endpoint, error) {
	level := s.accessLevel(ctx, pid)
	key := redisrepo.EndpointKey(level)

	cachedEndpoint, err := redisrepo.Get[model.Endpoint](s.repo.Redis.Default, ctx, key)
	if err == nil {
		return cachedEndpoint, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get endpoint(%s) from redis: %s", level, err.Error())
	}

	endpoint, err := s.repo.Postgres.Endpoint.FindByAccessLevel(ctx, level)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Sugar().Errorf("failed to find endpoint(%s) from postgres: %s", level, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, key, endpoint, s.cacheConfig.EndpointTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set endpoint(%s) in redis: %s", level, err.Error())
	}

	return endpoint, nil
}

func (s *discoveryService) Discover(ctx context.Context, pid *uint32) (dto.XMLResponse, error) {
	endpoint, err := s.Endpoint(ctx, pid)
	if err != nil {
		return dto.XMLResponse{}, err
	}

	resp, err := discovery.Resolve(endpoint)
	if err != nil {
		s.logger.Sugar().Errorf("failed to render discovery response: %s", err.Error())
		return dto.XMLResponse{}, ErrInternal
	}

	environment := "unknown"
	if endpoint != nil {
		environment = endpoint.ServerAccessLevel
	}
	discoveryResolutions.WithLabelValues(environment, discovery.Outcome(endpoint)).Inc()

	return resp, nil
}
