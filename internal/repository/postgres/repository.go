package postgres

import (
	"context"

	"github.com/BloggingApp/miiverse-service/internal/config"
	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT || *limit <= 0 {
		*limit = MAX_LIMIT
	}
}

type Post interface {
	FindByID(ctx context.Context, id string) (*model.Post, error)
	FindReplies(ctx context.Context, parentID string, limit int, offset int) ([]*model.Post, error)
	FindByCommunity(ctx context.Context, communityID string, limit int, offset int) ([]*model.Post, error)
	FindRecentByTitleID(ctx context.Context, titleID string, limit int) ([]*model.Post, error)
	FindRecent(ctx context.Context, limit int, offset int) ([]*model.Post, error)
	Search(ctx context.Context, query string) (*model.Post, error)
	IncrEmpathy(ctx context.Context, id string) error
}

type Community interface {
	FindByID(ctx context.Context, communityID string) (*model.Community, error)
	FindAll(ctx context.Context, limit int, offset int) ([]*model.Community, error)
	FindPopular(ctx context.Context, limit int) ([]*model.Community, error)
}

type Settings interface {
	FindFollowing(ctx context.Context, pid uint32) ([]*model.Settings, error)
}

type Endpoint interface {
	FindByAccessLevel(ctx context.Context, accessLevel string) (*model.Endpoint, error)
}

type PNID interface {
	FindByPID(ctx context.Context, pid uint32) (*model.PNID, error)
}

type PostgresRepository struct {
	Post
	Community
	Settings
	Endpoint
	PNID
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:      newPostRepo(db),
		Community: newCommunityRepo(db),
		Settings:  newSettingsRepo(db),
		Endpoint:  newEndpointRepo(db),
		PNID:      newPNIDRepo(db),
	}
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, cfg.ConnString())
}
