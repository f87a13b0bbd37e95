package postgres

import (
	"context"

	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const communityColumns = `
	c.community_id, c.name, COALESCE(c.description, ''), COALESCE(c.icon, ''), COALESCE(c.app_data, ''),
	c.title_ids, c.is_recommended, c.has_shop_page, c.empathy_count`

type communityRepo struct {
	db *pgxpool.Pool
}

func newCommunityRepo(db *pgxpool.Pool) Community {
	return &communityRepo{
		db: db,
	}
}

func scanCommunity(row pgx.Row) (*model.Community, error) {
	var community model.Community
	if err := row.Scan(
		&community.CommunityID,
		&community.Name,
		&community.Description,
		&community.Icon,
		&community.AppData,
		&community.TitleIDs,
		&community.IsRecommended,
		&community.HasShopPage,
		&community.EmpathyCount,
	); err != nil {
		return nil, err
	}

	return &community, nil
}

func (r *communityRepo) queryCommunities(ctx context.Context, query string, args ...interface{}) ([]*model.Community, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var communities []*model.Community
	for rows.Next() {
		community, err := scanCommunity(rows)
		if err != nil {
			return nil, err
		}

		communities = append(communities, community)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return communities, nil
}

func (r *communityRepo) FindByID(ctx context.Context, communityID string) (*model.Community, error) {
	return scanCommunity(r.db.QueryRow(
		ctx,
		"SELECT"+communityColumns+" FROM communities c WHERE c.community_id = $1",
		communityID,
	))
}

func (r *communityRepo) FindAll(ctx context.Context, limit int, offset int) ([]*model.Community, error) {
	maxLimit(&limit)

	return r.queryCommunities(
		ctx,
		`SELECT`+communityColumns+`
		FROM communities c
		ORDER BY c.created_at ASC
		LIMIT $1
		OFFSET $2`,
		limit,
		offset,
	)
}

func (r *communityRepo) FindPopular(ctx context.Context, limit int) ([]*model.Community, error) {
	maxLimit(&limit)

	return r.queryCommunities(
		ctx,
		`SELECT`+communityColumns+`
		FROM communities c
		ORDER BY c.is_recommended DESC, c.empathy_count DESC
		LIMIT $1`,
		limit,
	)
}
