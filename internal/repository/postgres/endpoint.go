package postgres

import (
	"context"

	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type endpointRepo struct {
	db *pgxpool.Pool
}

func newEndpointRepo(db *pgxpool.Pool) Endpoint {
	return &endpointRepo{
		db: db,
	}
}

func (r *endpointRepo) FindByAccessLevel(ctx context.Context, accessLevel string) (*model.Endpoint, error) {
	var endpoint model.Endpoint
	if err := r.db.QueryRow(
		ctx,
		`SELECT e.server_access_level, e.status, COALESCE(e.host, ''), COALESCE(e.api_host, ''),
		COALESCE(e.portal_host, ''), COALESCE(e.n3ds_host, '')
		FROM endpoints e
		WHERE e.server_access_level = $1`,
		accessLevel,
	).Scan(
		&endpoint.ServerAccessLevel,
		&endpoint.Status,
		&endpoint.Host,
		&endpoint.APIHost,
		&endpoint.PortalHost,
		&endpoint.N3DSHost,
	); err != nil {
		return nil, err
	}

	return &endpoint, nil
}
