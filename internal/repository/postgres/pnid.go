package postgres

import (
	"context"

	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pnidRepo struct {
	db *pgxpool.Pool
}

func newPNIDRepo(db *pgxpool.Pool) PNID {
	return &pnidRepo{
		db: db,
	}
}

func (r *pnidRepo) FindByPID(ctx context.Context, pid uint32) (*model.PNID, error) {
	var pnid model.PNID
	if err := r.db.QueryRow(
		ctx,
		"SELECT p.pid, p.username, p.server_access_level FROM pnids p WHERE p.pid = $1",
		pid,
	).Scan(
		&pnid.PID,
		&pnid.Username,
		&pnid.ServerAccessLevel,
	); err != nil {
		return nil, err
	}

	return &pnid, nil
}
