package postgres

import (
	"context"

	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type settingsRepo struct {
	db *pgxpool.Pool
}

func newSettingsRepo(db *pgxpool.Pool) Settings {
	return &settingsRepo{
		db: db,
	}
}

func (r *settingsRepo) FindFollowing(ctx context.Context, pid uint32) ([]*model.Settings, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT s.pid, s.screen_name
		FROM follows f
		JOIN settings s ON s.pid = f.following_pid
		WHERE f.pid = $1
		ORDER BY f.created_at DESC`,
		pid,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []*model.Settings
	for rows.Next() {
		var person model.Settings
		if err := rows.Scan(&person.PID, &person.ScreenName); err != nil {
			return nil, err
		}

		people = append(people, &person)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return people, nil
}
