package postgres

import (
	"context"

	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postColumns = `
	p.id, p.pid, p.community_id, p.title_id, COALESCE(p.screen_name, ''), COALESCE(p.body, ''),
	COALESCE(p.app_data, ''), COALESCE(p.painting, ''), COALESCE(p.screenshot, ''), COALESCE(p.screenshot_length, 0),
	COALESCE(p.mii, ''), COALESCE(p.mii_face_url, ''), COALESCE(p.topic_tag, ''),
	p.feeling_id, p.country_id, p.region_id, p.platform_id, p.language_id,
	p.is_autopost, p.is_community_private_autopost, p.is_spoiler, p.is_app_jumpable,
	p.empathy_count, p.reply_count, p.parent_id, p.created_at`

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var post model.Post
	if err := row.Scan(
		&post.ID,
		&post.PID,
		&post.CommunityID,
		&post.TitleID,
		&post.ScreenName,
		&post.Body,
		&post.AppData,
		&post.Painting,
		&post.Screenshot,
		&post.ScreenshotLength,
		&post.Mii,
		&post.MiiFaceURL,
		&post.TopicTag,
		&post.FeelingID,
		&post.CountryID,
		&post.RegionID,
		&post.PlatformID,
		&post.LanguageID,
		&post.IsAutopost,
		&post.IsCommunityPrivateAutopost,
		&post.IsSpoiler,
		&post.IsAppJumpable,
		&post.EmpathyCount,
		&post.ReplyCount,
		&post.ParentID,
		&post.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*model.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) FindByID(ctx context.Context, id string) (*model.Post, error) {
	return scanPost(r.db.QueryRow(
		ctx,
		"SELECT"+postColumns+" FROM posts p WHERE p.id = $1 AND p.removed = false",
		id,
	))
}

func (r *postRepo) FindReplies(ctx context.Context, parentID string, limit int, offset int) ([]*model.Post, error) {
	maxLimit(&limit)

	return r.queryPosts(
		ctx,
		`SELECT`+postColumns+`
		FROM posts p
		WHERE p.parent_id = $1 AND p.removed = false
		ORDER BY p.created_at ASC
		LIMIT $2
		OFFSET $3`,
		parentID,
		limit,
		offset,
	)
}

func (r *postRepo) FindByCommunity(ctx context.Context, communityID string, limit int, offset int) ([]*model.Post, error) {
	maxLimit(&limit)

	return r.queryPosts(
		ctx,
		`SELECT`+postColumns+`
		FROM posts p
		WHERE p.community_id = $1 AND p.parent_id IS NULL AND p.removed = false
		ORDER BY p.created_at DESC
		LIMIT $2
		OFFSET $3`,
		communityID,
		limit,
		offset,
	)
}

func (r *postRepo) FindRecentByTitleID(ctx context.Context, titleID string, limit int) ([]*model.Post, error) {
	maxLimit(&limit)

	return r.queryPosts(
		ctx,
		`SELECT`+postColumns+`
		FROM posts p
		WHERE p.title_id = $1 AND p.parent_id IS NULL AND p.removed = false
		ORDER BY p.created_at DESC
		LIMIT $2`,
		titleID,
		limit,
	)
}

func (r *postRepo) FindRecent(ctx context.Context, limit int, offset int) ([]*model.Post, error) {
	maxLimit(&limit)

	return r.queryPosts(
		ctx,
		`SELECT`+postColumns+`
		FROM posts p
		WHERE p.parent_id IS NULL AND p.removed = false
		ORDER BY p.created_at DESC
		LIMIT $1
		OFFSET $2`,
		limit,
		offset,
	)
}

func (r *postRepo) Search(ctx context.Context, query string) (*model.Post, error) {
	return scanPost(r.db.QueryRow(
		ctx,
		`SELECT`+postColumns+`
		FROM posts p
		WHERE (p.id = $1 OR p.body ILIKE '%' || $1 || '%') AND p.removed = false
		ORDER BY p.created_at DESC
		LIMIT 1`,
		query,
	))
}

func (r *postRepo) IncrEmpathy(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "UPDATE posts SET empathy_count = empathy_count + 1 WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
