package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plentylife/mattermost-redux/internal/models"
)

type postRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postRepo{pool: pool}
}

func (r *postRepo) Create(ctx context.Context, p *models.Post) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO posts (id, channel_id, user_id, root_id, message, type, props, create_at, update_at, edit_at, delete_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.ChannelID, p.UserID, p.RootID, p.Message, string(p.Type), p.Props,
		p.CreateAt, p.UpdateAt, p.EditAt, p.DeleteAt,
	)
	return err
}

func (r *postRepo) GetByChannelID(ctx context.Context, channelID string, before int64, limit int) (models.PostList, error) {
	list := models.PostList{Posts: make(map[string]*models.Post)}

	rows, err := r.pool.Query(ctx,
		`SELECT id, channel_id, user_id, root_id, message, type, props, create_at, update_at, edit_at, delete_at
		 FROM posts
		 WHERE channel_id = $1 AND ($2::BIGINT = 0 OR create_at < $2)
		 ORDER BY create_at DESC, id DESC
		 LIMIT $3`,
		channelID, before, limit,
	)
	if err != nil {
		return list, err
	}
	defer rows.Close()

	for rows.Next() {
		p := &models.Post{}
		if err := rows.Scan(
			&p.ID, &p.ChannelID, &p.UserID, &p.RootID, &p.Message, &p.Type, &p.Props,
			&p.CreateAt, &p.UpdateAt, &p.EditAt, &p.DeleteAt,
		); err != nil {
			return list, err
		}
		list.Order = append(list.Order, p.ID)
		list.Posts[p.ID] = p
	}
	return list, rows.Err()
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}
