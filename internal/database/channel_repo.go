package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plentylife/mattermost-redux/internal/models"
)

type channelRepo struct {
	pool *pgxpool.Pool
}

func NewChannelRepository(pool *pgxpool.Pool) ChannelRepository {
	return &channelRepo{pool: pool}
}

func (r *channelRepo) Create(ctx context.Context, ch *models.Channel) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO channels (id, team_id, name, display_name, type)
		 VALUES ($1, $2, $3, $4, $5)`,
		ch.ID, ch.TeamID, ch.Name, ch.DisplayName, string(ch.Type),
	)
	return err
}

func (r *channelRepo) GetByID(ctx context.Context, id string) (*models.Channel, error) {
	ch := &models.Channel{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, team_id, name, display_name, type
		 FROM channels WHERE id = $1`, id,
	).Scan(&ch.ID, &ch.TeamID, &ch.Name, &ch.DisplayName, &ch.Type)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return ch, err
}

func (r *channelRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM channels WHERE id = $1`, id)
	return err
}
