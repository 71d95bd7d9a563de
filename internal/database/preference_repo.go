package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plentylife/mattermost-redux/internal/models"
)

type preferenceRepo struct {
	pool *pgxpool.Pool
}

func NewPreferenceRepository(pool *pgxpool.Pool) PreferenceRepository {
	return &preferenceRepo{pool: pool}
}

// Save upserts every preference in a single batch.
func (r *preferenceRepo) Save(ctx context.Context, prefs []models.Preference) error {
	if len(prefs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range prefs {
		batch.Queue(
			`INSERT INTO preferences (user_id, category, name, value)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (user_id, category, name)
			 DO UPDATE SET value = EXCLUDED.value`,
			p.UserID, p.Category, p.Name, p.Value,
		)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

func (r *preferenceRepo) GetByCategory(ctx context.Context, userID, category string) ([]models.Preference, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, category, name, value
		 FROM preferences WHERE user_id = $1 AND category = $2
		 ORDER BY name`, userID, category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prefs []models.Preference
	for rows.Next() {
		var p models.Preference
		if err := rows.Scan(&p.UserID, &p.Category, &p.Name, &p.Value); err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}

func (r *preferenceRepo) Delete(ctx context.Context, userID, category, name string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM preferences WHERE user_id = $1 AND category = $2 AND name = $3`,
		userID, category, name,
	)
	return err
}
