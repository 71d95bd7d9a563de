package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plentylife/mattermost-redux/internal/models"
)

type memberRepo struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) MemberRepository {
	return &memberRepo{pool: pool}
}

// Create inserts the membership together with its role assignments.
func (r *memberRepo) Create(ctx context.Context, member *models.TeamMember) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`,
			member.TeamID, member.UserID,
		); err != nil {
			return err
		}
		for _, roleID := range member.RoleIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO member_roles (team_id, user_id, role_id)
				 VALUES ($1, $2, $3)
				 ON CONFLICT DO NOTHING`,
				member.TeamID, member.UserID, roleID,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *memberRepo) GetByTeamAndUser(ctx context.Context, teamID, userID string) (*models.TeamMember, error) {
	m := &models.TeamMember{}
	err := r.pool.QueryRow(ctx,
		`SELECT team_id, user_id FROM team_members WHERE team_id = $1 AND user_id = $2`,
		teamID, userID,
	).Scan(&m.TeamID, &m.UserID)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	roles, err := r.getMemberRoles(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	m.RoleIDs = roles
	return m, nil
}

func (r *memberRepo) AddRole(ctx context.Context, teamID, userID, roleID string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO member_roles (team_id, user_id, role_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT DO NOTHING`,
		teamID, userID, roleID,
	)
	return err
}

func (r *memberRepo) Delete(ctx context.Context, teamID, userID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`, teamID, userID,
	)
	return err
}

func (r *memberRepo) getMemberRoles(ctx context.Context, teamID, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT role_id FROM member_roles WHERE team_id = $1 AND user_id = $2 ORDER BY role_id`,
		teamID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var roleID string
		if err := rows.Scan(&roleID); err != nil {
			return nil, err
		}
		roles = append(roles, roleID)
	}
	return roles, rows.Err()
}
