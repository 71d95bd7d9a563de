package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plentylife/mattermost-redux/internal/models"
)

type roleRepo struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &roleRepo{pool: pool}
}

func (r *roleRepo) Create(ctx context.Context, role *models.Role) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO roles (id, team_id, name, permissions, is_default, scheme_admin)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		role.ID, role.TeamID, role.Name, role.Permissions, role.IsDefault, role.SchemeAdmin,
	)
	return err
}

func (r *roleRepo) GetByTeamID(ctx context.Context, teamID string) ([]models.Role, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, team_id, name, permissions, is_default, scheme_admin
		 FROM roles WHERE team_id = $1
		 ORDER BY is_default DESC, name`, teamID,
	)
	if err != nil {
		return nil, err
	}
	return scanRoles(rows)
}

func (r *roleRepo) GetByMember(ctx context.Context, teamID, userID string) ([]models.Role, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT r.id, r.team_id, r.name, r.permissions, r.is_default, r.scheme_admin
		 FROM roles r
		 INNER JOIN member_roles mr ON mr.role_id = r.id
		 WHERE mr.team_id = $1 AND mr.user_id = $2
		 ORDER BY r.name`, teamID, userID,
	)
	if err != nil {
		return nil, err
	}
	return scanRoles(rows)
}

func (r *roleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	return err
}

func scanRoles(rows pgx.Rows) ([]models.Role, error) {
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.TeamID, &role.Name, &role.Permissions, &role.IsDefault, &role.SchemeAdmin); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
