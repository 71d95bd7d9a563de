package database

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plentylife/mattermost-redux/internal/ids"
	"github.com/plentylife/mattermost-redux/internal/models"
)

// testPool returns a pgxpool.Pool connected to the test database.
// It skips the test if DATABASE_URL is not set.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	return pool
}

func createTestUser(t *testing.T, repo UserRepository) *models.User {
	t.Helper()
	ctx := context.Background()
	id := ids.NewID()
	user := &models.User{ID: id, Username: "user_" + id[:12]}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("createTestUser: %v", err)
	}
	t.Cleanup(func() { _ = repo.Delete(ctx, user.ID) })
	return user
}

func createTestChannel(t *testing.T, repo ChannelRepository, teamID string) *models.Channel {
	t.Helper()
	ctx := context.Background()
	ch := &models.Channel{
		ID:          ids.NewID(),
		TeamID:      teamID,
		Name:        "town-square",
		DisplayName: "Town Square",
		Type:        models.ChannelTypeOpen,
	}
	if err := repo.Create(ctx, ch); err != nil {
		t.Fatalf("createTestChannel: %v", err)
	}
	t.Cleanup(func() { _ = repo.Delete(ctx, ch.ID) })
	return ch
}

func createTestRole(t *testing.T, repo RoleRepository, teamID, name string, perms int64, isDefault bool) *models.Role {
	t.Helper()
	ctx := context.Background()
	role := &models.Role{
		ID:          ids.NewID(),
		TeamID:      teamID,
		Name:        name,
		Permissions: perms,
		IsDefault:   isDefault,
	}
	if err := repo.Create(ctx, role); err != nil {
		t.Fatalf("createTestRole: %v", err)
	}
	t.Cleanup(func() { _ = repo.Delete(ctx, role.ID) })
	return role
}
