package database

import (
	"context"
	"testing"

	"github.com/plentylife/mattermost-redux/internal/ids"
	"github.com/plentylife/mattermost-redux/internal/models"
)

func TestRoleRepo_GetByTeamID(t *testing.T) {
	pool := testPool(t)
	repo := NewRoleRepository(pool)
	ctx := context.Background()
	teamID := ids.NewID()

	createTestRole(t, repo, teamID, "moderator", 0x30, false)
	createTestRole(t, repo, teamID, "member", 0x07, true)

	roles, err := repo.GetByTeamID(ctx, teamID)
	if err != nil {
		t.Fatalf("GetByTeamID: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("got %d roles, want 2", len(roles))
	}
	if !roles[0].IsDefault {
		t.Error("expected the default role first")
	}
	if roles[1].Permissions != 0x30 {
		t.Errorf("Permissions = %d, want %d", roles[1].Permissions, 0x30)
	}
}

func TestRoleRepo_GetByMember(t *testing.T) {
	pool := testPool(t)
	userRepo := NewUserRepository(pool)
	memberRepo := NewMemberRepository(pool)
	repo := NewRoleRepository(pool)
	ctx := context.Background()
	teamID := ids.NewID()

	user := createTestUser(t, userRepo)
	createTestRole(t, repo, teamID, "member", 0x07, true)
	mod := createTestRole(t, repo, teamID, "moderator", 0x30, false)

	member := &models.TeamMember{TeamID: teamID, UserID: user.ID, RoleIDs: []string{mod.ID}}
	if err := memberRepo.Create(ctx, member); err != nil {
		t.Fatalf("Create member: %v", err)
	}
	t.Cleanup(func() { _ = memberRepo.Delete(ctx, teamID, user.ID) })

	roles, err := repo.GetByMember(ctx, teamID, user.ID)
	if err != nil {
		t.Fatalf("GetByMember: %v", err)
	}
	if len(roles) != 1 || roles[0].ID != mod.ID {
		t.Errorf("expected only the assigned role, got %+v", roles)
	}
}
