package main

import (
	"context"
	"fmt"
	"time"

	"github.com/plentylife/mattermost-redux/internal/database"
	"github.com/plentylife/mattermost-redux/internal/ids"
	"github.com/plentylife/mattermost-redux/internal/models"
	"github.com/plentylife/mattermost-redux/internal/permissions"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a demo team",
	Long: `Create a demo team with three users, a channel, and a mix of regular
and activity posts, then print the ids to pass to "postctl view".`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "connecting to database...")
	pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()

	users := database.NewUserRepository(pool)
	channels := database.NewChannelRepository(pool)
	roles := database.NewRoleRepository(pool)
	members := database.NewMemberRepository(pool)
	overrides := database.NewChannelOverrideRepository(pool)
	postRepo := database.NewPostRepository(pool)
	prefs := database.NewPreferenceRepository(pool)

	teamID := ids.NewID()
	memberRole := &models.Role{ID: ids.NewID(), TeamID: teamID, Name: "team_user", Permissions: int64(permissions.DefaultMemberPerms), IsDefault: true}
	adminRole := &models.Role{ID: ids.NewID(), TeamID: teamID, Name: "team_admin", Permissions: int64(permissions.DefaultTeamAdminPerms), SchemeAdmin: true}
	modRole := &models.Role{ID: ids.NewID(), TeamID: teamID, Name: "moderator", Permissions: int64(permissions.DefaultMemberPerms)}

	fmt.Fprintln(out, "creating roles...")
	for _, r := range []*models.Role{memberRole, adminRole, modRole} {
		if err := roles.Create(ctx, r); err != nil {
			return fmt.Errorf("creating role %s: %w", r.Name, err)
		}
	}

	fmt.Fprintln(out, "creating users...")
	alice := &models.User{ID: ids.NewID(), Username: "alice_" + teamID[:6], FirstName: "Alice"}
	bob := &models.User{ID: ids.NewID(), Username: "bob_" + teamID[:6], FirstName: "Bob"}
	carol := &models.User{ID: ids.NewID(), Username: "carol_" + teamID[:6], FirstName: "Carol"}
	for _, u := range []*models.User{alice, bob, carol} {
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("creating user %s: %w", u.Username, err)
		}
	}

	fmt.Fprintln(out, "creating team members...")
	teamMembers := []*models.TeamMember{
		{TeamID: teamID, UserID: alice.ID, RoleIDs: []string{memberRole.ID, adminRole.ID}},
		{TeamID: teamID, UserID: bob.ID, RoleIDs: []string{memberRole.ID}},
		{TeamID: teamID, UserID: carol.ID, RoleIDs: []string{memberRole.ID}},
	}
	for _, m := range teamMembers {
		if err := members.Create(ctx, m); err != nil {
			return fmt.Errorf("creating member %s: %w", m.UserID, err)
		}
	}

	fmt.Fprintln(out, "creating channel...")
	channel := &models.Channel{ID: ids.NewID(), TeamID: teamID, Name: "town-square", DisplayName: "Town Square", Type: models.ChannelTypeOpen}
	if err := channels.Create(ctx, channel); err != nil {
		return fmt.Errorf("creating channel: %w", err)
	}

	fmt.Fprintln(out, "granting moderator...")
	if err := members.AddRole(ctx, teamID, carol.ID, modRole.ID); err != nil {
		return fmt.Errorf("granting moderator role: %w", err)
	}
	// Moderators may edit and delete anyone's posts, but only in this channel.
	if err := overrides.Set(ctx, &models.ChannelOverride{
		ChannelID: channel.ID,
		RoleID:    modRole.ID,
		Allow:     int64(permissions.PermOthersPosts),
	}); err != nil {
		return fmt.Errorf("creating channel override: %w", err)
	}

	fmt.Fprintln(out, "creating posts...")
	now := time.Now().UnixMilli()
	seedPosts := []*models.Post{
		{UserID: alice.ID, Type: models.PostTypeJoinChannel, Message: alice.Username + " joined the channel.", Props: models.PostProps{Username: alice.Username}},
		{UserID: alice.ID, Message: "Welcome to Town Square!"},
		{UserID: bob.ID, Type: models.PostTypeJoinChannel, Message: bob.Username + " joined the channel.", Props: models.PostProps{Username: bob.Username}},
		{UserID: alice.ID, Type: models.PostTypeAddToChannel, Message: carol.Username + " added to the channel by " + alice.Username + ".",
			Props: models.PostProps{Username: alice.Username, AddedUserID: carol.ID, AddedUsername: carol.Username}},
		{UserID: bob.ID, Type: models.PostTypeLeaveChannel, Message: bob.Username + " left the channel.", Props: models.PostProps{Username: bob.Username}},
		{UserID: carol.ID, Message: "Thanks for adding me."},
	}
	for i, p := range seedPosts {
		p.ID = ids.NewID()
		p.ChannelID = channel.ID
		p.CreateAt = now - int64(len(seedPosts)-i)*int64(time.Minute/time.Millisecond)
		p.UpdateAt = p.CreateAt
		if err := postRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("creating post: %w", err)
		}
	}

	if err := prefs.Save(ctx, []models.Preference{{
		UserID:   bob.ID,
		Category: models.PreferenceCategoryFlaggedPost,
		Name:     seedPosts[1].ID,
		Value:    "true",
	}}); err != nil {
		return fmt.Errorf("creating preferences: %w", err)
	}

	fmt.Fprintf(out, "seeded team %s\n", teamID)
	fmt.Fprintf(out, "  channel: %s\n", channel.ID)
	fmt.Fprintf(out, "  alice:   %s (team admin)\n", alice.ID)
	fmt.Fprintf(out, "  bob:     %s\n", bob.ID)
	fmt.Fprintf(out, "  carol:   %s (channel moderator)\n", carol.ID)
	return nil
}
