package service

import (
	"context"
	"log/slog"

	"github.com/plentylife/mattermost-redux/internal/database"
	"github.com/plentylife/mattermost-redux/internal/models"
	"github.com/plentylife/mattermost-redux/internal/permissions"
)

// Access describes what one user may do in one channel.
type Access struct {
	UserID        string
	ChannelID     string
	TeamID        string
	User          *models.User
	State         *permissions.Snapshot
	IsTeamAdmin   bool
	IsSystemAdmin bool
}

// PermissionChecker resolves channel permissions from team roles and
// channel overrides.
type PermissionChecker struct {
	channels       database.ChannelRepository
	users          database.UserRepository
	members        database.MemberRepository
	roles          database.RoleRepository
	overrides      database.ChannelOverrideRepository
	newPermissions bool
}

// NewPermissionChecker creates a PermissionChecker for a server reporting
// serverVersion.
func NewPermissionChecker(
	channels database.ChannelRepository,
	users database.UserRepository,
	members database.MemberRepository,
	roles database.RoleRepository,
	overrides database.ChannelOverrideRepository,
	serverVersion string,
) *PermissionChecker {
	return &PermissionChecker{
		channels:       channels,
		users:          users,
		members:        members,
		roles:          roles,
		overrides:      overrides,
		newPermissions: permissions.HasNewPermissions(serverVersion),
	}
}

// ChannelAccess loads everything the post gate needs to know about userID
// in channelID. System admins hold every permission. Channels outside a team
// grant the default member permissions.
func (p *PermissionChecker) ChannelAccess(ctx context.Context, channelID, userID string) (*Access, error) {
	channel, err := p.channels.GetByID(ctx, channelID)
	if err != nil {
		slog.Error("failed to get channel", "channelID", channelID, "error", err)
		return nil, internalError()
	}
	if channel == nil {
		return nil, NotFound("UNKNOWN_CHANNEL", "channel not found")
	}

	users, err := p.users.GetByIDs(ctx, []string{userID})
	if err != nil {
		slog.Error("failed to get user", "userID", userID, "error", err)
		return nil, internalError()
	}
	if len(users) == 0 || users[0].DeleteAt != 0 {
		return nil, NotFound("UNKNOWN_USER", "user not found")
	}
	user := users[0]

	access := &Access{
		UserID:        userID,
		ChannelID:     channelID,
		TeamID:        channel.TeamID,
		User:          &user,
		State:         permissions.NewSnapshot(p.newPermissions),
		IsSystemAdmin: user.IsSystemAdmin,
	}

	if user.IsSystemAdmin {
		access.IsTeamAdmin = true
		access.State.Set(channel.TeamID, "", permissions.PermAll)
		return access, nil
	}

	if channel.TeamID == "" {
		access.State.Set("", "", permissions.DefaultMemberPerms)
		return access, nil
	}

	member, err := p.members.GetByTeamAndUser(ctx, channel.TeamID, userID)
	if err != nil {
		slog.Error("failed to get team member", "teamID", channel.TeamID, "userID", userID, "error", err)
		return nil, internalError()
	}
	if member == nil {
		return nil, Forbidden("FORBIDDEN", "you are not a member of this team")
	}

	teamRoles, err := p.roles.GetByTeamID(ctx, channel.TeamID)
	if err != nil {
		slog.Error("failed to get team roles", "teamID", channel.TeamID, "error", err)
		return nil, internalError()
	}

	channelOverrides, err := p.overrides.GetByChannel(ctx, channelID)
	if err != nil {
		slog.Error("failed to get channel overrides", "channelID", channelID, "error", err)
		return nil, internalError()
	}

	teamPerms := permissions.ResolveChannelPermissions(teamRoles, member.RoleIDs, nil)
	channelPerms := permissions.ResolveChannelPermissions(teamRoles, member.RoleIDs, channelOverrides)

	access.State.
		Set(channel.TeamID, "", teamPerms).
		Set(channel.TeamID, channelID, channelPerms)
	access.IsTeamAdmin = permissions.IsSchemeAdmin(teamRoles, member.RoleIDs) || teamPerms.Has(permissions.PermManageSystem)

	return access, nil
}
