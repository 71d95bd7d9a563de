package permissions

import (
	"slices"

	"github.com/plentylife/mattermost-redux/internal/models"
)

// ComputeBasePermissions computes team-level permissions for a member.
//  1. Start with the default team role.
//  2. OR in every role assigned to the member.
//  3. MANAGE_SYSTEM grants everything.
func ComputeBasePermissions(defaultRole models.Role, memberRoles []models.Role) Permission {
	perms := Permission(defaultRole.Permissions)

	for _, role := range memberRoles {
		perms = perms.Add(Permission(role.Permissions))
	}

	if perms.Has(PermManageSystem) {
		return PermAll
	}
	return perms
}

// ComputeChannelPermissions applies a channel's overrides to team-level
// permissions. The default role override is applied first, then the
// member's role overrides with all denies before all allows.
func ComputeChannelPermissions(basePerms Permission, defaultOverride *models.ChannelOverride, roleOverrides []models.ChannelOverride) Permission {
	if basePerms.Has(PermManageSystem) {
		return PermAll
	}

	perms := basePerms

	if defaultOverride != nil {
		perms = perms.Remove(Permission(defaultOverride.Deny))
		perms = perms.Add(Permission(defaultOverride.Allow))
	}

	var allow, deny Permission
	for _, o := range roleOverrides {
		allow = allow.Add(Permission(o.Allow))
		deny = deny.Add(Permission(o.Deny))
	}

	return perms.Remove(deny).Add(allow)
}

// ResolveChannelPermissions computes a member's permissions in a channel
// from every role of the team, the ids of the roles the member holds, and
// the channel's overrides.
func ResolveChannelPermissions(teamRoles []models.Role, memberRoleIDs []string, overrides []models.ChannelOverride) Permission {
	var defaultRole models.Role
	var memberRoles []models.Role
	for _, r := range teamRoles {
		switch {
		case r.IsDefault:
			defaultRole = r
		case slices.Contains(memberRoleIDs, r.ID):
			memberRoles = append(memberRoles, r)
		}
	}

	base := ComputeBasePermissions(defaultRole, memberRoles)

	var defaultOverride *models.ChannelOverride
	var roleOverrides []models.ChannelOverride
	for i := range overrides {
		o := overrides[i]
		switch {
		case defaultRole.ID != "" && o.RoleID == defaultRole.ID:
			defaultOverride = &o
		case slices.Contains(memberRoleIDs, o.RoleID):
			roleOverrides = append(roleOverrides, o)
		}
	}

	return ComputeChannelPermissions(base, defaultOverride, roleOverrides)
}

// IsSchemeAdmin reports whether any of the member's roles is the team admin role.
func IsSchemeAdmin(teamRoles []models.Role, memberRoleIDs []string) bool {
	for _, r := range teamRoles {
		if r.SchemeAdmin && slices.Contains(memberRoleIDs, r.ID) {
			return true
		}
	}
	return false
}
