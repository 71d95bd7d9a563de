package permissions

import "strings"

// Permission is a bitfield representing a set of permissions.
type Permission int64

const (
	PermReadChannel                 Permission = 1 << 0
	PermCreatePost                  Permission = 1 << 1
	PermEditPost                    Permission = 1 << 2
	PermEditOthersPosts             Permission = 1 << 3
	PermDeletePost                  Permission = 1 << 4
	PermDeleteOthersPosts           Permission = 1 << 5
	PermManagePublicChannelMembers  Permission = 1 << 6
	PermManagePrivateChannelMembers Permission = 1 << 7
	PermManageTeam                  Permission = 1 << 8
	PermManageSystem                Permission = 1 << 31 // bypasses all checks

	// Convenience sets
	PermOwnPosts    = PermCreatePost | PermEditPost | PermDeletePost
	PermOthersPosts = PermEditOthersPosts | PermDeleteOthersPosts
	PermAll         = Permission(0x7FFFFFFFFFFFFFFF)
)

// Has returns true if p contains all bits in perm.
func (p Permission) Has(perm Permission) bool { return p&perm == perm }

// Add returns p with the bits from perm set.
func (p Permission) Add(perm Permission) Permission { return p | perm }

// Remove returns p with the bits from perm cleared.
func (p Permission) Remove(perm Permission) Permission { return p &^ perm }

// DefaultMemberPerms is what the default team role grants.
var DefaultMemberPerms = PermReadChannel | PermOwnPosts

// DefaultTeamAdminPerms is what the team admin role grants.
var DefaultTeamAdminPerms = DefaultMemberPerms | PermOthersPosts | PermManagePublicChannelMembers | PermManagePrivateChannelMembers | PermManageTeam

// permNames lists permission bits with the names the server uses for them,
// in bit order.
var permNames = []struct {
	perm Permission
	name string
}{
	{PermReadChannel, "read_channel"},
	{PermCreatePost, "create_post"},
	{PermEditPost, "edit_post"},
	{PermEditOthersPosts, "edit_others_posts"},
	{PermDeletePost, "delete_post"},
	{PermDeleteOthersPosts, "delete_others_posts"},
	{PermManagePublicChannelMembers, "manage_public_channel_members"},
	{PermManagePrivateChannelMembers, "manage_private_channel_members"},
	{PermManageTeam, "manage_team"},
	{PermManageSystem, "manage_system"},
}

// ParsePermission returns the permission with the given server name.
func ParsePermission(name string) (Permission, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, pn := range permNames {
		if pn.name == name {
			return pn.perm, true
		}
	}
	return 0, false
}

// ParsePermissions ORs together a list of server permission names.
// Unknown names are returned separately.
func ParsePermissions(names []string) (Permission, []string) {
	var perms Permission
	var unknown []string
	for _, n := range names {
		p, ok := ParsePermission(n)
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		perms = perms.Add(p)
	}
	return perms, unknown
}

// String returns the names of all set permissions in bit order, separated
// by " | ".
func (p Permission) String() string {
	if p == 0 {
		return "NONE"
	}

	var names []string
	for _, pn := range permNames {
		if p.Has(pn.perm) {
			names = append(names, pn.name)
		}
	}

	if len(names) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(names, " | ")
}
