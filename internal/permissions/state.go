package permissions

import (
	"strings"

	"golang.org/x/mod/semver"
)

// State answers permission questions about the acting user. The post gate
// only reads from it.
type State interface {
	// HasNewPermissions reports whether the server enforces role based
	// post permissions instead of the legacy config flags.
	HasNewPermissions() bool
	// HaveChannelPermission reports whether the acting user holds perm in
	// the channel.
	HaveChannelPermission(teamID, channelID string, perm Permission) bool
}

// ChannelKey identifies a channel within a team. An empty ChannelID stands
// for the team itself.
type ChannelKey struct {
	TeamID    string
	ChannelID string
}

// Snapshot is a precomputed State for one user. Do not modify it after it
// has been shared.
type Snapshot struct {
	NewPermissions bool
	Channels       map[ChannelKey]Permission
}

// NewSnapshot creates an empty Snapshot.
func NewSnapshot(newPermissions bool) *Snapshot {
	return &Snapshot{
		NewPermissions: newPermissions,
		Channels:       make(map[ChannelKey]Permission),
	}
}

// Set records the permissions held in a channel, or in a team when
// channelID is empty.
func (s *Snapshot) Set(teamID, channelID string, perms Permission) *Snapshot {
	s.Channels[ChannelKey{TeamID: teamID, ChannelID: channelID}] = perms
	return s
}

func (s *Snapshot) HasNewPermissions() bool { return s != nil && s.NewPermissions }

// HaveChannelPermission checks the channel entry, falling back to the
// team entry when the channel has none.
func (s *Snapshot) HaveChannelPermission(teamID, channelID string, perm Permission) bool {
	if s == nil {
		return false
	}
	perms, ok := s.Channels[ChannelKey{TeamID: teamID, ChannelID: channelID}]
	if !ok {
		perms, ok = s.Channels[ChannelKey{TeamID: teamID}]
	}
	return ok && perms.Has(perm)
}

// newPermissionsVersion is the first server version with role based post
// permissions.
const newPermissionsVersion = "v4.9.0"

// HasNewPermissions reports whether a server reporting serverVersion uses
// role based post permissions. Unparseable versions report false.
func HasNewPermissions(serverVersion string) bool {
	return IsMinimumServerVersion(serverVersion, newPermissionsVersion)
}

// IsMinimumServerVersion compares the major.minor.patch prefix of a server
// version string such as "4.10.0.4.10.0.1234.abc.true" with min ("vX.Y.Z").
func IsMinimumServerVersion(serverVersion, min string) bool {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(serverVersion), "v"), ".")
	if len(parts) < 3 {
		return false
	}
	v := "v" + strings.Join(parts[:3], ".")
	if !semver.IsValid(v) {
		return false
	}
	return semver.Compare(v, min) >= 0
}
