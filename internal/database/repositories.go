package database

import (
	"context"

	"github.com/plentylife/mattermost-redux/internal/models"
)

// Lookups by id return a nil record and a nil error when nothing matches.

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	// GetByChannelID returns up to limit posts created before the given
	// time (ms since the epoch), newest first. A zero before means now.
	GetByChannelID(ctx context.Context, channelID string, before int64, limit int) (models.PostList, error)
	Delete(ctx context.Context, id string) error
}

type PreferenceRepository interface {
	Save(ctx context.Context, prefs []models.Preference) error
	GetByCategory(ctx context.Context, userID, category string) ([]models.Preference, error)
	Delete(ctx context.Context, userID, category, name string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
	Delete(ctx context.Context, id string) error
}

type ChannelRepository interface {
	Create(ctx context.Context, channel *models.Channel) error
	GetByID(ctx context.Context, id string) (*models.Channel, error)
	Delete(ctx context.Context, id string) error
}

type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	GetByTeamID(ctx context.Context, teamID string) ([]models.Role, error)
	GetByMember(ctx context.Context, teamID, userID string) ([]models.Role, error)
	Delete(ctx context.Context, id string) error
}

type MemberRepository interface {
	Create(ctx context.Context, member *models.TeamMember) error
	GetByTeamAndUser(ctx context.Context, teamID, userID string) (*models.TeamMember, error)
	AddRole(ctx context.Context, teamID, userID, roleID string) error
	Delete(ctx context.Context, teamID, userID string) error
}

type ChannelOverrideRepository interface {
	Set(ctx context.Context, override *models.ChannelOverride) error
	GetByChannel(ctx context.Context, channelID string) ([]models.ChannelOverride, error)
	Delete(ctx context.Context, channelID, roleID string) error
}
