package service

import (
	"context"
	"slices"
	"testing"

	"github.com/plentylife/mattermost-redux/internal/ids"
	"github.com/plentylife/mattermost-redux/internal/models"
	"github.com/plentylife/mattermost-redux/internal/permissions"
)

// world is an in-memory team with one channel backing the mock repositories.
type world struct {
	teamID    string
	channel   *models.Channel
	users     map[string]models.User
	members   map[string]*models.TeamMember
	roles     []models.Role
	overrides []models.ChannelOverride
	posts     []*models.Post
	prefs     []models.Preference

	postRepo     *mockPostRepo
	prefRepo     *mockPreferenceRepo
	userRepo     *mockUserRepo
	channelRepo  *mockChannelRepo
	memberRepo   *mockMemberRepo
	roleRepo     *mockRoleRepo
	overrideRepo *mockOverrideRepo
}

const (
	memberRoleID = "memberrole"
	adminRoleID  = "adminrole"
)

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		teamID:  ids.NewID(),
		users:   make(map[string]models.User),
		members: make(map[string]*models.TeamMember),
	}
	w.channel = &models.Channel{ID: ids.NewID(), TeamID: w.teamID, Name: "town-square", Type: models.ChannelTypeOpen}
	w.roles = []models.Role{
		{ID: memberRoleID, TeamID: w.teamID, Name: "team_user", Permissions: int64(permissions.DefaultMemberPerms), IsDefault: true},
		{ID: adminRoleID, TeamID: w.teamID, Name: "team_admin", Permissions: int64(permissions.DefaultTeamAdminPerms), SchemeAdmin: true},
	}

	w.postRepo = &mockPostRepo{
		GetByChannelIDFn: func(_ context.Context, channelID string, before int64, limit int) (models.PostList, error) {
			list := models.PostList{Posts: make(map[string]*models.Post)}
			sorted := slices.Clone(w.posts)
			slices.SortFunc(sorted, func(a, b *models.Post) int { return int(b.CreateAt - a.CreateAt) })
			for _, p := range sorted {
				if p.ChannelID != channelID || (before != 0 && p.CreateAt >= before) {
					continue
				}
				if len(list.Order) == limit {
					break
				}
				list.Order = append(list.Order, p.ID)
				list.Posts[p.ID] = p
			}
			return list, nil
		},
	}
	w.prefRepo = &mockPreferenceRepo{
		GetByCategoryFn: func(_ context.Context, userID, category string) ([]models.Preference, error) {
			var out []models.Preference
			for _, p := range w.prefs {
				if p.UserID == userID && p.Category == category {
					out = append(out, p)
				}
			}
			return out, nil
		},
	}
	w.userRepo = &mockUserRepo{
		GetByIDsFn: func(_ context.Context, userIDs []string) ([]models.User, error) {
			var out []models.User
			for _, id := range userIDs {
				if u, ok := w.users[id]; ok {
					out = append(out, u)
				}
			}
			return out, nil
		},
	}
	w.channelRepo = &mockChannelRepo{
		GetByIDFn: func(_ context.Context, id string) (*models.Channel, error) {
			if id == w.channel.ID {
				return w.channel, nil
			}
			return nil, nil
		},
	}
	w.memberRepo = &mockMemberRepo{
		GetByTeamAndUserFn: func(_ context.Context, teamID, userID string) (*models.TeamMember, error) {
			if teamID != w.teamID {
				return nil, nil
			}
			return w.members[userID], nil
		},
	}
	w.roleRepo = &mockRoleRepo{
		GetByTeamIDFn: func(_ context.Context, teamID string) ([]models.Role, error) {
			return w.roles, nil
		},
	}
	w.overrideRepo = &mockOverrideRepo{
		GetByChannelFn: func(_ context.Context, channelID string) ([]models.ChannelOverride, error) {
			return w.overrides, nil
		},
	}
	return w
}

// addUser registers a user and, when roleIDs is not nil, makes them a team member.
func (w *world) addUser(username string, roleIDs ...string) models.User {
	u := models.User{ID: ids.NewID(), Username: username}
	w.users[u.ID] = u
	if roleIDs != nil {
		w.members[u.ID] = &models.TeamMember{TeamID: w.teamID, UserID: u.ID, RoleIDs: roleIDs}
	}
	return u
}

func (w *world) addPost(p *models.Post) *models.Post {
	if p.ID == "" {
		p.ID = ids.NewID()
	}
	p.ChannelID = w.channel.ID
	w.posts = append(w.posts, p)
	return p
}

func (w *world) addPreference(userID, category, name, value string) {
	w.prefs = append(w.prefs, models.Preference{UserID: userID, Category: category, Name: name, Value: value})
}

func (w *world) checker(serverVersion string) *PermissionChecker {
	return NewPermissionChecker(w.channelRepo, w.userRepo, w.memberRepo, w.roleRepo, w.overrideRepo, serverVersion)
}
