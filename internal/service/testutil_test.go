package service

import (
	"context"
	"sync/atomic"

	"github.com/plentylife/mattermost-redux/internal/models"
)

// ---------------------------------------------------------------------------
// Mock repositories
// ---------------------------------------------------------------------------

type mockPostRepo struct {
	CreateFn         func(ctx context.Context, post *models.Post) error
	GetByChannelIDFn func(ctx context.Context, channelID string, before int64, limit int) (models.PostList, error)
	DeleteFn         func(ctx context.Context, id string) error
}

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) GetByChannelID(ctx context.Context, channelID string, before int64, limit int) (models.PostList, error) {
	if m.GetByChannelIDFn != nil {
		return m.GetByChannelIDFn(ctx, channelID, before, limit)
	}
	return models.PostList{}, nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type mockPreferenceRepo struct {
	SaveFn          func(ctx context.Context, prefs []models.Preference) error
	GetByCategoryFn func(ctx context.Context, userID, category string) ([]models.Preference, error)
	DeleteFn        func(ctx context.Context, userID, category, name string) error

	reads atomic.Int32
}

func (m *mockPreferenceRepo) Save(ctx context.Context, prefs []models.Preference) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, prefs)
	}
	return nil
}

func (m *mockPreferenceRepo) GetByCategory(ctx context.Context, userID, category string) ([]models.Preference, error) {
	m.reads.Add(1)
	if m.GetByCategoryFn != nil {
		return m.GetByCategoryFn(ctx, userID, category)
	}
	return nil, nil
}

func (m *mockPreferenceRepo) Delete(ctx context.Context, userID, category, name string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, category, name)
	}
	return nil
}

type mockUserRepo struct {
	CreateFn   func(ctx context.Context, user *models.User) error
	GetByIDsFn func(ctx context.Context, ids []string) ([]models.User, error)
	DeleteFn   func(ctx context.Context, id string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type mockChannelRepo struct {
	CreateFn  func(ctx context.Context, channel *models.Channel) error
	GetByIDFn func(ctx context.Context, id string) (*models.Channel, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (m *mockChannelRepo) Create(ctx context.Context, channel *models.Channel) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, channel)
	}
	return nil
}

func (m *mockChannelRepo) GetByID(ctx context.Context, id string) (*models.Channel, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockChannelRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type mockRoleRepo struct {
	CreateFn      func(ctx context.Context, role *models.Role) error
	GetByTeamIDFn func(ctx context.Context, teamID string) ([]models.Role, error)
	GetByMemberFn func(ctx context.Context, teamID, userID string) ([]models.Role, error)
	DeleteFn      func(ctx context.Context, id string) error
}

func (m *mockRoleRepo) Create(ctx context.Context, role *models.Role) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, role)
	}
	return nil
}

func (m *mockRoleRepo) GetByTeamID(ctx context.Context, teamID string) ([]models.Role, error) {
	if m.GetByTeamIDFn != nil {
		return m.GetByTeamIDFn(ctx, teamID)
	}
	return nil, nil
}

func (m *mockRoleRepo) GetByMember(ctx context.Context, teamID, userID string) ([]models.Role, error) {
	if m.GetByMemberFn != nil {
		return m.GetByMemberFn(ctx, teamID, userID)
	}
	return nil, nil
}

func (m *mockRoleRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type mockMemberRepo struct {
	CreateFn           func(ctx context.Context, member *models.TeamMember) error
	GetByTeamAndUserFn func(ctx context.Context, teamID, userID string) (*models.TeamMember, error)
	AddRoleFn          func(ctx context.Context, teamID, userID, roleID string) error
	DeleteFn           func(ctx context.Context, teamID, userID string) error
}

func (m *mockMemberRepo) Create(ctx context.Context, member *models.TeamMember) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, member)
	}
	return nil
}

func (m *mockMemberRepo) GetByTeamAndUser(ctx context.Context, teamID, userID string) (*models.TeamMember, error) {
	if m.GetByTeamAndUserFn != nil {
		return m.GetByTeamAndUserFn(ctx, teamID, userID)
	}
	return nil, nil
}

func (m *mockMemberRepo) AddRole(ctx context.Context, teamID, userID, roleID string) error {
	if m.AddRoleFn != nil {
		return m.AddRoleFn(ctx, teamID, userID, roleID)
	}
	return nil
}

func (m *mockMemberRepo) Delete(ctx context.Context, teamID, userID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, teamID, userID)
	}
	return nil
}

type mockOverrideRepo struct {
	SetFn          func(ctx context.Context, override *models.ChannelOverride) error
	GetByChannelFn func(ctx context.Context, channelID string) ([]models.ChannelOverride, error)
	DeleteFn       func(ctx context.Context, channelID, roleID string) error
}

func (m *mockOverrideRepo) Set(ctx context.Context, override *models.ChannelOverride) error {
	if m.SetFn != nil {
		return m.SetFn(ctx, override)
	}
	return nil
}

func (m *mockOverrideRepo) GetByChannel(ctx context.Context, channelID string) ([]models.ChannelOverride, error) {
	if m.GetByChannelFn != nil {
		return m.GetByChannelFn(ctx, channelID)
	}
	return nil, nil
}

func (m *mockOverrideRepo) Delete(ctx context.Context, channelID, roleID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, channelID, roleID)
	}
	return nil
}
