package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/plentylife/mattermost-redux/internal/database"
	"github.com/plentylife/mattermost-redux/internal/ids"
	"github.com/plentylife/mattermost-redux/internal/models"
	"github.com/plentylife/mattermost-redux/internal/permissions"
	"github.com/plentylife/mattermost-redux/internal/posts"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 60
	maxPageSize     = 200
)

// PreferenceCache is a read-through cache in front of the preference store.
type PreferenceCache interface {
	GetPreferences(ctx context.Context, userID, category string) ([]models.Preference, bool, error)
	CachePreferences(ctx context.Context, userID, category string, prefs []models.Preference) error
}

// ChannelViewOptions selects a page of a channel.
type ChannelViewOptions struct {
	// Before limits the page to posts created before this time in ms since
	// the epoch. Zero means the newest page.
	Before int64
	Limit  int
	// ShowJoinLeave overrides the user's display preference when set.
	ShowJoinLeave *bool
}

type PostActions struct {
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

// ChannelView is a page of a channel prepared for one user.
type ChannelView struct {
	Order          []string                `json:"order"`
	Posts          map[string]*models.Post `json:"posts"`
	FlaggedPostIDs []string                `json:"flagged_post_ids"`
	Actions        map[string]PostActions  `json:"actions"`
	Users          map[string]models.User  `json:"users"`
}

// PostService prepares channel pages: it merges activity posts and works out
// what the viewer may do with each post.
type PostService struct {
	posts    database.PostRepository
	prefs    database.PreferenceRepository
	users    database.UserRepository
	cache    PreferenceCache
	perms    *PermissionChecker
	combiner *posts.Combiner
	config   models.PostConfig
	license  models.License
	clock    clock.Clock
}

// NewPostService creates a PostService. cache may be nil.
func NewPostService(
	postRepo database.PostRepository,
	prefs database.PreferenceRepository,
	users database.UserRepository,
	cache PreferenceCache,
	perms *PermissionChecker,
	cfg models.PostConfig,
	license models.License,
	clk clock.Clock,
) *PostService {
	if clk == nil {
		clk = clock.New()
	}
	return &PostService{
		posts:    postRepo,
		prefs:    prefs,
		users:    users,
		cache:    cache,
		perms:    perms,
		combiner: posts.NewCombiner(ids.NewID),
		config:   cfg,
		license:  license,
		clock:    clk,
	}
}

// GetChannelView loads a page of channelID as userID sees it.
func (s *PostService) GetChannelView(ctx context.Context, channelID, userID string, opts ChannelViewOptions) (*ChannelView, error) {
	if !ids.IsValid(channelID) || !ids.IsValid(userID) {
		return nil, BadRequest("INVALID_ID", "invalid channel or user id")
	}
	limit := opts.Limit
	switch {
	case limit < 0 || opts.Before < 0:
		return nil, BadRequest("INVALID_PAGE", "limit and before must not be negative")
	case limit == 0:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}

	var (
		page    models.PostList
		flagged models.Preferences
		display models.Preferences
		access  *Access
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.posts.GetByChannelID(gctx, channelID, opts.Before, limit)
		if err != nil {
			slog.Error("failed to get posts", "channelID", channelID, "error", err)
			return internalError()
		}
		return nil
	})
	g.Go(func() error {
		var err error
		flagged, err = s.preferences(gctx, userID, models.PreferenceCategoryFlaggedPost)
		return err
	})
	g.Go(func() error {
		var err error
		display, err = s.preferences(gctx, userID, models.PreferenceCategoryDisplay)
		return err
	})
	g.Go(func() error {
		var err error
		access, err = s.perms.ChannelAccess(gctx, channelID, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	showJoinLeave := display[models.PreferenceKey(models.PreferenceCategoryDisplay, models.PreferenceNameJoinLeave)] != "false"
	if opts.ShowJoinLeave != nil {
		showJoinLeave = *opts.ShowJoinLeave
	}

	visible := filterJoinLeave(page, showJoinLeave, access.User.Username)
	combined := s.combiner.Combine(visible.Order, visible.Posts, channelID)

	if combined.Order == nil {
		combined.Order = []string{}
	}
	if combined.Posts == nil {
		combined.Posts = map[string]*models.Post{}
	}

	view := &ChannelView{
		Order:          combined.Order,
		Posts:          combined.Posts,
		FlaggedPostIDs: []string{},
		Actions:        make(map[string]PostActions, len(combined.Order)),
	}
	now := s.clock.Now()
	for _, id := range combined.Order {
		p := combined.Posts[id]
		if posts.IsPostFlagged(id, flagged) {
			view.FlaggedPostIDs = append(view.FlaggedPostIDs, id)
		}
		view.Actions[id] = s.actions(access, p, now)
	}

	users, err := s.profiles(ctx, combined)
	if err != nil {
		return nil, err
	}
	view.Users = users

	slog.Debug("channel view prepared",
		"channelID", channelID,
		"userID", userID,
		"fetched", len(page.Order),
		"shown", len(combined.Order),
	)
	return view, nil
}

// WatchEditWindow calls onExpire once access.UserID can no longer edit post
// because its edit window closed. It returns nil when nothing is scheduled.
func (s *PostService) WatchEditWindow(access *Access, post *models.Post, onExpire func()) *clock.Timer {
	if access == nil || post == nil {
		return nil
	}
	timer := permissions.EditDisable(s.clock, access.State, s.config, s.license,
		access.TeamID, access.ChannelID, access.UserID, post,
		func() {
			slog.Debug("edit window closed", "postID", post.ID, "userID", access.UserID)
			if onExpire != nil {
				onExpire()
			}
		})
	if timer != nil {
		slog.Debug("watching edit window", "postID", post.ID, "userID", access.UserID)
	}
	return timer
}

func (s *PostService) actions(access *Access, post *models.Post, now time.Time) PostActions {
	return PostActions{
		CanEdit: permissions.CanEditPostAt(access.State, s.config, s.license,
			access.TeamID, access.ChannelID, access.UserID, post, now),
		CanDelete: permissions.CanDeletePost(access.State, s.config, s.license,
			access.TeamID, access.ChannelID, access.UserID, post, access.IsTeamAdmin, access.IsSystemAdmin),
	}
}

// preferences reads one category of a user's preferences, preferring the
// cache. Cache failures are logged and fall through to the store.
func (s *PostService) preferences(ctx context.Context, userID, category string) (models.Preferences, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetPreferences(ctx, userID, category)
		if err != nil {
			slog.Warn("preference cache read failed", "userID", userID, "category", category, "error", err)
		} else if ok {
			return models.PreferencesFrom(cached), nil
		}
	}

	list, err := s.prefs.GetByCategory(ctx, userID, category)
	if err != nil {
		slog.Error("failed to get preferences", "userID", userID, "category", category, "error", err)
		return nil, internalError()
	}

	if s.cache != nil {
		if err := s.cache.CachePreferences(ctx, userID, category, list); err != nil {
			slog.Warn("preference cache write failed", "userID", userID, "category", category, "error", err)
		}
	}
	return models.PreferencesFrom(list), nil
}

// profiles loads the authors of the shown posts and every user named in a
// combined post.
func (s *PostService) profiles(ctx context.Context, list models.PostList) (map[string]models.User, error) {
	seen := make(map[string]bool)
	var userIDs []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			userIDs = append(userIDs, id)
		}
	}
	for _, id := range list.Order {
		p := list.Posts[id]
		if p == nil {
			continue
		}
		add(p.UserID)
		if p.Props.UserActivity != nil {
			for _, uid := range p.Props.UserActivity.AllUserIDs {
				add(uid)
			}
		}
	}

	users := make(map[string]models.User, len(userIDs))
	if len(userIDs) == 0 {
		return users, nil
	}
	found, err := s.users.GetByIDs(ctx, userIDs)
	if err != nil {
		slog.Error("failed to get users", "count", len(userIDs), "error", err)
		return nil, internalError()
	}
	for _, u := range found {
		users[u.ID] = u
	}
	return users, nil
}

// filterJoinLeave drops the join and leave posts the user chose not to see.
func filterJoinLeave(list models.PostList, showJoinLeave bool, username string) models.PostList {
	if showJoinLeave {
		return list
	}
	out := models.PostList{
		Order: make([]string, 0, len(list.Order)),
		Posts: make(map[string]*models.Post, len(list.Posts)),
	}
	for _, id := range list.Order {
		p := list.Posts[id]
		if p == nil || posts.ShouldFilterJoinLeavePost(p, false, username) {
			continue
		}
		out.Order = append(out.Order, id)
		out.Posts[id] = p
	}
	return out
}
