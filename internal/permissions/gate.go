package permissions

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/plentylife/mattermost-redux/internal/models"
	"github.com/plentylife/mattermost-redux/internal/posts"
)

// editGrace is added to the remaining edit window before EditDisable fires.
const editGrace = time.Second

func newPermissions(state State) bool {
	return state != nil && state.HasNewPermissions()
}

// CanDeletePost reports whether userID may delete post in the channel.
// isAdmin and isSystemAdmin describe the acting user and only matter for
// servers without role based permissions.
func CanDeletePost(state State, cfg models.PostConfig, license models.License, teamID, channelID, userID string, post *models.Post, isAdmin, isSystemAdmin bool) bool {
	if post == nil {
		return false
	}

	isOwner := posts.IsPostOwner(userID, post)

	if newPermissions(state) {
		canDelete := state.HaveChannelPermission(teamID, channelID, PermDeletePost)
		if !isOwner {
			return canDelete && state.HaveChannelPermission(teamID, channelID, PermDeleteOthersPosts)
		}
		return canDelete
	}

	if license.Licensed() {
		switch cfg.RestrictPostDelete {
		case models.PermissionsAll:
			return isOwner || isAdmin
		case models.PermissionsTeamAdmin:
			return isAdmin
		case models.PermissionsSystemAdmin:
			return isSystemAdmin
		default:
			return false
		}
	}
	return isOwner || isAdmin
}

// CanEditPost reports whether userID may edit post right now.
func CanEditPost(state State, cfg models.PostConfig, license models.License, teamID, channelID, userID string, post *models.Post) bool {
	return CanEditPostAt(state, cfg, license, teamID, channelID, userID, post, time.Now())
}

// CanEditPostAt is CanEditPost evaluated at now. System messages are never
// editable. Without a license only the owner may edit and no time limit
// applies.
func CanEditPostAt(state State, cfg models.PostConfig, license models.License, teamID, channelID, userID string, post *models.Post, now time.Time) bool {
	if post == nil || posts.IsSystemMessage(post) {
		return false
	}

	isOwner := posts.IsPostOwner(userID, post)
	if !license.Licensed() {
		return isOwner
	}

	var canEdit bool
	if newPermissions(state) {
		canEdit = state.HaveChannelPermission(teamID, channelID, PermEditPost)
		if !isOwner {
			canEdit = canEdit && state.HaveChannelPermission(teamID, channelID, PermEditOthersPosts)
		}
	} else {
		canEdit = isOwner && cfg.AllowEditPost != models.AllowEditPostNever
	}

	if deadline, ok := editDeadline(state, cfg, license, post); ok && deadline-now.UnixMilli() <= 0 {
		canEdit = false
	}
	return canEdit
}

// editDeadline returns the time, in ms since the epoch, at which editing
// post stops being allowed. ok is false when no time limit applies.
func editDeadline(state State, cfg models.PostConfig, license models.License, post *models.Post) (int64, bool) {
	if !license.Licensed() || cfg.PostEditTimeLimit.Unlimited() {
		return 0, false
	}
	if !newPermissions(state) && cfg.AllowEditPost != models.AllowEditPostTimeLimit {
		return 0, false
	}
	return post.CreateAt + cfg.PostEditTimeLimit.Millis(), true
}

// EditDisable schedules fire to run one second after the edit window of
// post closes. It returns the pending timer so the caller can stop it, or
// nil when the post is not editable now or never stops being editable.
func EditDisable(clk clock.Clock, state State, cfg models.PostConfig, license models.License, teamID, channelID, userID string, post *models.Post, fire func()) *clock.Timer {
	if clk == nil {
		clk = clock.New()
	}
	now := clk.Now()

	if !CanEditPostAt(state, cfg, license, teamID, channelID, userID, post, now) {
		return nil
	}

	deadline, ok := editDeadline(state, cfg, license, post)
	if !ok {
		return nil
	}
	timeLeft := time.Duration(deadline-now.UnixMilli()) * time.Millisecond
	if timeLeft <= 0 {
		return nil
	}
	return clk.AfterFunc(timeLeft+editGrace, fire)
}
