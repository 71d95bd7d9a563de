// Package posts classifies posts, orders them, and merges runs of user
// activity system posts into combined posts.
package posts

import (
	"slices"

	"github.com/plentylife/mattermost-redux/internal/models"
)

// joinLeavePostTypes are hidden when the user turns off join/leave messages.
var joinLeavePostTypes = []models.PostType{
	models.PostTypeJoinLeave,
	models.PostTypeJoinChannel,
	models.PostTypeLeaveChannel,
	models.PostTypeAddRemove,
	models.PostTypeAddToChannel,
	models.PostTypeRemoveFromChannel,
	models.PostTypeJoinTeam,
	models.PostTypeLeaveTeam,
	models.PostTypeAddToTeam,
	models.PostTypeRemoveFromTeam,
}

// IsPostFlagged reports whether the user flagged the post.
func IsPostFlagged(postID string, prefs models.Preferences) bool {
	return prefs.Has(models.PreferenceCategoryFlaggedPost, postID)
}

func IsSystemMessage(post *models.Post) bool {
	return post != nil && post.Type.IsSystem()
}

func IsFromWebhook(post *models.Post) bool {
	return post != nil && bool(post.Props.FromWebhook)
}

// IsPostEphemeral reports whether the post exists only on this client,
// either as an ephemeral system message or as a locally deleted post.
func IsPostEphemeral(post *models.Post) bool {
	if post == nil {
		return false
	}
	return post.Type == models.PostTypeEphemeral ||
		post.Type == models.PostTypeEphemeralAddToChannel ||
		post.State == models.PostStateDeleted
}

func ShouldIgnorePost(post *models.Post) bool {
	return post != nil && slices.Contains(models.IgnorePostTypes, post.Type)
}

func IsUserActivityPost(t models.PostType) bool {
	return slices.Contains(models.UserActivityPostTypes, t)
}

func IsPostOwner(userID string, post *models.Post) bool {
	return post != nil && userID == post.UserID
}

func IsEdited(post *models.Post) bool {
	return post != nil && post.EditAt > 0
}

// IsPostPendingOrFailed reports whether the post has not been confirmed by
// the server yet, or failed to send.
func IsPostPendingOrFailed(post *models.Post) bool {
	if post == nil {
		return false
	}
	return post.Failed || (post.PendingPostID != "" && post.ID == post.PendingPostID)
}

// ShouldFilterJoinLeavePost reports whether the post should be hidden when
// the user has join/leave messages turned off. Messages about the current
// user are always shown.
func ShouldFilterJoinLeavePost(post *models.Post, showJoinLeave bool, currentUsername string) bool {
	if showJoinLeave || post == nil {
		return false
	}
	if !slices.Contains(joinLeavePostTypes, post.Type) {
		return false
	}
	if post.Props.MentionsUsername(currentUsername) {
		return false
	}
	return true
}

// GetLastCreateAt returns the newest CreateAt among posts, or 0.
func GetLastCreateAt(posts []*models.Post) int64 {
	var last int64
	found := false
	for _, p := range posts {
		if p == nil {
			continue
		}
		if !found || p.CreateAt > last {
			last = p.CreateAt
			found = true
		}
	}
	return last
}
