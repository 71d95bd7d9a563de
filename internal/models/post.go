package models

import "strings"

// PostType distinguishes ordinary posts from server-generated system posts.
type PostType string

const SystemMessagePrefix = "system_"

const (
	PostTypeDefault               PostType = ""
	PostTypeJoinLeave             PostType = "system_join_leave"
	PostTypeJoinChannel           PostType = "system_join_channel"
	PostTypeLeaveChannel          PostType = "system_leave_channel"
	PostTypeAddRemove             PostType = "system_add_remove"
	PostTypeAddToChannel          PostType = "system_add_to_channel"
	PostTypeRemoveFromChannel     PostType = "system_remove_from_channel"
	PostTypeJoinTeam              PostType = "system_join_team"
	PostTypeLeaveTeam             PostType = "system_leave_team"
	PostTypeAddToTeam             PostType = "system_add_to_team"
	PostTypeRemoveFromTeam        PostType = "system_remove_from_team"
	PostTypeHeaderChange          PostType = "system_header_change"
	PostTypeChannelDeleted        PostType = "system_channel_deleted"
	PostTypeChannelUnarchived     PostType = "system_channel_restored"
	PostTypeEphemeral             PostType = "system_ephemeral"
	PostTypeEphemeralAddToChannel PostType = "system_ephemeral_add_to_channel"
	PostTypeCombinedUserActivity  PostType = "system_combined_user_activity"
)

// IsSystem reports whether t carries the system message prefix.
func (t PostType) IsSystem() bool {
	return t != "" && strings.HasPrefix(string(t), SystemMessagePrefix)
}

// PostState marks client-side lifecycle changes of a post.
type PostState string

const (
	PostStateNone    PostState = ""
	PostStateDeleted PostState = "DELETED"
)

// UserActivityPostTypes are the system post types merged into combined
// user activity posts.
var UserActivityPostTypes = []PostType{
	PostTypeAddToChannel,
	PostTypeJoinChannel,
	PostTypeLeaveChannel,
	PostTypeRemoveFromChannel,
	PostTypeAddToTeam,
	PostTypeJoinTeam,
	PostTypeLeaveTeam,
	PostTypeRemoveFromTeam,
}

// IgnorePostTypes are hidden from unread and notification counting.
var IgnorePostTypes = []PostType{
	PostTypeAddRemove,
	PostTypeAddToChannel,
	PostTypeChannelDeleted,
	PostTypeChannelUnarchived,
	PostTypeJoinLeave,
	PostTypeJoinChannel,
	PostTypeLeaveChannel,
	PostTypeRemoveFromChannel,
	PostTypeJoinTeam,
	PostTypeLeaveTeam,
	PostTypeAddToTeam,
	PostTypeRemoveFromTeam,
}

// Post is a single message record as held in the client store. Combined
// user activity posts also fill SystemPostIDs and UserActivityPosts.
type Post struct {
	ID            string    `json:"id"`
	CreateAt      int64     `json:"create_at"`
	UpdateAt      int64     `json:"update_at"`
	EditAt        int64     `json:"edit_at"`
	DeleteAt      int64     `json:"delete_at"`
	UserID        string    `json:"user_id"`
	ChannelID     string    `json:"channel_id"`
	RootID        string    `json:"root_id"`
	Message       string    `json:"message"`
	Type          PostType  `json:"type"`
	Props         PostProps `json:"props"`
	State         PostState `json:"state,omitempty"`
	PendingPostID string    `json:"pending_post_id,omitempty"`
	Failed        bool      `json:"failed,omitempty"`

	SystemPostIDs     []string `json:"system_post_ids,omitempty"`
	UserActivityPosts []*Post  `json:"user_activity_posts,omitempty"`
}

// Clone returns a copy of p that shares no slices or pointers with it.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	c.Props = p.Props.Clone()
	if p.SystemPostIDs != nil {
		c.SystemPostIDs = append([]string(nil), p.SystemPostIDs...)
	}
	if p.UserActivityPosts != nil {
		c.UserActivityPosts = make([]*Post, len(p.UserActivityPosts))
		for i, ap := range p.UserActivityPosts {
			c.UserActivityPosts[i] = ap.Clone()
		}
	}
	return &c
}

// PostList is an ordered set of post ids together with the records they name.
type PostList struct {
	Order []string         `json:"order"`
	Posts map[string]*Post `json:"posts"`
}
