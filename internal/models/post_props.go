package models

import "encoding/json"

// PostProps holds the auxiliary fields a post may carry. Which fields are set
// depends on the post type:
//
//	join/leave channel and team   Username
//	add to channel and team       AddedUserID, AddedUsername (actor is Post.UserID)
//	remove from channel and team  RemovedUserID, RemovedUsername
//	combined user activity        Messages, UserActivity
//	webhook posts                 FromWebhook
type PostProps struct {
	Username        string        `json:"username,omitempty"`
	AddedUserID     string        `json:"addedUserId,omitempty"`
	AddedUsername   string        `json:"addedUsername,omitempty"`
	RemovedUserID   string        `json:"removedUserId,omitempty"`
	RemovedUsername string        `json:"removedUsername,omitempty"`
	FromWebhook     PropFlag      `json:"from_webhook,omitempty"`
	Messages        []string      `json:"messages,omitempty"`
	UserActivity    *UserActivity `json:"user_activity,omitempty"`
}

// PropFlag is a boolean prop that arrives either as a JSON boolean or as the
// string "true". Any other value reads as false.
type PropFlag bool

func (f *PropFlag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case bool:
		*f = PropFlag(x)
	case string:
		*f = x == "true"
	default:
		*f = false
	}
	return nil
}

func (f PropFlag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte(`"true"`), nil
	}
	return []byte(`"false"`), nil
}

// Clone returns a deep copy of the props.
func (p PostProps) Clone() PostProps {
	c := p
	if p.Messages != nil {
		c.Messages = append([]string(nil), p.Messages...)
	}
	c.UserActivity = p.UserActivity.Clone()
	return c
}

// ActivityTarget returns the user an activity post of type t is about.
// Adds name the added user, channel removals the removed user, and every
// other type the post author.
func (p PostProps) ActivityTarget(t PostType, authorID string) string {
	switch t {
	case PostTypeAddToChannel, PostTypeAddToTeam:
		return p.AddedUserID
	case PostTypeRemoveFromChannel:
		return p.RemovedUserID
	default:
		return authorID
	}
}

// MentionsUsername reports whether any of the username fields equals name.
// An empty name never matches.
func (p PostProps) MentionsUsername(name string) bool {
	if name == "" {
		return false
	}
	return p.Username == name || p.AddedUsername == name || p.RemovedUsername == name
}

// UserActivity summarises a run of user activity posts.
type UserActivity struct {
	AllUserIDs  []string        `json:"allUserIds"`
	MessageData []ActivityEntry `json:"messageData"`
}

// ActivityEntry lists the users affected by one post type. ActorID is set
// for add types, where one entry exists per acting user.
type ActivityEntry struct {
	PostType PostType `json:"postType"`
	UserIDs  []string `json:"userIds"`
	ActorID  string   `json:"actorId,omitempty"`
}

// Clone returns a deep copy of the summary.
func (a *UserActivity) Clone() *UserActivity {
	if a == nil {
		return nil
	}
	c := &UserActivity{
		AllUserIDs: append([]string(nil), a.AllUserIDs...),
	}
	if a.MessageData != nil {
		c.MessageData = make([]ActivityEntry, len(a.MessageData))
		for i, e := range a.MessageData {
			e.UserIDs = append([]string(nil), e.UserIDs...)
			c.MessageData[i] = e
		}
	}
	return c
}
