package models

// ChannelOverride adjusts a role's permissions inside a single channel.
type ChannelOverride struct {
	ChannelID string `json:"channel_id"`
	RoleID    string `json:"role_id"`
	Allow     int64  `json:"allow,string"`
	Deny      int64  `json:"deny,string"`
}
