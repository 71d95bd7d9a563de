package models

type ChannelType string

const (
	ChannelTypeOpen    ChannelType = "O"
	ChannelTypePrivate ChannelType = "P"
	ChannelTypeDirect  ChannelType = "D"
	ChannelTypeGroup   ChannelType = "G"
)

type Channel struct {
	ID          string      `json:"id"`
	TeamID      string      `json:"team_id"`
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	Type        ChannelType `json:"type"`
}
