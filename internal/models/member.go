package models

// TeamMember is a user's membership in a team together with the roles
// assigned to them there.
type TeamMember struct {
	TeamID  string   `json:"team_id"`
	UserID  string   `json:"user_id"`
	RoleIDs []string `json:"roles"`
}
