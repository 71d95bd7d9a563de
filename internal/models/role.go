package models

// Role is a named permission set granted within a team. The default role
// applies to every team member; SchemeAdmin marks the team admin role.
type Role struct {
	ID          string `json:"id"`
	TeamID      string `json:"team_id"`
	Name        string `json:"name"`
	Permissions int64  `json:"permissions,string"`
	IsDefault   bool   `json:"is_default"`
	SchemeAdmin bool   `json:"scheme_admin"`
}
