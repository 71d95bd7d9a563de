package models

type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Nickname      string `json:"nickname,omitempty"`
	IsSystemAdmin bool   `json:"is_system_admin"`
	DeleteAt      int64  `json:"delete_at"`
}
