package models

const (
	PreferenceCategoryFlaggedPost = "flagged_post"
	PreferenceCategoryDisplay     = "display_settings"

	// PreferenceNameJoinLeave in the display category is "false" when the
	// user hides join and leave messages.
	PreferenceNameJoinLeave = "join_leave"
)

type Preference struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

// Preferences maps PreferenceKey(category, name) to the preference value.
type Preferences map[string]string

// PreferenceKey builds the lookup key for a preference.
func PreferenceKey(category, name string) string {
	return category + "--" + name
}

// PreferencesFrom indexes a list of preferences by key.
func PreferencesFrom(list []Preference) Preferences {
	prefs := make(Preferences, len(list))
	for _, p := range list {
		prefs[PreferenceKey(p.Category, p.Name)] = p.Value
	}
	return prefs
}

// Has reports whether a preference exists, regardless of its value.
func (p Preferences) Has(category, name string) bool {
	_, ok := p[PreferenceKey(category, name)]
	return ok
}
