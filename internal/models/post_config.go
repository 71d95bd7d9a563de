package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Values of PostConfig.RestrictPostDelete.
const (
	PermissionsAll         = "all"
	PermissionsTeamAdmin   = "team_admin"
	PermissionsSystemAdmin = "system_admin"
)

// Values of PostConfig.AllowEditPost.
const (
	AllowEditPostAlways    = "always"
	AllowEditPostNever     = "never"
	AllowEditPostTimeLimit = "time_limit"
)

// EditTimeLimit is the post edit window in seconds. The server sends it as
// either a number or a string; both decode to the same value and -1 means
// there is no limit.
type EditTimeLimit int64

const EditTimeUnlimited EditTimeLimit = -1

// Unlimited reports whether edits are never cut off by time.
func (l EditTimeLimit) Unlimited() bool { return l < 0 }

// Millis returns the window length in milliseconds.
func (l EditTimeLimit) Millis() int64 { return int64(l) * 1000 }

// ParseEditTimeLimit parses a decimal seconds value. Empty input is unlimited.
func ParseEditTimeLimit(s string) (EditTimeLimit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EditTimeUnlimited, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid post edit time limit %q: %w", s, err)
	}
	if n < 0 {
		return EditTimeUnlimited, nil
	}
	return EditTimeLimit(n), nil
}

func (l *EditTimeLimit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n int64
		if nerr := json.Unmarshal(data, &n); nerr != nil {
			return fmt.Errorf("cannot unmarshal post edit time limit %s: %w", string(data), err)
		}
		s = strconv.FormatInt(n, 10)
	}
	parsed, err := ParseEditTimeLimit(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l EditTimeLimit) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(l))
}

func (l *EditTimeLimit) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseEditTimeLimit(node.Value)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// PostConfig is the subset of server configuration that governs editing and
// deleting posts.
type PostConfig struct {
	RestrictPostDelete string        `json:"RestrictPostDelete" yaml:"restrict_post_delete"`
	AllowEditPost      string        `json:"AllowEditPost" yaml:"allow_edit_post"`
	PostEditTimeLimit  EditTimeLimit `json:"PostEditTimeLimit" yaml:"post_edit_time_limit"`
}

// DefaultPostConfig matches an unconfigured server.
func DefaultPostConfig() PostConfig {
	return PostConfig{
		RestrictPostDelete: PermissionsAll,
		AllowEditPost:      AllowEditPostAlways,
		PostEditTimeLimit:  EditTimeUnlimited,
	}
}

// License carries the server license flag exactly as the server reports it.
type License struct {
	IsLicensed string `json:"IsLicensed" yaml:"is_licensed"`
}

// Licensed reports whether the server runs with an enterprise license.
func (l License) Licensed() bool { return l.IsLicensed == "true" }
