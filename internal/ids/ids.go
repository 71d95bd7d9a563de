package ids

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// Length of every id produced by NewID.
const Length = 26

var encoding = base32.NewEncoding("ybndrfg8ejkmcpqxot1uwisza345h769").WithPadding(base32.NoPadding)

// NewID returns a random 26 character id in the alphabet used by the server
// for post, user and channel ids.
func NewID() string {
	u := uuid.New()
	return encoding.EncodeToString(u[:])
}

// IsValid reports whether id has the shape of an id produced by NewID.
func IsValid(id string) bool {
	if len(id) != Length {
		return false
	}
	return strings.IndexFunc(id, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) == -1
}

// Generator produces ids. NewID satisfies it.
type Generator func() string
