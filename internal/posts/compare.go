package posts

import (
	"slices"

	"github.com/plentylife/mattermost-redux/internal/models"
)

// ComparePosts orders posts for display: posts that are pending or failed
// come first, then newer posts before older ones. A missing post sorts as a
// confirmed post created at time zero.
func ComparePosts(a, b *models.Post) int {
	aPending := IsPostPendingOrFailed(a)
	bPending := IsPostPendingOrFailed(b)
	if aPending && !bPending {
		return -1
	} else if !aPending && bPending {
		return 1
	}

	aCreate, bCreate := createAt(a), createAt(b)
	if aCreate > bCreate {
		return -1
	} else if aCreate < bCreate {
		return 1
	}
	return 0
}

// SortPostIDs sorts ids in place by ComparePosts. Ties keep their order.
func SortPostIDs(ids []string, posts map[string]*models.Post) {
	slices.SortStableFunc(ids, func(a, b string) int {
		return ComparePosts(posts[a], posts[b])
	})
}

func createAt(p *models.Post) int64 {
	if p == nil {
		return 0
	}
	return p.CreateAt
}
