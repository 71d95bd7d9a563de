package posts

import (
	"slices"

	"github.com/plentylife/mattermost-redux/internal/models"
)

// activityPriority fixes the order of entries in a combined post summary.
var activityPriority = map[models.PostType]int{
	models.PostTypeJoinTeam:          0,
	models.PostTypeAddToTeam:         1,
	models.PostTypeRemoveFromTeam:    2,
	models.PostTypeLeaveTeam:         3,
	models.PostTypeJoinChannel:       4,
	models.PostTypeAddToChannel:      5,
	models.PostTypeRemoveFromChannel: 6,
	models.PostTypeLeaveChannel:      7,
}

func activityRank(t models.PostType) int {
	if rank, ok := activityPriority[t]; ok {
		return rank
	}
	return len(activityPriority)
}

func isAddActivity(t models.PostType) bool {
	return t == models.PostTypeAddToTeam || t == models.PostTypeAddToChannel
}

// activityBucket collects the users touched by one post type, in the order
// they were first seen. Add types are further split by acting user.
type activityBucket struct {
	postType models.PostType
	userIDs  []string
	actors   []string
	added    map[string][]string
}

func (b *activityBucket) record(p *models.Post) {
	target := p.Props.ActivityTarget(p.Type, p.UserID)
	if target == "" {
		return
	}
	if !isAddActivity(b.postType) {
		if !slices.Contains(b.userIDs, target) {
			b.userIDs = append(b.userIDs, target)
		}
		return
	}

	actor := p.UserID
	targets, seen := b.added[actor]
	if !seen {
		b.actors = append(b.actors, actor)
	}
	if !slices.Contains(targets, target) {
		b.added[actor] = append(targets, target)
	}
}

// CombineUserActivitySystemPost summarises a run of user activity posts.
// It returns nil for an empty run.
func CombineUserActivitySystemPost(systemPosts []*models.Post) *models.UserActivity {
	if len(systemPosts) == 0 {
		return nil
	}

	var buckets []*activityBucket
	byType := make(map[models.PostType]*activityBucket)
	for _, p := range systemPosts {
		if p == nil {
			continue
		}
		b, ok := byType[p.Type]
		if !ok {
			b = &activityBucket{postType: p.Type, added: make(map[string][]string)}
			byType[p.Type] = b
			buckets = append(buckets, b)
		}
		b.record(p)
	}

	activity := &models.UserActivity{
		AllUserIDs:  []string{},
		MessageData: []models.ActivityEntry{},
	}
	var touched []string
	for _, b := range buckets {
		if isAddActivity(b.postType) {
			for _, actor := range b.actors {
				targets := b.added[actor]
				activity.MessageData = append(activity.MessageData, models.ActivityEntry{
					PostType: b.postType,
					UserIDs:  targets,
					ActorID:  actor,
				})
				touched = append(touched, targets...)
				touched = append(touched, actor)
			}
			continue
		}
		activity.MessageData = append(activity.MessageData, models.ActivityEntry{
			PostType: b.postType,
			UserIDs:  b.userIDs,
		})
		touched = append(touched, b.userIDs...)
	}

	slices.SortStableFunc(activity.MessageData, func(a, b models.ActivityEntry) int {
		return activityRank(a.PostType) - activityRank(b.PostType)
	})

	seen := make(map[string]struct{}, len(touched))
	for _, id := range touched {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		activity.AllUserIDs = append(activity.AllUserIDs, id)
	}

	return activity
}
