package posts

import (
	"strings"

	"github.com/plentylife/mattermost-redux/internal/ids"
	"github.com/plentylife/mattermost-redux/internal/models"
)

// MaxCombinedSystemPosts caps how many activity posts one combined post holds.
const MaxCombinedSystemPosts = 100

// Combiner merges consecutive user activity posts into combined posts.
// It holds no per-call state and is safe for concurrent use.
type Combiner struct {
	newID ids.Generator
}

// NewCombiner creates a Combiner that names new combined posts with gen.
func NewCombiner(gen ids.Generator) *Combiner {
	if gen == nil {
		gen = ids.NewID
	}
	return &Combiner{newID: gen}
}

var defaultCombiner = NewCombiner(ids.NewID)

// CombineSystemPosts merges runs of user activity posts in order into
// combined posts. See Combiner.Combine.
func CombineSystemPosts(order []string, posts map[string]*models.Post, channelID string) models.PostList {
	return defaultCombiner.Combine(order, posts, channelID)
}

// activityRun accumulates one run of consecutive activity posts. Its buffers
// are reused across runs; materialize copies them out.
type activityRun struct {
	posts      []*models.Post
	postIDs    []string
	messages   []string
	createAt   int64
	hasCreate  bool
	combinedID string
}

func (r *activityRun) size() int { return len(r.posts) }

func (r *activityRun) add(p *models.Post) {
	if !r.hasCreate || p.CreateAt < r.createAt {
		r.createAt = p.CreateAt
		r.hasCreate = true
	}

	if p.Type == models.PostTypeCombinedUserActivity {
		r.posts = append(r.posts, p.UserActivityPosts...)
		r.postIDs = append(r.postIDs, p.SystemPostIDs...)
		r.messages = append(r.messages, p.Props.Messages...)
		r.combinedID = p.ID
		return
	}

	r.posts = append(r.posts, p)
	r.postIDs = append(r.postIDs, p.ID)
	r.messages = append(r.messages, p.Message)
}

func (r *activityRun) reset() {
	clear(r.posts)
	r.posts = r.posts[:0]
	r.postIDs = r.postIDs[:0]
	r.messages = r.messages[:0]
	r.createAt = 0
	r.hasCreate = false
	r.combinedID = ""
}

func (r *activityRun) materialize(id, channelID string) *models.Post {
	activityPosts := make([]*models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if p == nil {
			continue
		}
		activityPosts = append(activityPosts, p.Clone())
	}
	messages := append([]string(nil), r.messages...)

	return &models.Post{
		ID:        id,
		ChannelID: channelID,
		CreateAt:  r.createAt,
		Message:   strings.Join(messages, "\n"),
		Type:      models.PostTypeCombinedUserActivity,
		Props: models.PostProps{
			Messages:     messages,
			UserActivity: CombineUserActivitySystemPost(activityPosts),
		},
		SystemPostIDs:     append([]string(nil), r.postIDs...),
		UserActivityPosts: activityPosts,
	}
}

// Combine walks order once and replaces every run of consecutive,
// non-deleted user activity posts (or existing combined posts) with a single
// combined post of at most MaxCombinedSystemPosts entries. An existing
// combined post inside a run is flattened into it and lends the run its id,
// unless doing so would exceed the cap, in which case the run is closed first.
//
// The returned map holds every input post, the combined posts, and deleted
// copies of the activity posts that were absorbed. The returned order is
// sorted by ComparePosts. Neither order nor posts is modified; when order
// is empty both are returned as given.
func (c *Combiner) Combine(order []string, posts map[string]*models.Post, channelID string) models.PostList {
	if len(order) == 0 {
		return models.PostList{Order: order, Posts: posts}
	}

	next := make(map[string]*models.Post, len(posts)+1)
	for id, p := range posts {
		next[id] = p
	}
	out := make([]string, 0, len(order))

	var run activityRun
	flush := func() {
		id := run.combinedID
		if id == "" {
			id = c.newID()
		}
		combined := run.materialize(id, channelID)
		next[combined.ID] = combined
		out = append(out, combined.ID)
		run.reset()
	}

	for _, id := range order {
		p := posts[id]
		if p == nil {
			continue
		}

		isActivity := IsUserActivityPost(p.Type)
		combinable := isActivity || p.Type == models.PostTypeCombinedUserActivity

		if combinable && p.DeleteAt == 0 {
			if !isActivity && run.size() > 0 && run.size()+len(p.UserActivityPosts) > MaxCombinedSystemPosts {
				flush()
			}
			run.add(p)
			if isActivity {
				if _, ok := next[p.ID]; ok {
					next[p.ID] = tombstone(p)
				}
			}
		}

		switch {
		case !combinable && run.size() > 0:
			flush()
			out = append(out, p.ID)
		case !combinable:
			out = append(out, p.ID)
		case run.size() >= MaxCombinedSystemPosts:
			flush()
		}
	}
	if run.size() > 0 {
		flush()
	}

	SortPostIDs(out, next)

	return models.PostList{Order: out, Posts: next}
}

func tombstone(p *models.Post) *models.Post {
	t := p.Clone()
	t.State = models.PostStateDeleted
	t.DeleteAt = 1
	return t
}
