// Package cache holds the process-wide snapshots that back the job-post
// list endpoints. Every projection shares one timestamp: a write to any
// snapshot refreshes it, and clearing drops everything at once.
package cache

import (
	"strings"
	"sync"
	"time"

	"naukrivacancy/internal/models"
)

// TTL is the freshness window shared by every projection.
const TTL = 60 * time.Second

// Projection names a filtered view over job posts.
type Projection int

const (
	All Projection = iota
	AdmitCard
	Result
	AnswerKey
	Admission
	Apply
)

// Page is one slice of a projection after search filtering.
type Page struct {
	Posts     []models.JobPost
	Total     int
	PageCount int
}

// Cache guards its snapshots with a mutex; snapshots are replaced whole,
// never mutated in place.
type Cache struct {
	mu      sync.Mutex
	now     func() time.Time
	ttl     time.Duration
	posts   map[Projection][]models.JobPost
	byState map[string][]models.JobPost
	stamp   time.Time
}

func New(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		now:     now,
		ttl:     ttl,
		posts:   make(map[Projection][]models.JobPost),
		byState: make(map[string][]models.JobPost),
	}
}

// Lookup returns a paginated page of the projection's snapshot, or
// ok=false when the snapshot is empty or older than the TTL.
func (c *Cache) Lookup(p Projection, searchQuery string, skip, limit int) (Page, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	posts := c.posts[p]
	if len(posts) == 0 || !c.fresh() {
		return Page{}, false
	}
	if searchQuery != "" {
		posts = filterPosts(p, posts, searchQuery)
	}
	return paginate(posts, skip, limit), true
}

// LookupState is Lookup for the per-state projection; an empty state
// falls back to the "all" key. Search matches postName only.
func (c *Cache) LookupState(state, searchQuery string, skip, limit int) (Page, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	posts := c.byState[stateKey(state)]
	if len(posts) == 0 || !c.fresh() {
		return Page{}, false
	}
	if searchQuery != "" {
		filtered := make([]models.JobPost, 0, len(posts))
		for _, post := range posts {
			if containsFold(post.PostName, searchQuery) {
				filtered = append(filtered, post)
			}
		}
		posts = filtered
	}
	return paginate(posts, skip, limit), true
}

// Store replaces the projection's snapshot and refreshes the shared
// timestamp.
func (c *Cache) Store(p Projection, posts []models.JobPost) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts[p] = posts
	c.stamp = c.now()
}

func (c *Cache) StoreState(state string, posts []models.JobPost) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byState[stateKey(state)] = posts
	c.stamp = c.now()
}

// Clear drops every snapshot and zeroes the timestamp. Called on every
// job-post create, update and delete; invalidation is deliberately
// coarse.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = make(map[Projection][]models.JobPost)
	c.byState = make(map[string][]models.JobPost)
	c.stamp = time.Time{}
}

func (c *Cache) fresh() bool {
	return !c.stamp.IsZero() && c.now().Sub(c.stamp) < c.ttl
}

func stateKey(state string) string {
	if state == "" {
		return "all"
	}
	return state
}

// filterPosts applies the case-insensitive substring search over the
// fields each projection designates: the default view also matches
// description and state, the admission view matches description, the
// rest match postName only.
func filterPosts(p Projection, posts []models.JobPost, q string) []models.JobPost {
	filtered := make([]models.JobPost, 0, len(posts))
	for _, post := range posts {
		if matches(p, post, q) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

func matches(p Projection, post models.JobPost, q string) bool {
	if containsFold(post.PostName, q) {
		return true
	}
	switch p {
	case All:
		return containsFold(post.Description, q) || containsFold(post.State, q)
	case Admission:
		return containsFold(post.Description, q)
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func paginate(posts []models.JobPost, skip, limit int) Page {
	total := len(posts)
	if skip < 0 {
		skip = 0
	}
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}
	pageCount := 0
	if limit > 0 {
		pageCount = (total + limit - 1) / limit
	}
	return Page{Posts: posts[skip:end], Total: total, PageCount: pageCount}
}
