package blog

import (
	"database/sql"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// PostCache is an in-memory view of the post index with TTL. Every indexed
// post can be fetched by slug, but only listable posts appear in listings,
// tag pages and feeds, and only their tags get a listing.
type PostCache struct {
	mu         sync.RWMutex
	posts      []Post
	listed     []Post
	tags       []string
	tagsBySlug map[string]string
	fetched    time.Time
	ttl        time.Duration
	store      *Store
	listable   func(Post) bool
}

// NewPostCache creates a PostCache backed by the given Store. A nil listable
// lists every post.
func NewPostCache(s *Store, ttl time.Duration, listable func(Post) bool) *PostCache {
	if listable == nil {
		listable = func(Post) bool { return true }
	}
	return &PostCache{store: s, ttl: ttl, listable: listable}
}

func (c *PostCache) valid() bool {
	return !c.fetched.IsZero() && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.listed = nil
	c.tags = nil
	c.tagsBySlug = nil
	c.fetched = time.Time{}
	c.mu.Unlock()
}

func (c *PostCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.store.ListPosts("")
	if err != nil {
		return err
	}
	var listed []Post
	for _, p := range posts {
		if c.listable(p) {
			listed = append(listed, p)
		}
	}
	tags := collectTags(listed)
	bySlug, err := tagIndex(tags)
	if err != nil {
		return err
	}
	c.posts = posts
	c.listed = listed
	c.tags = tags
	c.tagsBySlug = bySlug
	c.fetched = time.Now()
	return nil
}

type snapshot struct {
	posts, listed []Post
	tags          []string
	tagsBySlug    map[string]string
}

// ensureLoaded returns the cached state after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded() (snapshot, error) {
	c.mu.RLock()
	if c.valid() {
		s := c.snapshot()
		c.mu.RUnlock()
		return s, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return snapshot{}, err
	}
	return c.snapshot(), nil
}

func (c *PostCache) snapshot() snapshot {
	return snapshot{posts: c.posts, listed: c.listed, tags: c.tags, tagsBySlug: c.tagsBySlug}
}

// ListPosts returns listable posts, optionally filtered by tag.
func (c *PostCache) ListPosts(tag string) ([]Post, error) {
	s, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return s.listed, nil
	}
	normalized := normalizeTag(tag)
	var filtered []Post
	for _, p := range s.listed {
		for _, t := range p.Tags {
			if normalizeTag(t) == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

// ListTags returns the tags of listable posts, sorted.
func (c *PostCache) ListTags() ([]string, error) {
	s, err := c.ensureLoaded()
	return s.tags, err
}

// GetPost returns a single post by slug, listable or not.
func (c *PostCache) GetPost(slug string) (Post, error) {
	s, err := c.ensureLoaded()
	if err != nil {
		return Post{}, err
	}
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// TagBySlug resolves a tag listing slug (see TagSlug) back to its tag.
func (c *PostCache) TagBySlug(slug string) (string, bool) {
	s, err := c.ensureLoaded()
	if err != nil || slug == "" {
		return "", false
	}
	tag, ok := s.tagsBySlug[slug]
	return tag, ok
}
