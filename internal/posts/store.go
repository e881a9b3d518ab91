// Package posts owns the authoritative, mutable timeline. The store's
// canonical order is most recent first; read views inherit it unless
// they re-sort.
package posts

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kevin-411/college-network-app/internal/models"
	"github.com/kevin-411/college-network-app/internal/seed"
)

// Held error strings, surfaced to callers via Err().
const (
	errFetch  = "Failed to fetch posts"
	errCreate = "Failed to create post"
)

// Draft carries the caller-supplied fields of a new post. Content and
// author emptiness checks are a caller responsibility.
type Draft struct {
	AuthorID string      `json:"authorId"`
	Author   models.User `json:"author"`
	Content  string      `json:"content"`
	Tags     []string    `json:"tags"`
	Images   []string    `json:"images"`
	College  string      `json:"college"`
}

// Backend is the simulated remote API the store suspends on. Only
// FetchAll and Create go through it; likes, deletes and updates are
// synchronous local mutations.
type Backend interface {
	FetchPosts(ctx context.Context) ([]models.Post, error)
	SavePost(ctx context.Context, draft Draft) error
}

type Store struct {
	mu      sync.Mutex
	backend Backend
	log     *zap.Logger

	posts   []models.Post
	loading bool
	err     string
	lastID  int64
}

// NewStore builds the content store pre-seeded with the canonical
// collection, matching what a first FetchAll would load.
func NewStore(backend Backend, log *zap.Logger) *Store {
	return &Store{backend: backend, log: log, posts: seed.Posts()}
}

// FetchAll replaces the working set with whatever the backend serves.
// On fault the existing collection is kept (stale reads beat no reads)
// and the error string is set.
func (s *Store) FetchAll(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	fetched, err := s.backend.FetchPosts(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Warn("fetching posts", zap.Error(err))
		s.err = errFetch
		return
	}
	s.posts = fetched
}

// Create assigns a fresh id, zeroes the counters, snapshots the current
// instant and prepends the post. On fault nothing is inserted and the
// second return is false.
func (s *Store) Create(ctx context.Context, draft Draft) (models.Post, bool) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	err := s.backend.SavePost(ctx, draft)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Warn("creating post", zap.Error(err))
		s.err = errCreate
		return models.Post{}, false
	}

	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}
	p := models.Post{
		ID:        s.nextIDLocked(),
		AuthorID:  draft.AuthorID,
		Author:    draft.Author,
		Content:   draft.Content,
		Images:    draft.Images,
		Tags:      tags,
		Comments:  []models.Comment{},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		College:   draft.College,
	}
	s.posts = append([]models.Post{p}, s.posts...)
	return p, true
}

// nextIDLocked derives ids from the clock and bumps on collision, so ids
// are strictly monotonic across calls within a session.
func (s *Store) nextIDLocked() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// Like adds exactly one to the matching post's counter. Not a toggle:
// undo state is a view concern. No-op on an unknown id.
func (s *Store) Like(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Likes++
			return
		}
	}
}

// Remove deletes the matching post. Removing an absent id is a no-op,
// so repeated removes are idempotent.
func (s *Store) Remove(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return
		}
	}
}

// PostUpdate carries the fields Update may shallow-merge. Nil fields are
// left untouched.
type PostUpdate struct {
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
	Images  *[]string `json:"images"`
	Likes   *int      `json:"likes"`
	Shares  *int      `json:"shares"`
}

// Update shallow-merges the given fields into the matching post; no-op
// on an unknown id.
func (s *Store) Update(postID string, up PostUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		if up.Content != nil {
			s.posts[i].Content = *up.Content
		}
		if up.Tags != nil {
			s.posts[i].Tags = *up.Tags
		}
		if up.Images != nil {
			s.posts[i].Images = *up.Images
		}
		if up.Likes != nil {
			s.posts[i].Likes = *up.Likes
		}
		if up.Shares != nil {
			s.posts[i].Shares = *up.Shares
		}
		return
	}
}

// Posts returns a copy of the collection in canonical order. Mutations
// are atomic with respect to it: a reader never sees a half-applied
// merge or a duplicate id.
func (s *Store) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
