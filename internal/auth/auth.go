// Package auth owns the current authenticated identity. The Manager is
// the only component allowed to mutate session state; everything else
// reads copies.
package auth

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/kevin-411/college-network-app/internal/models"
)

// snapshotName keys the persisted session in the snapshot store.
const snapshotName = "auth-storage"

// Session is the full session state, and also the persisted layout:
// a flat JSON object of user, flags and token. No credential material
// is ever part of it.
type Session struct {
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsAdmin         bool         `json:"isAdmin"`
	Token           string       `json:"token,omitempty"`
}

// Backend resolves a credential pair to a session, standing in for the
// remote auth API. A nil session with a nil error means the credentials
// were rejected.
type Backend interface {
	Authenticate(ctx context.Context, identifier, secret string) (*Session, error)
}

// SnapshotStore persists the session across process restarts.
// *db.Snapshots satisfies it; tests use an in-memory fake.
type SnapshotStore interface {
	Save(name string, v any) error
	Load(name string, out any) (bool, error)
	Clear(name string) error
}

type Manager struct {
	mu      sync.Mutex
	backend Backend
	snaps   SnapshotStore
	log     *zap.Logger
	cur     Session
}

// NewManager builds the session store and restores any persisted session.
// Absence of a snapshot means logged out.
func NewManager(backend Backend, snaps SnapshotStore, log *zap.Logger) *Manager {
	m := &Manager{backend: backend, snaps: snaps, log: log}
	var prev Session
	ok, err := snaps.Load(snapshotName, &prev)
	if err != nil {
		log.Warn("session snapshot unreadable, starting logged out", zap.Error(err))
		return m
	}
	// isAdmin is only ever true alongside a concrete user.
	if ok && prev.User != nil && prev.IsAuthenticated {
		m.cur = prev
	}
	return m
}

// Login resolves the credential pair against the backend. It reports
// success as a boolean and never propagates a fault: a backend error is
// logged and treated as a failed login, leaving any prior session intact.
func (m *Manager) Login(ctx context.Context, identifier, secret string) bool {
	sess, err := m.backend.Authenticate(ctx, identifier, secret)
	if err != nil {
		m.log.Warn("login failed", zap.Error(err))
		return false
	}
	if sess == nil || sess.User == nil {
		return false
	}
	m.mu.Lock()
	m.cur = *sess
	m.mu.Unlock()
	m.persist()
	return true
}

// Logout clears the session unconditionally, including the persisted
// snapshot, so a fresh process start observes no authenticated user.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.cur = Session{}
	m.mu.Unlock()
	if err := m.snaps.Clear(snapshotName); err != nil {
		m.log.Warn("clearing session snapshot", zap.Error(err))
	}
}

// SetUser installs a user as authenticated without touching the admin
// flag or token.
func (m *Manager) SetUser(u models.User) {
	m.mu.Lock()
	m.cur.User = &u
	m.cur.IsAuthenticated = true
	m.mu.Unlock()
	m.persist()
}

// ProfileUpdate carries the fields UpdateProfile may merge. Nil fields
// are left untouched.
type ProfileUpdate struct {
	Username   *string `json:"username"`
	FullName   *string `json:"fullName"`
	College    *string `json:"college"`
	Year       *string `json:"year"`
	Avatar     *string `json:"avatar"`
	Bio        *string `json:"bio"`
	Followers  *int    `json:"followers"`
	Following  *int    `json:"following"`
	IsVerified *bool   `json:"isVerified"`
}

// UpdateProfile merges the given fields into the current user. A no-op
// when nobody is logged in.
func (m *Manager) UpdateProfile(up ProfileUpdate) {
	m.mu.Lock()
	if m.cur.User == nil {
		m.mu.Unlock()
		return
	}
	u := *m.cur.User
	if up.Username != nil {
		u.Username = *up.Username
	}
	if up.FullName != nil {
		u.FullName = *up.FullName
	}
	if up.College != nil {
		u.College = *up.College
	}
	if up.Year != nil {
		u.Year = *up.Year
	}
	if up.Avatar != nil {
		u.Avatar = *up.Avatar
	}
	if up.Bio != nil {
		u.Bio = *up.Bio
	}
	if up.Followers != nil {
		u.Followers = *up.Followers
	}
	if up.Following != nil {
		u.Following = *up.Following
	}
	if up.IsVerified != nil {
		u.IsVerified = *up.IsVerified
	}
	m.cur.User = &u
	m.mu.Unlock()
	m.persist()
}

// Current returns a copy of the session state.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := m.cur
	if sess.User != nil {
		u := *sess.User
		sess.User = &u
	}
	return sess
}

func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur.Token
}

func (m *Manager) persist() {
	sess := m.Current()
	if err := m.snaps.Save(snapshotName, sess); err != nil {
		m.log.Warn("persisting session snapshot", zap.Error(err))
	}
}
