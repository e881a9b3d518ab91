package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kevin-411/college-network-app/internal/seed"
)

// Reserved administrator credentials and the fixed session tokens.
const (
	adminEmail  = "admin@collegeNetwork.edu"
	adminSecret = "admin123"
	adminToken  = "admin-token-123"
	userToken   = "user-token-123"
)

// Directory is the stock Backend: a fixed member directory fronted by a
// simulated network delay. The administrator secret is held only as a
// bcrypt hash.
type Directory struct {
	delay     time.Duration
	adminHash []byte
}

// NewDirectory builds the directory with the given simulated round-trip
// latency. Zero latency is valid and what tests use.
func NewDirectory(delay time.Duration) *Directory {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminSecret), bcrypt.DefaultCost)
	if err != nil {
		// GenerateFromPassword only fails on an invalid cost.
		panic(err)
	}
	return &Directory{delay: delay, adminHash: hash}
}

// Authenticate resolves the pair deterministically: the exact admin pair
// yields the administrator session, any other non-empty pair yields the
// demo member, anything else is rejected.
func (d *Directory) Authenticate(ctx context.Context, identifier, secret string) (*Session, error) {
	if err := sleep(ctx, d.delay); err != nil {
		return nil, err
	}
	if identifier == adminEmail && bcrypt.CompareHashAndPassword(d.adminHash, []byte(secret)) == nil {
		u := seed.AdminUser()
		return &Session{User: &u, IsAuthenticated: true, IsAdmin: true, Token: adminToken}, nil
	}
	if identifier != "" && secret != "" {
		u := seed.DemoUser(identifier)
		return &Session{User: &u, IsAuthenticated: true, Token: userToken}, nil
	}
	return nil, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
