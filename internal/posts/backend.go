package posts

import (
	"context"
	"time"

	"github.com/kevin-411/college-network-app/internal/models"
	"github.com/kevin-411/college-network-app/internal/seed"
)

// SeedBackend is the stock Backend: the canonical seed collection behind
// a simulated network delay. Writes are acknowledged and dropped; the
// store's optimistic insert is the only record of them.
type SeedBackend struct {
	fetchDelay time.Duration
	saveDelay  time.Duration
}

// NewSeedBackend builds the backend with the given fetch latency; saves
// take half of it. Zero latency is valid and what tests use.
func NewSeedBackend(latency time.Duration) *SeedBackend {
	return &SeedBackend{fetchDelay: latency, saveDelay: latency / 2}
}

func (b *SeedBackend) FetchPosts(ctx context.Context) ([]models.Post, error) {
	if err := wait(ctx, b.fetchDelay); err != nil {
		return nil, err
	}
	return seed.Posts(), nil
}

func (b *SeedBackend) SavePost(ctx context.Context, draft Draft) error {
	return wait(ctx, b.saveDelay)
}

func wait(ctx context.Context, d time.Duration) error {
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
