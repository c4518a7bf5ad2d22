package cache

import (
	"context"

	"github.com/aioseoassistant/SMSApp/internal/domain"
)

// ListingCache holds the most recent messages so repeated reads skip the
// database. Implementations are best-effort: a miss or a cache failure just
// falls through to the store.
type ListingCache interface {
	GetRecent(ctx context.Context, limit int) ([]domain.MessageRecord, bool)
	SetRecent(ctx context.Context, records []domain.MessageRecord)
	Invalidate(ctx context.Context)
}

// Nop is used when no redis is configured.
type Nop struct{}

func (Nop) GetRecent(context.Context, int) ([]domain.MessageRecord, bool) { return nil, false }
func (Nop) SetRecent(context.Context, []domain.MessageRecord)             {}
func (Nop) Invalidate(context.Context)                                    {}
