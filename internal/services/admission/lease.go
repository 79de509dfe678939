package admission

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/promptgate/promptgate/pkg/models"
	"github.com/promptgate/promptgate/pkg/quota"
)

const releaseTimeout = 10 * time.Second

// Lease is one granted reservation. Release is idempotent: however many code
// paths run it (completion, failure unwinding, consumer disconnect), the slot
// goes back exactly once.
type Lease struct {
	identity string
	record   models.QuotaRecord
	store    quota.Store
	once     sync.Once
	l        *zap.SugaredLogger
}

func NewLease(identity string, rec models.QuotaRecord, store quota.Store, l *zap.Logger) *Lease {
	return &Lease{
		identity: identity,
		record:   rec,
		store:    store,
		l:        l.Sugar(),
	}
}

func (le *Lease) Identity() string {
	return le.identity
}

// Record is the post-reservation snapshot taken when the lease was granted.
func (le *Lease) Record() models.QuotaRecord {
	return le.record
}

// Release returns the concurrency slot. It does not take the
// request context: a consumer disconnect cancels that context, and the slot
// must go back anyway. Failures are logged, not propagated, as the response
// has usually been produced by the time release runs.
func (le *Lease) Release() {
	le.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := le.store.Release(ctx, le.identity); err != nil {
			le.l.Errorw("failed to release concurrency slot",
				zap.String("identity", le.identity), zap.Error(err))
		}
	})
}
