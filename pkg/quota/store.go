// Package quota defines the durable admission-state contract. All quota state
// lives behind Store; the gateway holds no in-process counters, so a fleet of
// instances sharing one database enforces the same limits.
package quota

import (
	"context"

	"github.com/pkg/errors"

	"github.com/promptgate/promptgate/pkg/models"
)

// Denial sentinels returned by Reserve. Callers map them to user-visible
// statuses; anything else coming out of Reserve is a store failure.
var (
	ErrNotRegistered       = errors.New(models.ReasonNotRegistered)
	ErrBlocked             = errors.New(models.ReasonBlocked)
	ErrQuotaExhausted      = errors.New(models.ReasonQuotaExhausted)
	ErrConcurrencyExceeded = errors.New(models.ReasonConcurrencyExceeded)
)

// Defaults fill unset limits on registration.
type Defaults struct {
	RequestLimit   int64
	ConcurrencyCap int64
}

// Store owns every QuotaRecord mutation. Reserve and Release execute as
// atomic read-modify-write transactions totally ordered per identity; no
// caller may observe a half-applied reservation.
//
// Reserve checks, in order and against a single snapshot: registration,
// blocked flag, request quota, concurrency cap. On success it increments
// RequestsUsed and ActiveStreams together and appends a usage-log entry in
// the same transaction, returning the post-mutation record.
//
// Release decrements ActiveStreams floored at zero (spurious releases never
// drive the counter negative) and is a no-op for unknown identities. Each
// successful Reserve must still be paired with exactly one Release.
type Store interface {
	Get(ctx context.Context, identity string) (models.QuotaRecord, error)
	Reserve(ctx context.Context, identity string) (models.QuotaRecord, error)
	Release(ctx context.Context, identity string) error
	// Register upserts records, resetting usage, active streams and the
	// blocked flag. Re-registration is a hard reset, not a patch.
	Register(ctx context.Context, users []models.UserSpec) (int, error)
	Delete(ctx context.Context, identity string) (bool, error)
}

// IsDenial reports whether err is one of the Reserve denial sentinels.
func IsDenial(err error) bool {
	return errors.Is(err, ErrNotRegistered) ||
		errors.Is(err, ErrBlocked) ||
		errors.Is(err, ErrQuotaExhausted) ||
		errors.Is(err, ErrConcurrencyExceeded)
}
