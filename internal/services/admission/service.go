// Package admission translates store outcomes into caller-facing decisions
// and hands out leases that guarantee exactly-once slot release.
package admission

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/promptgate/promptgate/pkg/models"
	"github.com/promptgate/promptgate/pkg/quota"
)

// AdmissionService charges one quota unit and one concurrency slot per
// successful Admit. The charge is durable even when the request later fails
// downstream; the caller must release the returned lease exactly once on
// every path.
type AdmissionService interface {
	Admit(ctx context.Context, identity string) (*Lease, error)
}

type AdmissionServiceImpl struct {
	store quota.Store
	l     *zap.Logger
}

func NewAdmissionService(store quota.Store, l *zap.Logger) *AdmissionServiceImpl {
	return &AdmissionServiceImpl{store: store, l: l}
}

func (s *AdmissionServiceImpl) Admit(ctx context.Context, identity string) (*Lease, error) {
	rec, err := s.store.Reserve(ctx, identity)
	if err != nil {
		return nil, mapReserveError(err)
	}
	return NewLease(identity, rec, s.store, s.l), nil
}

// mapReserveError keeps the two denial families distinct: authorization
// problems (not registered, blocked) get 403, resource exhaustion gets 429 so
// clients can back off and retry, and store failures become 503.
func mapReserveError(err error) error {
	switch {
	case errors.Is(err, quota.ErrNotRegistered):
		return models.NewForbiddenError(models.ReasonNotRegistered, err)
	case errors.Is(err, quota.ErrBlocked):
		return models.NewForbiddenError(models.ReasonBlocked, err)
	case errors.Is(err, quota.ErrQuotaExhausted):
		return models.NewRateLimitedError(models.ReasonQuotaExhausted, err)
	case errors.Is(err, quota.ErrConcurrencyExceeded):
		return models.NewRateLimitedError(models.ReasonConcurrencyExceeded, err)
	default:
		return models.NewServiceUnavailableError(errors.Wrap(err, "failed to reserve quota"))
	}
}
