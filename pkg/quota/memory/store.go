// Package memory implements the quota Store with an in-process map. The
// single mutex makes every Reserve/Release a serializable transaction, which
// is all the durability-free deployments (local runs, tests) need.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/promptgate/promptgate/internal/common/clock"
	"github.com/promptgate/promptgate/pkg/models"
	"github.com/promptgate/promptgate/pkg/quota"
)

type Store struct {
	records  map[string]models.QuotaRecord
	log      []models.UsageEntry
	defaults quota.Defaults
	now      clock.NowFunc
	mtx      sync.Mutex
	l        *zap.SugaredLogger
}

func NewStore(defaults quota.Defaults, now clock.NowFunc, l *zap.Logger) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		records:  make(map[string]models.QuotaRecord),
		defaults: defaults,
		now:      now,
		l:        l.Sugar(),
	}
}

func (s *Store) Get(_ context.Context, identity string) (models.QuotaRecord, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	rec, ok := s.records[models.NormalizeIdentity(identity)]
	if !ok {
		return models.QuotaRecord{}, quota.ErrNotRegistered
	}
	return rec, nil
}

func (s *Store) Reserve(_ context.Context, identity string) (models.QuotaRecord, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id := models.NormalizeIdentity(identity)
	rec, ok := s.records[id]
	if !ok {
		return models.QuotaRecord{}, quota.ErrNotRegistered
	}
	switch {
	case rec.Blocked:
		return models.QuotaRecord{}, quota.ErrBlocked
	case rec.RequestsUsed >= rec.RequestLimit:
		return models.QuotaRecord{}, quota.ErrQuotaExhausted
	case rec.ActiveStreams >= rec.ConcurrencyCap:
		return models.QuotaRecord{}, quota.ErrConcurrencyExceeded
	}

	rec.RequestsUsed++
	rec.ActiveStreams++
	rec.UpdatedAt = s.now()
	s.records[id] = rec
	s.appendUsage(id, models.UsageReserve)
	s.l.Debugw("reservation granted",
		zap.String("identity", id),
		zap.Int64("requests_used", rec.RequestsUsed),
		zap.Int64("active_streams", rec.ActiveStreams))
	return rec, nil
}

func (s *Store) Release(_ context.Context, identity string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id := models.NormalizeIdentity(identity)
	rec, ok := s.records[id]
	if !ok {
		return nil
	}
	if rec.ActiveStreams < 1 {
		s.l.Warnw("release with no outstanding reservation", zap.String("identity", id))
		rec.ActiveStreams = 0
	} else {
		rec.ActiveStreams--
	}
	rec.UpdatedAt = s.now()
	s.records[id] = rec
	s.appendUsage(id, models.UsageRelease)
	return nil
}

func (s *Store) Register(_ context.Context, users []models.UserSpec) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	now := s.now()
	for _, u := range users {
		rec := models.QuotaRecord{
			Identity:       models.NormalizeIdentity(u.Identity),
			Alias:          u.Alias,
			RequestLimit:   u.RequestLimit,
			ConcurrencyCap: u.ConcurrencyCap,
			UpdatedAt:      now,
		}
		if rec.RequestLimit <= 0 {
			rec.RequestLimit = s.defaults.RequestLimit
		}
		if rec.ConcurrencyCap <= 0 {
			rec.ConcurrencyCap = s.defaults.ConcurrencyCap
		}
		s.records[rec.Identity] = rec
	}
	return len(users), nil
}

func (s *Store) Delete(_ context.Context, identity string) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id := models.NormalizeIdentity(identity)
	if _, ok := s.records[id]; !ok {
		return false, nil
	}
	delete(s.records, id)
	return true, nil
}

// UsageLog returns a copy of the audit trail, oldest first.
func (s *Store) UsageLog() []models.UsageEntry {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]models.UsageEntry, len(s.log))
	copy(out, s.log)
	return out
}

func (s *Store) appendUsage(identity string, action models.UsageAction) {
	s.log = append(s.log, models.UsageEntry{
		ID:       uuid.NewString(),
		Identity: identity,
		Action:   action,
		At:       s.now(),
	})
}
