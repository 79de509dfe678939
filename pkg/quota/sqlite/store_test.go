package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/promptgate/promptgate/pkg/models"
	"github.com/promptgate/promptgate/pkg/quota"
	"github.com/promptgate/promptgate/pkg/quota/sqlite"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(
		filepath.Join(t.TempDir(), "quota.db"),
		quota.Defaults{RequestLimit: 50, ConcurrencyCap: 2},
		time.Now,
		zaptest.NewLogger(t),
	)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_ReserveLifecycle(t *testing.T) {
	g := NewWithT(t)
	s := openStore(t)
	ctx := context.TODO()

	n, err := s.Register(ctx, []models.UserSpec{{Identity: "A@X.com", Alias: "alice", RequestLimit: 2, ConcurrencyCap: 1}})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(n).To(Equal(1))

	rec, err := s.Reserve(ctx, "a@x.com")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec.Alias).To(Equal("alice"))
	g.Expect(rec.RequestsUsed).To(Equal(int64(1)))
	g.Expect(rec.ActiveStreams).To(Equal(int64(1)))

	_, err = s.Reserve(ctx, "a@x.com")
	g.Expect(err).To(MatchError(quota.ErrConcurrencyExceeded))

	g.Expect(s.Release(ctx, "a@x.com")).To(Succeed())

	rec, err = s.Reserve(ctx, "a@x.com")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec.RequestsUsed).To(Equal(int64(2)))

	g.Expect(s.Release(ctx, "a@x.com")).To(Succeed())
	_, err = s.Reserve(ctx, "a@x.com")
	g.Expect(err).To(MatchError(quota.ErrQuotaExhausted))
}

func TestStore_StateSurvivesReopen(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "quota.db")
	defaults := quota.Defaults{RequestLimit: 50, ConcurrencyCap: 2}

	s, err := sqlite.Open(path, defaults, time.Now, zaptest.NewLogger(t))
	g.Expect(err).ToNot(HaveOccurred())
	_, err = s.Register(context.TODO(), []models.UserSpec{{Identity: "u@x.com"}})
	g.Expect(err).ToNot(HaveOccurred())
	_, err = s.Reserve(context.TODO(), "u@x.com")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(s.Close()).To(Succeed())

	s, err = sqlite.Open(path, defaults, time.Now, zaptest.NewLogger(t))
	g.Expect(err).ToNot(HaveOccurred())
	defer func() { _ = s.Close() }()

	rec, err := s.Get(context.TODO(), "u@x.com")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec.RequestsUsed).To(Equal(int64(1)))
	g.Expect(rec.ActiveStreams).To(Equal(int64(1)))
}

// Two stores on the same file stand in for two gateway instances sharing the
// database. Contended reserves must queue on the write lock, not fail.
func TestStore_ConcurrentReserveAcrossConnections(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "quota.db")
	defaults := quota.Defaults{RequestLimit: 50, ConcurrencyCap: 2}

	s1, err := sqlite.Open(path, defaults, time.Now, zaptest.NewLogger(t))
	g.Expect(err).ToNot(HaveOccurred())
	defer func() { _ = s1.Close() }()

	s2, err := sqlite.Open(path, defaults, time.Now, zaptest.NewLogger(t))
	g.Expect(err).ToNot(HaveOccurred())
	defer func() { _ = s2.Close() }()

	const rounds = 20
	_, err = s1.Register(context.TODO(), []models.UserSpec{
		{Identity: "u@x.com", RequestLimit: 2 * rounds, ConcurrencyCap: 2 * rounds},
	})
	g.Expect(err).ToNot(HaveOccurred())

	errs := make(chan error, 2*rounds)
	var wg sync.WaitGroup
	for _, s := range []*sqlite.Store{s1, s2} {
		wg.Add(1)
		go func(s *sqlite.Store) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				if _, err := s.Reserve(context.TODO(), "u@x.com"); err != nil {
					errs <- err
					return
				}
				if err := s.Release(context.TODO(), "u@x.com"); err != nil {
					errs <- err
					return
				}
			}
		}(s)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		g.Expect(err).ToNot(HaveOccurred())
	}

	rec, err := s1.Get(context.TODO(), "u@x.com")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec.RequestsUsed).To(Equal(int64(2 * rounds)))
	g.Expect(rec.ActiveStreams).To(BeZero())
}

func TestStore_ReleaseFloorsAtZero(t *testing.T) {
	g := NewWithT(t)
	s := openStore(t)
	ctx := context.TODO()

	_, err := s.Register(ctx, []models.UserSpec{{Identity: "u@x.com"}})
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(s.Release(ctx, "u@x.com")).To(Succeed())
	g.Expect(s.Release(ctx, "nobody@x.com")).To(Succeed())

	rec, err := s.Get(ctx, "u@x.com")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec.ActiveStreams).To(BeZero())
}

func TestStore_ReRegisterResets(t *testing.T) {
	g := NewWithT(t)
	s := openStore(t)
	ctx := context.TODO()

	_, err := s.Register(ctx, []models.UserSpec{{Identity: "u@x.com", RequestLimit: 5}})
	g.Expect(err).ToNot(HaveOccurred())
	_, err = s.Reserve(ctx, "u@x.com")
	g.Expect(err).ToNot(HaveOccurred())

	_, err = s.Register(ctx, []models.UserSpec{{Identity: "u@x.com", RequestLimit: 9}})
	g.Expect(err).ToNot(HaveOccurred())

	rec, err := s.Get(ctx, "u@x.com")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec.RequestLimit).To(Equal(int64(9)))
	g.Expect(rec.ConcurrencyCap).To(Equal(int64(2))) // default applied
	g.Expect(rec.RequestsUsed).To(BeZero())
	g.Expect(rec.ActiveStreams).To(BeZero())
}

func TestStore_DeleteThenReserve(t *testing.T) {
	g := NewWithT(t)
	s := openStore(t)
	ctx := context.TODO()

	_, err := s.Register(ctx, []models.UserSpec{{Identity: "u@x.com"}})
	g.Expect(err).ToNot(HaveOccurred())

	ok, err := s.Delete(ctx, "u@x.com")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(ok).To(BeTrue())

	_, err = s.Reserve(ctx, "u@x.com")
	g.Expect(err).To(MatchError(quota.ErrNotRegistered))

	ok, err = s.Delete(ctx, "u@x.com")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(ok).To(BeFalse())
}
