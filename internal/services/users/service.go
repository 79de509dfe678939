// Package users exposes the administrative registry operations. All of them
// sit behind the admin gate; none of them touch admission counters except
// through the store's documented reset semantics.
package users

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/promptgate/promptgate/pkg/dto"
	"github.com/promptgate/promptgate/pkg/models"
	"github.com/promptgate/promptgate/pkg/quota"
)

type UserService interface {
	Register(ctx context.Context, specs []dto.UserSpec) (int, error)
	Get(ctx context.Context, email string) (dto.UserInfo, error)
	Delete(ctx context.Context, email string) (bool, error)
}

type UserServiceImpl struct {
	store quota.Store
	l     *zap.SugaredLogger
}

func NewUserService(store quota.Store, l *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{store: store, l: l.Sugar()}
}

// Register upserts the given users. Registering an existing identity resets
// its usage, active streams and blocked flag.
func (s *UserServiceImpl) Register(ctx context.Context, specs []dto.UserSpec) (int, error) {
	if len(specs) == 0 {
		return 0, models.NewBadRequestError(errors.New("no users to register"))
	}

	users := make([]models.UserSpec, 0, len(specs))
	for _, spec := range specs {
		identity := models.NormalizeIdentity(spec.Email)
		if identity == "" {
			return 0, models.NewBadRequestError(errors.New("user entry without email"))
		}
		users = append(users, models.UserSpec{
			Identity:       identity,
			Alias:          spec.Alias,
			RequestLimit:   spec.RequestLimit,
			ConcurrencyCap: spec.ConcurrencyCap,
		})
	}

	n, err := s.store.Register(ctx, users)
	if err != nil {
		return 0, models.NewServiceUnavailableError(errors.Wrap(err, "failed to register users"))
	}
	s.l.Infow("users registered", zap.Int("count", n))
	return n, nil
}

func (s *UserServiceImpl) Get(ctx context.Context, email string) (dto.UserInfo, error) {
	rec, err := s.store.Get(ctx, email)
	if err != nil {
		if errors.Is(err, quota.ErrNotRegistered) {
			return dto.UserInfo{}, models.NewNotFoundError(errors.New("user not found"))
		}
		return dto.UserInfo{}, models.NewServiceUnavailableError(errors.Wrap(err, "failed to load user"))
	}
	return dto.UserInfo{
		Email:          rec.Identity,
		Alias:          rec.Alias,
		RequestLimit:   rec.RequestLimit,
		RequestsUsed:   rec.RequestsUsed,
		ConcurrencyCap: rec.ConcurrencyCap,
		ActiveStreams:  rec.ActiveStreams,
		Blocked:        rec.Blocked,
	}, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, email string) (bool, error) {
	deleted, err := s.store.Delete(ctx, email)
	if err != nil {
		return false, models.NewServiceUnavailableError(errors.Wrap(err, "failed to delete user"))
	}
	if deleted {
		s.l.Infow("user deleted", zap.String("identity", models.NormalizeIdentity(email)))
	}
	return deleted, nil
}
