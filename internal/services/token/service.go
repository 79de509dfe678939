// Package token mints and verifies the signed admission credentials. A
// credential embeds a snapshot of the quota counters taken at issuance time;
// only the identity and the expiry are authoritative when the credential is
// presented later, the counters are display hints and are never re-checked
// against the store.
package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/promptgate/promptgate/internal/common/clock"
	"github.com/promptgate/promptgate/pkg/dto"
	"github.com/promptgate/promptgate/pkg/models"
)

const bearerPrefix = "bearer "

var signingMethod = jwt.SigningMethodHS256

type Claims struct {
	Email          string `json:"email"`
	RequestsUsed   int64  `json:"requests_used"`
	RequestLimit   int64  `json:"request_limit"`
	ConcurrencyCap int64  `json:"concurrency_cap"`
	Alias          string `json:"alias,omitempty"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Issue(rec models.QuotaRecord) (dto.TokenResponse, error)
	// Verify checks an Authorization header value and returns the normalized
	// identity the credential asserts.
	Verify(authorization string) (string, error)
}

type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    clock.NowFunc
	l      *zap.SugaredLogger
}

func NewJWTTokenService(secret string, ttl time.Duration, now clock.NowFunc, l *zap.Logger) *JWTTokenService {
	if now == nil {
		now = time.Now
	}
	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
		l:      l.Sugar(),
	}
}

func (s *JWTTokenService) Issue(rec models.QuotaRecord) (dto.TokenResponse, error) {
	expiresAt := s.now().Add(s.ttl)
	claims := Claims{
		Email:          rec.Identity,
		RequestsUsed:   rec.RequestsUsed,
		RequestLimit:   rec.RequestLimit,
		ConcurrencyCap: rec.ConcurrencyCap,
		Alias:          rec.Alias,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(s.secret)
	if err != nil {
		return dto.TokenResponse{}, errors.Wrap(err, "failed to sign credential")
	}
	s.l.Debugw("issued credential", zap.String("identity", rec.Identity), zap.Time("expires_at", expiresAt))

	return dto.TokenResponse{
		Token:          signed,
		ExpiresAt:      expiresAt,
		RequestLimit:   rec.RequestLimit,
		RequestsUsed:   rec.RequestsUsed,
		ConcurrencyCap: rec.ConcurrencyCap,
		Alias:          rec.Alias,
	}, nil
}

func (s *JWTTokenService) Verify(authorization string) (string, error) {
	if !strings.HasPrefix(strings.ToLower(authorization), bearerPrefix) {
		return "", models.NewUnauthorizedError(models.ReasonMissingCredential, errors.New("missing bearer token"))
	}
	raw := strings.TrimSpace(authorization[len(bearerPrefix):])

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(_ *jwt.Token) (interface{}, error) { return s.secret, nil },
		// only the configured algorithm is accepted, anything else is a
		// confusion attempt
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", models.NewUnauthorizedError(models.ReasonTokenExpired, errors.New("token expired"))
		}
		return "", models.NewUnauthorizedError(models.ReasonInvalidToken, errors.New("invalid token"))
	}
	if claims.Email == "" {
		return "", models.NewUnauthorizedError(models.ReasonInvalidToken, errors.New("token carries no identity"))
	}
	return models.NormalizeIdentity(claims.Email), nil
}
