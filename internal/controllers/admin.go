package controllers

import (
	"slices"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/promptgate/promptgate/internal/services/token"
	"github.com/promptgate/promptgate/pkg/config"
	"github.com/promptgate/promptgate/pkg/models"
)

// AdminEmailHeader asserts the caller identity on administrative endpoints
// when no bearer credential is presented. It is only trusted against the
// configured admin list, never on its own.
const AdminEmailHeader = "X-Admin-Email"

type AdminGate struct {
	tokens token.TokenService
	cfg    config.AdminConfig
	l      *zap.SugaredLogger
}

func NewAdminGate(tokens token.TokenService, cfg config.AdminConfig, l *zap.Logger) *AdminGate {
	return &AdminGate{tokens: tokens, cfg: cfg, l: l.Sugar()}
}

func (a *AdminGate) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !a.cfg.AdminEndpoints() {
			return models.NewForbiddenError(models.ReasonAdminDisabled,
				errors.New("administrative endpoints are disabled"))
		}

		identity, err := a.callerIdentity(c)
		if err != nil {
			return err
		}
		if !slices.Contains(a.cfg.AdminEmails(), identity) {
			a.l.Warnw("admin access denied", zap.String("identity", identity))
			return models.NewForbiddenError(models.ReasonAdminOnly,
				errors.New("caller is not an administrator"))
		}
		return next(c)
	}
}

func (a *AdminGate) callerIdentity(c echo.Context) (string, error) {
	if auth := c.Request().Header.Get(echo.HeaderAuthorization); auth != "" {
		return a.tokens.Verify(auth)
	}
	if email := models.NormalizeIdentity(c.Request().Header.Get(AdminEmailHeader)); email != "" {
		return email, nil
	}
	return "", models.NewUnauthorizedError(models.ReasonAdminEmailRequired,
		errors.New("admin identity is required"))
}
