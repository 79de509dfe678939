package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/promptgate/promptgate/internal/services/token"
	"github.com/promptgate/promptgate/pkg/dto"
	"github.com/promptgate/promptgate/pkg/models"
	"github.com/promptgate/promptgate/pkg/quota"
)

type TokenController struct {
	store  quota.Store
	tokens token.TokenService
	l      *zap.SugaredLogger
}

func NewTokenController(store quota.Store, tokens token.TokenService, l *zap.Logger) *TokenController {
	return &TokenController{store: store, tokens: tokens, l: l.Sugar()}
}

// IssueToken mints a credential for a registered identity. The quota counters
// in the response are informational; admission re-reads the store on every
// request, so a stale snapshot can not be used to bypass limits.
func (t *TokenController) IssueToken(c echo.Context) error {
	var req dto.TokenRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(errors.Wrap(err, "malformed token request"))
	}
	identity := models.NormalizeIdentity(req.Email)
	if identity == "" {
		return models.NewErrorMessage(http.StatusBadRequest, models.ReasonEmailRequired,
			errors.New("email is required"))
	}

	rec, err := t.store.Get(c.Request().Context(), identity)
	if err != nil {
		if errors.Is(err, quota.ErrNotRegistered) {
			return models.NewForbiddenError(models.ReasonNotRegistered, errors.New("user is not registered"))
		}
		return models.NewServiceUnavailableError(errors.Wrap(err, "failed to load user"))
	}
	if rec.Blocked {
		return models.NewForbiddenError(models.ReasonBlocked, errors.New("user is blocked"))
	}

	resp, err := t.tokens.Issue(rec)
	if err != nil {
		return models.NewInternalServerError(err)
	}
	t.l.Infow("credential issued", zap.String("identity", identity))
	return c.JSON(http.StatusOK, resp)
}
