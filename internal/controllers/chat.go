package controllers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/promptgate/promptgate/internal/common/clock"
	"github.com/promptgate/promptgate/internal/services/chat"
	"github.com/promptgate/promptgate/internal/services/token"
	"github.com/promptgate/promptgate/pkg/config"
	"github.com/promptgate/promptgate/pkg/dto"
	"github.com/promptgate/promptgate/pkg/event"
	evmodels "github.com/promptgate/promptgate/pkg/event/models"
	"github.com/promptgate/promptgate/pkg/models"
)

type ChatController struct {
	srv    chat.ChatService
	tokens token.TokenService
	cfg    config.AdminConfig
	eb     event.EventBroker
	now    clock.NowFunc
	l      *zap.SugaredLogger
}

func NewChatController(
	srv chat.ChatService,
	tokens token.TokenService,
	cfg config.AdminConfig,
	eb event.EventBroker,
	now clock.NowFunc,
	l *zap.Logger,
) *ChatController {
	return &ChatController{
		srv:    srv,
		tokens: tokens,
		cfg:    cfg,
		eb:     eb,
		now:    now,
		l:      l.Sugar(),
	}
}

func (cc *ChatController) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return models.NewBadRequestError(errors.Wrap(err, "malformed chat request"))
	}

	streaming := req.Stream == nil || *req.Stream
	ev := evmodels.ChatRequested{
		Model:     req.Model,
		Streaming: streaming,
	}
	defer func() {
		cc.eb.Publish(evmodels.NewChatRequestedEvent(ev))
	}()

	identity, err := cc.identity(c, &req)
	if err != nil {
		ev.Error = err
		return err
	}
	ev.Identity = identity

	if !streaming {
		text, err := cc.srv.Complete(c.Request().Context(), identity, req)
		if err != nil {
			ev.Error = models.WrapCancelledErr(err)
			return ev.Error
		}
		return c.JSON(http.StatusOK, &dto.ChatResponse{Text: text})
	}

	stream, err := cc.srv.Stream(c.Request().Context(), identity, req)
	if err != nil {
		ev.Error = models.WrapCancelledErr(err)
		return ev.Error
	}
	defer func() {
		if err := stream.Close(); err != nil {
			cc.l.Warnw("failed to close generation stream", zap.Error(err))
		}
	}()

	start := cc.now()
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	resp.WriteHeader(http.StatusOK)

	fragments := 0
	for {
		frag, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// the status line is out, all we can do is truncate the body
			cc.l.Errorw("generation stream failed mid-flight",
				zap.String("identity", identity), zap.Error(err))
			break
		}
		// newline-terminated so consumers can frame fragments
		if _, err := io.WriteString(resp, frag+"\n"); err != nil {
			cc.l.Debugw("consumer disconnected", zap.String("identity", identity), zap.Error(err))
			break
		}
		resp.Flush()
		fragments++
	}

	cc.eb.Publish(evmodels.NewStreamReleasedEvent(evmodels.StreamReleased{
		Identity:       identity,
		Model:          req.Model,
		Fragments:      fragments,
		StreamDuration: cc.now().Sub(start),
	}))
	return nil
}

// identity resolves who is asking: a bearer credential when present, the
// body email only when the fallback is explicitly enabled.
func (cc *ChatController) identity(c echo.Context, req *dto.ChatRequest) (string, error) {
	if auth := c.Request().Header.Get(echo.HeaderAuthorization); auth != "" {
		return cc.tokens.Verify(auth)
	}
	if cc.cfg.AllowIdentityFallback() {
		if id := models.NormalizeIdentity(req.Email); id != "" {
			return id, nil
		}
		return "", models.NewErrorMessage(http.StatusBadRequest, models.ReasonEmailRequired,
			errors.New("email is required when no token is presented"))
	}
	return "", models.NewUnauthorizedError(models.ReasonMissingCredential,
		errors.New("missing bearer token"))
}
