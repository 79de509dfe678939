package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/promptgate/promptgate/mocks"
	evmodels "github.com/promptgate/promptgate/pkg/event/models"
	"github.com/promptgate/promptgate/pkg/models"
)

type chatMocks struct {
	srv    *mocks.ChatService
	tokens *mocks.TokenService
	eb     *mocks.EventBroker
	now    *mocks.NowFunc
}

func newChatController(t *testing.T, cfg adminCfg) (*ChatController, chatMocks) {
	m := chatMocks{
		srv:    mocks.NewChatService(t),
		tokens: mocks.NewTokenService(t),
		eb:     mocks.NewEventBroker(t),
		now:    mocks.NewNowFunc(t),
	}
	cc := NewChatController(m.srv, m.tokens, cfg, m.eb, m.now.Execute, zaptest.NewLogger(t))
	return cc, m
}

func chatCtx(body string, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestChatController_Streaming(t *testing.T) {
	g := NewWithT(t)
	cc, m := newChatController(t, adminCfg{})

	m.tokens.EXPECT().Verify("Bearer tok").Return("user@example.com", nil).Once()

	stream := mocks.NewFragmentStream(t)
	stream.EXPECT().Next().Return("Hello", nil).Once()
	stream.EXPECT().Next().Return(" world", nil).Once()
	stream.EXPECT().Next().Return("", io.EOF).Once()
	stream.EXPECT().Close().Return(nil).Once()
	m.srv.EXPECT().Stream(mock.Anything, "user@example.com", mock.Anything).Return(stream, nil).Once()

	m.now.EXPECT().Execute().Return(time.UnixMilli(111)).Once()
	m.now.EXPECT().Execute().Return(time.UnixMilli(444)).Once()

	m.eb.EXPECT().Publish(mock.Anything).Run(func(e evmodels.IEvent) {
		g.Expect(e.EventType()).To(Equal(evmodels.StreamReleasedEventType))
		attrs := e.(*evmodels.Event[evmodels.StreamReleased]).Attributes
		g.Expect(attrs.Identity).To(Equal("user@example.com"))
		g.Expect(attrs.Fragments).To(Equal(2))
		g.Expect(attrs.StreamDuration).To(Equal(333 * time.Millisecond))
	}).Once()
	m.eb.EXPECT().Publish(mock.Anything).Run(func(e evmodels.IEvent) {
		g.Expect(e.EventType()).To(Equal(evmodels.ChatRequestedEventType))
		attrs := e.(*evmodels.Event[evmodels.ChatRequested]).Attributes
		g.Expect(attrs.Identity).To(Equal("user@example.com"))
		g.Expect(attrs.Streaming).To(BeTrue())
		g.Expect(attrs.Error).ToNot(HaveOccurred())
	}).Once()

	c, rec := chatCtx(`{"messages": [{"role": "user", "content": "hi"}]}`,
		map[string]string{echo.HeaderAuthorization: "Bearer tok"})

	err := cc.Chat(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Header().Get(echo.HeaderContentType)).To(Equal(echo.MIMETextPlainCharsetUTF8))
	g.Expect(rec.Body.String()).To(Equal("Hello\n world\n"))
}

func TestChatController_StreamTruncatedOnMidFlightError(t *testing.T) {
	g := NewWithT(t)
	cc, m := newChatController(t, adminCfg{})

	m.tokens.EXPECT().Verify("Bearer tok").Return("user@example.com", nil).Once()

	stream := mocks.NewFragmentStream(t)
	stream.EXPECT().Next().Return("partial", nil).Once()
	stream.EXPECT().Next().Return("", errors.New("upstream reset")).Once()
	stream.EXPECT().Close().Return(nil).Once()
	m.srv.EXPECT().Stream(mock.Anything, "user@example.com", mock.Anything).Return(stream, nil).Once()

	m.now.EXPECT().Execute().Return(time.UnixMilli(111)).Times(2)
	m.eb.EXPECT().Publish(mock.Anything).Times(2)

	c, rec := chatCtx(`{"messages": [{"role": "user", "content": "hi"}]}`,
		map[string]string{echo.HeaderAuthorization: "Bearer tok"})

	err := cc.Chat(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(Equal("partial\n"))
}

func TestChatController_NonStreaming(t *testing.T) {
	g := NewWithT(t)
	cc, m := newChatController(t, adminCfg{})

	m.tokens.EXPECT().Verify("Bearer tok").Return("user@example.com", nil).Once()
	m.srv.EXPECT().Complete(mock.Anything, "user@example.com", mock.Anything).
		Return("full text", nil).Once()
	m.eb.EXPECT().Publish(mock.Anything).Run(func(e evmodels.IEvent) {
		g.Expect(e.EventType()).To(Equal(evmodels.ChatRequestedEventType))
		g.Expect(e.(*evmodels.Event[evmodels.ChatRequested]).Attributes.Streaming).To(BeFalse())
	}).Once()

	c, rec := chatCtx(`{"stream": false, "messages": [{"role": "user", "content": "hi"}]}`,
		map[string]string{echo.HeaderAuthorization: "Bearer tok"})

	err := cc.Chat(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
	g.Expect(rec.Body.String()).To(MatchJSON(`{"text": "full text"}`))
}

func TestChatController_IdentityFallback(t *testing.T) {
	g := NewWithT(t)
	cc, m := newChatController(t, adminCfg{fallback: true})

	m.srv.EXPECT().Complete(mock.Anything, "user@example.com", mock.Anything).
		Return("ok", nil).Once()
	m.eb.EXPECT().Publish(mock.Anything).Once()

	c, rec := chatCtx(`{"stream": false, "email": "User@Example.com",`+
		` "messages": [{"role": "user", "content": "hi"}]}`, nil)

	err := cc.Chat(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))
}

func TestChatController_IdentityNegative(t *testing.T) {
	tests := []struct {
		name       string
		cfg        adminCfg
		body       string
		wantCode   int
		wantReason string
	}{
		{
			name:       "fallback disabled",
			cfg:        adminCfg{},
			body:       `{"email": "user@example.com", "messages": [{"role": "user", "content": "hi"}]}`,
			wantCode:   http.StatusUnauthorized,
			wantReason: models.ReasonMissingCredential,
		},
		{
			name:       "fallback enabled but no email",
			cfg:        adminCfg{fallback: true},
			body:       `{"messages": [{"role": "user", "content": "hi"}]}`,
			wantCode:   http.StatusBadRequest,
			wantReason: models.ReasonEmailRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			cc, m := newChatController(t, tt.cfg)
			m.eb.EXPECT().Publish(mock.Anything).Run(func(e evmodels.IEvent) {
				g.Expect(e.(*evmodels.Event[evmodels.ChatRequested]).Attributes.Error).To(HaveOccurred())
			}).Once()

			c, _ := chatCtx(tt.body, nil)
			err := cc.Chat(c)

			var em *models.ErrorMessage
			g.Expect(errors.As(err, &em)).To(BeTrue())
			g.Expect(em.Code()).To(Equal(tt.wantCode))
			g.Expect(em.Reason).To(Equal(tt.wantReason))
		})
	}
}

func TestChatController_DenialPropagated(t *testing.T) {
	g := NewWithT(t)
	cc, m := newChatController(t, adminCfg{})

	denied := models.NewRateLimitedError(models.ReasonConcurrencyExceeded, errors.New("concurrency cap reached"))
	m.tokens.EXPECT().Verify("Bearer tok").Return("user@example.com", nil).Once()
	m.srv.EXPECT().Stream(mock.Anything, "user@example.com", mock.Anything).Return(nil, denied).Once()
	m.eb.EXPECT().Publish(mock.Anything).Once()

	c, _ := chatCtx(`{"messages": [{"role": "user", "content": "hi"}]}`,
		map[string]string{echo.HeaderAuthorization: "Bearer tok"})

	err := cc.Chat(c)
	g.Expect(err).To(MatchError(denied))
}
