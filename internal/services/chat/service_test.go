package chat

import (
	"context"
	"io"
	"net/http"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/promptgate/promptgate/internal/services/admission"
	"github.com/promptgate/promptgate/mocks"
	"github.com/promptgate/promptgate/pkg/catalog"
	"github.com/promptgate/promptgate/pkg/dto"
	"github.com/promptgate/promptgate/pkg/generate"
	"github.com/promptgate/promptgate/pkg/models"
)

const testIdentity = "user@example.com"

func chatReq(model string) dto.ChatRequest {
	return dto.ChatRequest{
		Model:    model,
		Messages: []dto.ChatMessage{{Role: "user", Content: "hi"}},
	}
}

func testLease(t *testing.T, store *mocks.QuotaStore) *admission.Lease {
	return admission.NewLease(testIdentity, models.QuotaRecord{Identity: testIdentity}, store, zaptest.NewLogger(t))
}

func newTestService(t *testing.T, adm admission.AdmissionService, gen generate.Generator) *ChatServiceImpl {
	cat := mocks.NewModelCatalog(t)
	cat.EXPECT().LookupModel("fast").
		Return(catalog.ModelConfig{Upstream: "gemini-2.0-flash"}, true).Maybe()
	cat.EXPECT().LookupModel("nope").Return(catalog.ModelConfig{}, false).Maybe()
	return NewChatService(cat, adm, gen, zaptest.NewLogger(t))
}

func TestStream_ReleasesOnEOF(t *testing.T) {
	g := NewWithT(t)
	store := mocks.NewQuotaStore(t)
	store.EXPECT().Release(mock.Anything, testIdentity).Return(nil).Once()

	adm := mocks.NewAdmissionService(t)
	adm.EXPECT().Admit(mock.Anything, testIdentity).Return(testLease(t, store), nil).Once()

	inner := mocks.NewFragmentStream(t)
	inner.EXPECT().Next().Return("Hello", nil).Once()
	inner.EXPECT().Next().Return(" world", nil).Once()
	inner.EXPECT().Next().Return("", io.EOF).Once()
	inner.EXPECT().Close().Return(nil).Once()

	gen := mocks.NewGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Run(func(_ context.Context, req generate.Request) {
		g.Expect(req.Model).To(Equal("gemini-2.0-flash"))
	}).Return(inner, nil).Once()

	svc := newTestService(t, adm, gen)
	stream, err := svc.Stream(context.Background(), testIdentity, chatReq("fast"))
	g.Expect(err).ToNot(HaveOccurred())

	frag, err := stream.Next()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(frag).To(Equal("Hello"))
	frag, err = stream.Next()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(frag).To(Equal(" world"))
	_, err = stream.Next()
	g.Expect(err).To(MatchError(io.EOF))

	// closing after EOF must not release a second time
	g.Expect(stream.Close()).To(Succeed())
}

func TestStream_ReleasesOnceOnMidStreamFailure(t *testing.T) {
	g := NewWithT(t)
	store := mocks.NewQuotaStore(t)
	store.EXPECT().Release(mock.Anything, testIdentity).Return(nil).Once()

	adm := mocks.NewAdmissionService(t)
	adm.EXPECT().Admit(mock.Anything, testIdentity).Return(testLease(t, store), nil).Once()

	inner := mocks.NewFragmentStream(t)
	inner.EXPECT().Next().Return("one", nil).Once()
	inner.EXPECT().Next().Return("two", nil).Once()
	inner.EXPECT().Next().Return("", errors.New("upstream reset")).Once()
	inner.EXPECT().Close().Return(nil).Once()

	gen := mocks.NewGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return(inner, nil).Once()

	svc := newTestService(t, adm, gen)
	stream, err := svc.Stream(context.Background(), testIdentity, chatReq("fast"))
	g.Expect(err).ToNot(HaveOccurred())

	for i := 0; i < 2; i++ {
		_, err = stream.Next()
		g.Expect(err).ToNot(HaveOccurred())
	}
	_, err = stream.Next()
	g.Expect(err).To(MatchError(ContainSubstring("upstream reset")))

	// failure path already released, Close must stay a no-op for the slot
	g.Expect(stream.Close()).To(Succeed())
}

func TestStream_ReleasesWhenGenerateFails(t *testing.T) {
	g := NewWithT(t)
	store := mocks.NewQuotaStore(t)
	store.EXPECT().Release(mock.Anything, testIdentity).Return(nil).Once()

	adm := mocks.NewAdmissionService(t)
	adm.EXPECT().Admit(mock.Anything, testIdentity).Return(testLease(t, store), nil).Once()

	gen := mocks.NewGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return(nil, errors.New("connect refused")).Once()

	svc := newTestService(t, adm, gen)
	_, err := svc.Stream(context.Background(), testIdentity, chatReq("fast"))

	var em *models.ErrorMessage
	g.Expect(errors.As(err, &em)).To(BeTrue())
	g.Expect(em.Code()).To(Equal(http.StatusBadGateway))
	g.Expect(em.Reason).To(Equal(models.ReasonUpstreamError))
}

func TestStream_UnknownModelSkipsAdmission(t *testing.T) {
	g := NewWithT(t)
	adm := mocks.NewAdmissionService(t)
	gen := mocks.NewGenerator(t)

	svc := newTestService(t, adm, gen)
	_, err := svc.Stream(context.Background(), testIdentity, chatReq("nope"))

	var em *models.ErrorMessage
	g.Expect(errors.As(err, &em)).To(BeTrue())
	g.Expect(em.Code()).To(Equal(http.StatusBadRequest))
	g.Expect(em.Reason).To(Equal(models.ReasonUnknownModel))
	adm.AssertNotCalled(t, "Admit", mock.Anything, mock.Anything)
}

func TestStream_DenialPassedThrough(t *testing.T) {
	g := NewWithT(t)
	denied := models.NewRateLimitedError(models.ReasonConcurrencyExceeded, errors.New("concurrency cap reached"))

	adm := mocks.NewAdmissionService(t)
	adm.EXPECT().Admit(mock.Anything, testIdentity).Return(nil, denied).Once()
	gen := mocks.NewGenerator(t)

	svc := newTestService(t, adm, gen)
	_, err := svc.Stream(context.Background(), testIdentity, chatReq("fast"))
	g.Expect(err).To(MatchError(denied))
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestComplete_ConcatenatesAndReleases(t *testing.T) {
	g := NewWithT(t)
	store := mocks.NewQuotaStore(t)
	store.EXPECT().Release(mock.Anything, testIdentity).Return(nil).Once()

	adm := mocks.NewAdmissionService(t)
	adm.EXPECT().Admit(mock.Anything, testIdentity).Return(testLease(t, store), nil).Once()

	inner := mocks.NewFragmentStream(t)
	inner.EXPECT().Next().Return("It was", nil).Once()
	inner.EXPECT().Next().Return(" the best of times.", nil).Once()
	inner.EXPECT().Next().Return("", io.EOF).Once()
	inner.EXPECT().Close().Return(nil).Once()

	gen := mocks.NewGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return(inner, nil).Once()

	svc := newTestService(t, adm, gen)
	text, err := svc.Complete(context.Background(), testIdentity, chatReq("fast"))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(text).To(Equal("It was the best of times."))
}

func TestComplete_NoMessages(t *testing.T) {
	g := NewWithT(t)
	svc := newTestService(t, mocks.NewAdmissionService(t), mocks.NewGenerator(t))

	_, err := svc.Complete(context.Background(), testIdentity, dto.ChatRequest{Model: "fast"})

	var em *models.ErrorMessage
	g.Expect(errors.As(err, &em)).To(BeTrue())
	g.Expect(em.Code()).To(Equal(http.StatusBadRequest))
}
