// Package chat orchestrates a generation request: resolve the model, reserve
// an admission slot, start the upstream stream and hand back a stream whose
// lifecycle owns the slot. Whatever happens to the stream afterwards, the
// slot comes back exactly once.
package chat

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/promptgate/promptgate/internal/services/admission"
	"github.com/promptgate/promptgate/pkg/catalog"
	"github.com/promptgate/promptgate/pkg/dto"
	"github.com/promptgate/promptgate/pkg/generate"
	"github.com/promptgate/promptgate/pkg/models"
)

type ChatService interface {
	// Stream admits identity and starts generation. The returned stream
	// releases the admission slot when it is exhausted, fails or is closed.
	Stream(ctx context.Context, identity string, req dto.ChatRequest) (generate.FragmentStream, error)

	// Complete is the non-streaming variant: it drains the stream and returns
	// the concatenated text. The slot is released before it returns.
	Complete(ctx context.Context, identity string, req dto.ChatRequest) (string, error)
}

type ChatServiceImpl struct {
	cat catalog.ModelCatalog
	adm admission.AdmissionService
	gen generate.Generator
	l   *zap.SugaredLogger
}

func NewChatService(
	cat catalog.ModelCatalog, adm admission.AdmissionService, gen generate.Generator, l *zap.Logger,
) *ChatServiceImpl {
	return &ChatServiceImpl{cat: cat, adm: adm, gen: gen, l: l.Sugar()}
}

func (s *ChatServiceImpl) Stream(
	ctx context.Context, identity string, req dto.ChatRequest,
) (generate.FragmentStream, error) {
	genReq, err := s.buildRequest(req)
	if err != nil {
		return nil, err
	}

	// Model resolution happens before admission so an unknown model never
	// burns quota.
	lease, err := s.adm.Admit(ctx, identity)
	if err != nil {
		return nil, err
	}

	stream, err := s.gen.Generate(ctx, genReq)
	if err != nil {
		lease.Release()
		return nil, models.NewBadGatewayError(errors.Wrap(err, "failed to start generation"))
	}
	s.l.Debugw("generation started",
		zap.String("identity", identity), zap.String("model", genReq.Model))
	return newLeasedStream(stream, lease), nil
}

func (s *ChatServiceImpl) Complete(
	ctx context.Context, identity string, req dto.ChatRequest,
) (string, error) {
	stream, err := s.Stream(ctx, identity, req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := stream.Close(); err != nil {
			s.l.Warnw("failed to close generation stream", zap.Error(err))
		}
	}()

	var sb strings.Builder
	for {
		frag, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				return "", models.WrapCancelledErr(ctx.Err())
			}
			return "", models.NewBadGatewayError(errors.Wrap(err, "generation failed"))
		}
		sb.WriteString(frag)
	}
	return sb.String(), nil
}

func (s *ChatServiceImpl) buildRequest(req dto.ChatRequest) (generate.Request, error) {
	if len(req.Messages) == 0 {
		return generate.Request{}, models.NewBadRequestError(errors.New("no messages in request"))
	}

	model, ok := s.cat.LookupModel(req.Model)
	if !ok {
		return generate.Request{}, models.NewErrorMessage(http.StatusBadRequest, models.ReasonUnknownModel,
			errors.Errorf("unknown model %q", req.Model))
	}

	messages := make([]generate.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, generate.Message{Role: m.Role, Content: m.Content})
	}
	return generate.Request{
		Model:       model.Upstream,
		Messages:    messages,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		TopK:        req.TopK,
	}, nil
}
