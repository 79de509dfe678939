// Package gemini implements the Generator contract against a Gemini-style
// streaming REST API (streamGenerateContent with SSE framing).
package gemini

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/promptgate/promptgate/internal/common/client"
	"github.com/promptgate/promptgate/pkg/generate"
)

const (
	apiKeyHeader = "x-goog-api-key"

	// SSE line buffer sizing: generous cap, model chunks can carry large
	// payloads in a single data: line.
	initialLineBytes = 64 << 10
	maxLineBytes     = 4 << 20
)

type Client struct {
	client  client.HTTPClient
	baseURL string
	apiKey  string
	l       *zap.SugaredLogger
}

func NewClient(hc client.HTTPClient, baseURL, apiKey string, l *zap.Logger) *Client {
	return &Client{
		client:  hc,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		l:       l.Sugar(),
	}
}

func (c *Client) Generate(ctx context.Context, req generate.Request) (generate.FragmentStream, error) {
	body, err := json.Marshal(newGenerateBody(req))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode generate request")
	}

	u := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", c.baseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build generate request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "generate request failed")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		_ = resp.Body.Close()
		return nil, errors.Errorf("generate request failed on %s with HTTP code %d: %s",
			httpReq.URL, resp.StatusCode, string(respBody))
	}

	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, initialLineBytes), maxLineBytes)
	return &sseStream{body: resp.Body, sc: sc}, nil
}

type generateBody struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature *float64 `json:"temperature,omitempty"`
	TopP        *float64 `json:"topP,omitempty"`
	TopK        *int64   `json:"topK,omitempty"`
}

func newGenerateBody(req generate.Request) generateBody {
	contents := make([]content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := "user"
		if m.Role == "assistant" || m.Role == "model" {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Content}}})
	}

	b := generateBody{Contents: contents}
	if req.Temperature != nil || req.TopP != nil || req.TopK != nil {
		b.GenerationConfig = &generationConfig{
			Temperature: req.Temperature,
			TopP:        req.TopP,
			TopK:        req.TopK,
		}
	}
	return b
}

type chunk struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type sseStream struct {
	body io.ReadCloser
	sc   *bufio.Scanner
}

func (s *sseStream) Next() (string, error) {
	for s.sc.Scan() {
		line := strings.TrimSpace(s.sc.Text())
		payload, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		payload = strings.TrimSpace(payload)
		if payload == "" || payload == "[DONE]" {
			continue
		}

		var ch chunk
		if err := json.Unmarshal([]byte(payload), &ch); err != nil {
			return "", errors.Wrap(err, "failed to decode stream chunk")
		}
		var sb strings.Builder
		for _, cand := range ch.Candidates {
			for _, p := range cand.Content.Parts {
				sb.WriteString(p.Text)
			}
			break // only the first candidate is forwarded
		}
		if sb.Len() == 0 {
			continue
		}
		return sb.String(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", errors.Wrap(err, "stream read failed")
	}
	return "", io.EOF
}

func (s *sseStream) Close() error {
	return s.body.Close()
}
