// Package generate defines the contract with the upstream text-generation
// service. The gateway treats it as an opaque fragment producer; failures are
// surfaced to the caller, never retried here.
package generate

import "context"

type Message struct {
	Role    string
	Content string
}

type Request struct {
	// Model is the upstream model id (already resolved through the catalog).
	Model       string
	Messages    []Message
	Temperature *float64
	TopP        *float64
	TopK        *int64
}

// FragmentStream yields text fragments until io.EOF. Callers must Close the
// stream on every path, including early abandonment.
type FragmentStream interface {
	Next() (string, error)
	Close() error
}

type Generator interface {
	Generate(ctx context.Context, req Request) (FragmentStream, error)
}
