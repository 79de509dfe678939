package chat

import (
	"io"

	"github.com/pkg/errors"

	"github.com/promptgate/promptgate/internal/services/admission"
	"github.com/promptgate/promptgate/pkg/generate"
)

// leasedStream couples a fragment stream with its admission lease. The lease
// is released on the first terminal event: EOF, a stream error or Close.
// Release itself is idempotent, so hitting several of these is harmless.
type leasedStream struct {
	inner generate.FragmentStream
	lease *admission.Lease
}

func newLeasedStream(inner generate.FragmentStream, lease *admission.Lease) *leasedStream {
	return &leasedStream{inner: inner, lease: lease}
}

func (s *leasedStream) Next() (string, error) {
	frag, err := s.inner.Next()
	if err != nil {
		s.lease.Release()
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		return "", io.EOF
	}
	return frag, nil
}

func (s *leasedStream) Close() error {
	defer s.lease.Release()
	return s.inner.Close()
}
