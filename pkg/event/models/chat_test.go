package models

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func TestNewChatRequestedEvent(t *testing.T) {
	g := NewWithT(t)
	tm := time.UnixMilli(123)
	now = func() time.Time {
		return tm
	}

	cr := ChatRequested{
		Identity:  "user@example.com",
		Model:     "fast",
		Streaming: true,
		Error:     errors.New("denied"),
	}

	e := NewChatRequestedEvent(cr)

	g.Expect(e.EventTime()).To(Equal(tm))
	g.Expect(e.EventType()).To(Equal(ChatRequestedEventType))
	g.Expect(e.Attributes).To(Equal(cr))
}

func TestNewStreamReleasedEvent(t *testing.T) {
	g := NewWithT(t)
	tm := time.UnixMilli(222)
	now = func() time.Time {
		return tm
	}

	sr := StreamReleased{
		Identity:       "user@example.com",
		Model:          "fast",
		Fragments:      12,
		StreamDuration: time.Minute,
	}

	e := NewStreamReleasedEvent(sr)

	g.Expect(e.EventTime()).To(Equal(tm))
	g.Expect(e.EventType()).To(Equal(StreamReleasedEventType))
	g.Expect(e.Attributes).To(Equal(sr))
}
