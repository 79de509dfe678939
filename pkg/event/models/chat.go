package models

import "time"

const (
	ChatRequestedEventType  = "ChatRequested"
	StreamReleasedEventType = "StreamReleased"
)

// ChatRequested is published once per chat request after the admission
// decision, successful or not.
type ChatRequested struct {
	Identity  string
	Model     string
	Streaming bool
	Error     error
}

// StreamReleased is published when the concurrency slot goes back, carrying
// how long the stream was held.
type StreamReleased struct {
	Identity       string
	Model          string
	Fragments      int
	StreamDuration time.Duration
}

func NewChatRequestedEvent(e ChatRequested) *Event[ChatRequested] {
	return NewEvent(ChatRequestedEventType, now(), e)
}

func NewStreamReleasedEvent(e StreamReleased) *Event[StreamReleased] {
	return NewEvent(StreamReleasedEventType, now(), e)
}
