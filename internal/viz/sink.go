package viz

import (
	"context"

	"github.com/san-kum/sortviz/internal/steps"
)

type frameMsg struct {
	gen   int
	frame steps.Frame
	ack   chan struct{}
}

// channelSink delivers frames to the UI loop and blocks until the model has
// applied them.
type channelSink struct {
	gen    int
	frames chan<- frameMsg
}

func (s channelSink) Apply(ctx context.Context, f steps.Frame) error {
	msg := frameMsg{gen: s.gen, frame: f, ack: make(chan struct{})}

	select {
	case s.frames <- msg:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-msg.ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
