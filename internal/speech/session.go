// Package speech models speech recognition as a channel contract.
//
// A Recognizer starts a Session. The session's Events channel carries zero or
// more interim transcripts followed by exactly one terminal event (final
// transcript, error or cancellation), after which the channel is closed.
package speech

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrSessionActive = errors.New("a recognition session is already active")
	ErrCancelled     = errors.New("recognition cancelled")
)

type EventKind int

const (
	EventInterim EventKind = iota
	EventFinal
	EventError
	EventCancelled
)

func (k EventKind) String() string {
	switch k {
	case EventInterim:
		return "interim"
	case EventFinal:
		return "final"
	case EventError:
		return "error"
	case EventCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind       EventKind
	Transcript string
	Err        error
}

func (e Event) Terminal() bool { return e.Kind != EventInterim }

// Recognizer starts one recognition session per call.
type Recognizer interface {
	Start(ctx context.Context) (*Session, error)
}

// Session is one in-flight recognition. Recognizers drive it with Interim,
// Finish and Fail; consumers read Events and may Cancel.
type Session struct {
	events chan Event
	done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	finished bool
}

const eventBuffer = 16

func NewSession(parent context.Context) *Session {
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
	go func() {
		<-ctx.Done()
		s.terminate(Event{Kind: EventCancelled, Err: ErrCancelled})
	}()
	return s
}

func (s *Session) Events() <-chan Event { return s.events }

// Done is closed once the terminal event has been decided.
func (s *Session) Done() <-chan struct{} { return s.done }

// Context is cancelled when the session is cancelled or has finished.
func (s *Session) Context() context.Context { return s.ctx }

func (s *Session) Cancel() { s.cancel() }

// Interim publishes a partial transcript. It reports false once the session
// has ended.
func (s *Session) Interim(transcript string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return false
	}
	select {
	case s.events <- Event{Kind: EventInterim, Transcript: transcript}:
		return true
	case <-s.ctx.Done():
		return false
	}
}

func (s *Session) Finish(transcript string) {
	s.terminate(Event{Kind: EventFinal, Transcript: transcript})
}

func (s *Session) Fail(err error) {
	s.terminate(Event{Kind: EventError, Err: err})
}

func (s *Session) terminate(ev Event) {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}
	s.finished = true
	close(s.done)
	s.mu.Unlock()

	s.cancel()
	go func() {
		s.events <- ev
		close(s.events)
	}()
}

// Collect drains a session and returns its final transcript. onInterim, when
// set, is called for every partial transcript.
func Collect(s *Session, onInterim func(string)) (string, error) {
	for ev := range s.Events() {
		switch ev.Kind {
		case EventInterim:
			if onInterim != nil {
				onInterim(ev.Transcript)
			}
		case EventFinal:
			return ev.Transcript, nil
		default:
			return "", ev.Err
		}
	}
	return "", ErrCancelled
}
