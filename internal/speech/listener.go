package speech

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Listener allows at most one in-flight session at a time.
type Listener struct {
	recognizer Recognizer

	mu     sync.Mutex
	active *Session
}

func NewListener(r Recognizer) *Listener {
	return &Listener{recognizer: r}
}

// Start begins a new session, or returns ErrSessionActive while the previous
// one has not reached its terminal event.
func (l *Listener) Start(ctx context.Context) (*Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active != nil && !sessionDone(l.active) {
		log.Debug("listen rejected reason=active_session")
		return nil, ErrSessionActive
	}
	s, err := l.recognizer.Start(ctx)
	if err != nil {
		return nil, err
	}
	l.active = s
	log.Debug("listen started")
	return s, nil
}

// Listening reports whether a session is in flight.
func (l *Listener) Listening() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active != nil && !sessionDone(l.active)
}

// Stop cancels the in-flight session, if any.
func (l *Listener) Stop() {
	l.mu.Lock()
	s := l.active
	l.mu.Unlock()
	if s != nil {
		s.Cancel()
	}
}

func sessionDone(s *Session) bool {
	select {
	case <-s.Done():
		return true
	default:
		return false
	}
}
