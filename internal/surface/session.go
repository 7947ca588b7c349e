package surface

import (
	"context"
	"sync"
	"time"

	"github.com/Harshitk-cp/mindshift/internal/domain"
)

// GenericErrorMessage is shown when a failed transformation carries no message.
const GenericErrorMessage = "An unexpected error occurred while transforming your belief."

// State is the phase of a session's input/display cycle.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// Transformer is the transformation client the surface drives.
type Transformer interface {
	Transform(ctx context.Context, limitingBelief string) (*domain.TransformedBeliefs, error)
}

// Session holds one browser's result/error/loading triple.
type Session struct {
	ID          string
	Placeholder string

	mu       sync.Mutex
	state    State
	input    string
	result   *domain.TransformedBeliefs
	errMsg   string
	lastSeen time.Time
	settled  chan struct{}
}

// View is a consistent snapshot of a session for rendering.
type View struct {
	ID          string                     `json:"id"`
	State       State                      `json:"state"`
	Placeholder string                     `json:"placeholder"`
	Input       string                     `json:"input"`
	Loading     bool                       `json:"loading"`
	Result      *domain.TransformedBeliefs `json:"result,omitempty"`
	Error       string                     `json:"error,omitempty"`
}

func newSession(id, placeholder string, now time.Time) *Session {
	settled := make(chan struct{})
	close(settled)
	return &Session{
		ID:          id,
		Placeholder: placeholder,
		state:       StateIdle,
		lastSeen:    now,
		settled:     settled,
	}
}

// View returns the current snapshot. Result and error are never both set,
// and neither is set while loading.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return View{
		ID:          s.ID,
		State:       s.state,
		Placeholder: s.Placeholder,
		Input:       s.input,
		Loading:     s.state == StateLoading,
		Result:      s.result,
		Error:       s.errMsg,
	}
}

// State returns the current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Settled returns a channel closed once the latest submission has finished.
// For a session that never submitted, the channel is already closed.
func (s *Session) Settled() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settled
}

// begin moves the session into Loading, clearing the previous outcome.
// It reports false if a request is already in flight.
func (s *Session) begin(input string) (chan struct{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateLoading {
		return nil, false
	}
	s.state = StateLoading
	s.input = input
	s.result = nil
	s.errMsg = ""
	s.settled = make(chan struct{})
	return s.settled, true
}

func (s *Session) settle(result *domain.TransformedBeliefs, err error) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err != nil:
		s.state = StateFailure
		s.errMsg = err.Error()
		if s.errMsg == "" {
			s.errMsg = GenericErrorMessage
		}
	case result == nil:
		s.state = StateFailure
		s.errMsg = GenericErrorMessage
	default:
		s.state = StateSuccess
		s.result = result
	}
	return s.state
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// idleSince reports whether the session is evictable: not loading and
// unseen since before the cutoff.
func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != StateLoading && s.lastSeen.Before(cutoff)
}
