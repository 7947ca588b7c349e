package surface

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultSessionTTL      = 30 * time.Minute
	defaultJanitorInterval = 5 * time.Minute
)

// Manager owns the in-memory sessions, runs submissions in the background and
// evicts idle sessions on a schedule.
type Manager struct {
	transformer  Transformer
	placeholders []string
	logger       *zap.Logger
	now          func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	inflight sync.WaitGroup

	ttl      time.Duration
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewManager(t Transformer, placeholders []string, logger *zap.Logger) *Manager {
	return &Manager{
		transformer:  t,
		placeholders: placeholders,
		logger:       logger,
		now:          time.Now,
		sessions:     make(map[string]*Session),
		ttl:          DefaultSessionTTL,
		interval:     defaultJanitorInterval,
		stopCh:       make(chan struct{}),
	}
}

func (m *Manager) SetTTL(d time.Duration) {
	m.ttl = d
}

func (m *Manager) SetInterval(d time.Duration) {
	m.interval = d
}

// Create starts a new Idle session with a randomly chosen placeholder.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString(), pickPlaceholder(m.placeholders), m.now())

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given id and marks it as seen.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()

	if ok {
		s.touch(m.now())
	}
	return s, ok
}

// GetOrCreate returns the session for id, creating a fresh one when the id is
// unknown or empty. created reports whether a new session was made.
func (m *Manager) GetOrCreate(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s, false
		}
	}
	return m.Create(), true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Submit applies the Idle -> Loading transition and runs the transformation
// in the background. Blank input and submissions while a request is in
// flight are no-ops and return false.
func (m *Manager) Submit(s *Session, input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}

	done, ok := s.begin(input)
	if !ok {
		return false
	}

	m.inflight.Add(1)
	go func() {
		defer m.inflight.Done()
		defer close(done)

		start := m.now()
		// The model call is not tied to the HTTP request that started it.
		result, err := m.transformer.Transform(context.Background(), input)
		state := s.settle(result, err)

		fields := []zap.Field{
			zap.String("session_id", s.ID),
			zap.String("state", string(state)),
			zap.Duration("duration", m.now().Sub(start)),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		m.logger.Info("transformation settled", fields...)
	}()
	return true
}

// Wait blocks until every in-flight transformation has settled.
func (m *Manager) Wait() {
	m.inflight.Wait()
}

// Evict removes sessions idle for longer than maxIdle. Loading sessions are kept.
func (m *Manager) Evict(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if s.idleSince(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Start runs the session janitor on a periodic schedule in a background goroutine.
func (m *Manager) Start() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.logger.Info("session janitor started", zap.Duration("interval", m.interval), zap.Duration("ttl", m.ttl))

		for {
			select {
			case <-ticker.C:
				if n := m.Evict(m.ttl); n > 0 {
					m.logger.Info("evicted idle sessions", zap.Int("count", n))
				}
			case <-m.stopCh:
				m.logger.Info("session janitor stopped")
				return
			}
		}
	}()
}

// Stop stops the janitor and waits for in-flight transformations.
func (m *Manager) Stop() {
	close(m.stopCh)
	m.wg.Wait()
	m.inflight.Wait()
}
