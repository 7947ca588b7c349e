package surface

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/mindshift/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// gatedTransformer blocks each call until release is closed.
type gatedTransformer struct {
	mu      sync.Mutex
	calls   []string
	release chan struct{}
	result  *domain.TransformedBeliefs
	err     error
}

func newGatedTransformer() *gatedTransformer {
	return &gatedTransformer{release: make(chan struct{}), result: domain.ExampleBeliefs()}
}

func (g *gatedTransformer) Transform(ctx context.Context, limitingBelief string) (*domain.TransformedBeliefs, error) {
	g.mu.Lock()
	g.calls = append(g.calls, limitingBelief)
	g.mu.Unlock()

	<-g.release
	return g.result, g.err
}

func (g *gatedTransformer) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func waitSettled(t *testing.T, s *Session) {
	t.Helper()
	select {
	case <-s.Settled():
	case <-time.After(2 * time.Second):
		t.Fatal("session did not settle")
	}
}

func TestSubmit_IdleToLoadingToSuccess(t *testing.T) {
	tr := newGatedTransformer()
	m := NewManager(tr, []string{"I am too young to lead."}, zap.NewNop())
	s := m.Create()

	require.Equal(t, StateIdle, s.State())
	require.True(t, m.Submit(s, "  I am too young to lead  "))

	v := s.View()
	assert.Equal(t, StateLoading, v.State)
	assert.True(t, v.Loading)
	assert.Nil(t, v.Result)
	assert.Empty(t, v.Error)

	close(tr.release)
	waitSettled(t, s)

	v = s.View()
	assert.Equal(t, StateSuccess, v.State)
	assert.False(t, v.Loading)
	require.NotNil(t, v.Result)
	assert.Equal(t, 15, v.Result.Count())
	assert.Empty(t, v.Error)
	assert.Equal(t, []string{"  I am too young to lead  "}, tr.calls)

	m.Wait()
}

func TestSubmit_GuardsDuplicateSubmission(t *testing.T) {
	tr := newGatedTransformer()
	m := NewManager(tr, nil, zap.NewNop())
	s := m.Create()

	require.True(t, m.Submit(s, "first"))
	assert.False(t, m.Submit(s, "second"))
	assert.False(t, m.Submit(s, "third"))

	close(tr.release)
	waitSettled(t, s)
	m.Wait()

	assert.Equal(t, 1, tr.callCount())
}

func TestSubmit_BlankInputIsNoOp(t *testing.T) {
	tr := newGatedTransformer()
	close(tr.release)
	m := NewManager(tr, nil, zap.NewNop())
	s := m.Create()

	for _, input := range []string{"", "   ", "\n\t "} {
		assert.False(t, m.Submit(s, input))
	}

	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 0, tr.callCount())
}

func TestSubmit_Failure(t *testing.T) {
	tr := newGatedTransformer()
	tr.result = nil
	tr.err = &domain.ResponseFormatError{Raw: "not json"}
	close(tr.release)

	m := NewManager(tr, nil, zap.NewNop())
	s := m.Create()

	require.True(t, m.Submit(s, "I am too young to lead"))
	waitSettled(t, s)
	m.Wait()

	v := s.View()
	assert.Equal(t, StateFailure, v.State)
	assert.Equal(t, domain.InvalidResponseFormatMessage, v.Error)
	assert.Nil(t, v.Result)
}

type emptyError struct{}

func (emptyError) Error() string { return "" }

func TestSubmit_FailureWithoutMessage(t *testing.T) {
	tr := newGatedTransformer()
	tr.result = nil
	tr.err = emptyError{}
	close(tr.release)

	m := NewManager(tr, nil, zap.NewNop())
	s := m.Create()

	require.True(t, m.Submit(s, "x"))
	waitSettled(t, s)
	m.Wait()

	assert.Equal(t, GenericErrorMessage, s.View().Error)
}

func TestSubmit_ResubmitClearsPreviousOutcome(t *testing.T) {
	tr := newGatedTransformer()
	tr.result = nil
	tr.err = errors.New("upstream down")
	close(tr.release)

	m := NewManager(tr, nil, zap.NewNop())
	s := m.Create()

	require.True(t, m.Submit(s, "first"))
	waitSettled(t, s)
	require.Equal(t, StateFailure, s.State())

	gate := make(chan struct{})
	tr.mu.Lock()
	tr.release = gate
	tr.result = domain.ExampleBeliefs()
	tr.err = nil
	tr.mu.Unlock()

	require.True(t, m.Submit(s, "second"))
	v := s.View()
	assert.Equal(t, StateLoading, v.State)
	assert.Empty(t, v.Error, "error must be cleared on entering Loading")
	assert.Nil(t, v.Result)

	close(gate)
	waitSettled(t, s)
	m.Wait()

	v = s.View()
	assert.Equal(t, StateSuccess, v.State)
	assert.Empty(t, v.Error)
	assert.NotNil(t, v.Result)
}

func TestManager_PlaceholderChosenOnce(t *testing.T) {
	examples := []string{"a", "b", "c"}
	m := NewManager(newGatedTransformer(), examples, zap.NewNop())

	s := m.Create()
	assert.Contains(t, examples, s.Placeholder)

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Equal(t, s.Placeholder, got.Placeholder)
	assert.Equal(t, s.Placeholder, got.View().Placeholder)
}

func TestManager_GetOrCreate(t *testing.T) {
	m := NewManager(newGatedTransformer(), nil, zap.NewNop())

	s, created := m.GetOrCreate("")
	assert.True(t, created)

	again, created := m.GetOrCreate(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)

	_, created = m.GetOrCreate("unknown")
	assert.True(t, created)
	assert.Equal(t, 2, m.Len())
}

func TestManager_EvictSkipsLoading(t *testing.T) {
	tr := newGatedTransformer()
	m := NewManager(tr, nil, zap.NewNop())

	var clockMu sync.Mutex
	now := time.Now()
	m.now = func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return now
	}

	idle := m.Create()
	busy := m.Create()
	require.True(t, m.Submit(busy, "x"))

	clockMu.Lock()
	now = now.Add(time.Hour)
	clockMu.Unlock()
	assert.Equal(t, 1, m.Evict(30*time.Minute))

	_, ok := m.Get(idle.ID)
	assert.False(t, ok)
	_, ok = m.Get(busy.ID)
	assert.True(t, ok)

	close(tr.release)
	m.Wait()
}

func TestManager_StartStop(t *testing.T) {
	tr := newGatedTransformer()
	close(tr.release)
	m := NewManager(tr, nil, zap.NewNop())
	m.SetInterval(10 * time.Millisecond)
	m.SetTTL(time.Nanosecond)

	m.Create()
	m.Start()

	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 10*time.Millisecond)
	m.Stop()
}

func TestLoadPlaceholders(t *testing.T) {
	examples, err := LoadPlaceholders()
	require.NoError(t, err)
	assert.Contains(t, examples, "My father worked in the army and looked down on big business.")

	_, err = ParsePlaceholders([]byte("examples: []"))
	assert.Error(t, err)

	_, err = ParsePlaceholders([]byte("examples: [\"a\""))
	assert.Error(t, err)

	got, err := ParsePlaceholders([]byte("examples:\n  - \" x \"\n  - \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got)
}
