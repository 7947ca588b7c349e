package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Harshitk-cp/mindshift/internal/domain"
	"github.com/Harshitk-cp/mindshift/internal/llm"
)

func TestTransformService_WellFormedResponse(t *testing.T) {
	mockLLM := llm.NewMockClient()
	svc := NewTransformService(mockLLM, "gemini-2.5-pro", zap.NewNop())

	got, err := svc.Transform(context.Background(), "I am too young to lead")
	require.NoError(t, err)

	want := domain.ExampleBeliefs()
	assert.Equal(t, want.Logic, got.Logic)
	assert.Equal(t, want.Emotion, got.Emotion)
	assert.Equal(t, want.Animal, got.Animal)
	assert.Equal(t, 15, got.Count())
	assert.False(t, svc.Degraded())
}

func TestTransformService_BuildsRequest(t *testing.T) {
	mockLLM := llm.NewMockClient()
	svc := NewTransformService(mockLLM, "gemini-2.5-pro", zap.NewNop())

	belief := "My father worked in the army and looked down on big business."
	_, err := svc.Transform(context.Background(), belief)
	require.NoError(t, err)

	req, ok := mockLLM.LastCall()
	require.True(t, ok)
	assert.Equal(t, "gemini-2.5-pro", req.Model)
	assert.Contains(t, req.Prompt, belief)
	assert.Contains(t, req.Prompt, "exactly 15 beliefs")
	assert.Contains(t, req.Prompt, "12 English Tenses")
	assert.Equal(t, llm.SystemInstruction(), req.SystemInstruction)
	require.NotNil(t, req.Schema)
	assert.Equal(t, domain.SchemaObject, req.Schema.Type)
	assert.Equal(t, []string{"logic", "emotion", "animal"}, req.Schema.Required)
}

func TestTransformService_InvalidJSON(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	mockLLM := llm.NewMockClient()
	mockLLM.Response = "not json"
	svc := NewTransformService(mockLLM, "", zap.New(core))

	got, err := svc.Transform(context.Background(), "I am too young to lead")

	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidResponseFormat))
	assert.Equal(t, "The AI returned an invalid response format.", err.Error())

	entries := logs.FilterField(zap.String("raw", "not json")).All()
	assert.Len(t, entries, 1, "raw payload should be logged")
	assert.Equal(t, int64(1), svc.Stats().Failures)
}

func TestTransformService_WrongShape(t *testing.T) {
	mockLLM := llm.NewMockClient()
	mockLLM.Response = `{"logic":[],"emotion":[],"animal":[]}`
	svc := NewTransformService(mockLLM, "", zap.NewNop())

	_, err := svc.Transform(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrInvalidResponseFormat)
}

func TestTransformService_TransportErrorPropagates(t *testing.T) {
	mockLLM := llm.NewMockClient()
	mockLLM.Error = errors.New("connection refused")
	svc := NewTransformService(mockLLM, "", zap.NewNop())

	_, err := svc.Transform(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
	assert.False(t, errors.Is(err, domain.ErrInvalidResponseFormat))
}

func TestTransformService_DegradedMode(t *testing.T) {
	svc := NewTransformService(nil, "", zap.NewNop())
	svc.SetMockDelay(50 * time.Millisecond)
	require.True(t, svc.Degraded())

	start := time.Now()
	got, err := svc.Transform(context.Background(), "I am too young to lead")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Equal(t, 15, got.Count())
	assert.Len(t, got.Tenses(), 12)
	assert.Equal(t, TransformStats{Requests: 1, Degraded: 1}, svc.Stats())
}

func TestTransformService_DegradedModeDefaultDelay(t *testing.T) {
	svc := NewTransformService(nil, "", zap.NewNop())
	assert.Equal(t, 1500*time.Millisecond, svc.mockDelay)
}

func TestTransformService_DegradedModeCancelledContext(t *testing.T) {
	svc := NewTransformService(nil, "", zap.NewNop())
	svc.SetMockDelay(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := svc.Transform(ctx, "I am too young to lead")
	require.NoError(t, err)
	assert.Equal(t, domain.ExampleBeliefs(), got)
}

func TestTransformService_DoesNotValidateInput(t *testing.T) {
	mockLLM := llm.NewMockClient()
	svc := NewTransformService(mockLLM, "", zap.NewNop())

	_, err := svc.Transform(context.Background(), "   ")
	require.NoError(t, err)

	req, _ := mockLLM.LastCall()
	assert.True(t, strings.Contains(req.Prompt, `"   "`))
}
