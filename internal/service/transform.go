package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/Harshitk-cp/mindshift/internal/domain"
	"github.com/Harshitk-cp/mindshift/internal/llm"
	"go.uber.org/zap"
)

// DefaultMockDelay keeps the degraded path's latency close to a real model call.
const DefaultMockDelay = 1500 * time.Millisecond

// TransformStats counts transformation outcomes since startup.
type TransformStats struct {
	Requests int64 `json:"requests"`
	Failures int64 `json:"failures"`
	Degraded int64 `json:"degraded"`
}

type TransformService struct {
	llmClient domain.LLMClient
	model     string
	mockDelay time.Duration
	logger    *zap.Logger

	requests atomic.Int64
	failures atomic.Int64
	degraded atomic.Int64
}

// NewTransformService creates the transformation client. A nil llmClient
// puts the service in degraded mode: no network calls, fixed example result.
func NewTransformService(llmClient domain.LLMClient, model string, logger *zap.Logger) *TransformService {
	return &TransformService{
		llmClient: llmClient,
		model:     model,
		mockDelay: DefaultMockDelay,
		logger:    logger,
	}
}

func (s *TransformService) SetMockDelay(d time.Duration) {
	s.mockDelay = d
}

// Degraded reports whether the service runs without a model credential.
func (s *TransformService) Degraded() bool {
	return s.llmClient == nil
}

// Stats returns a snapshot of the outcome counters.
func (s *TransformService) Stats() TransformStats {
	return TransformStats{
		Requests: s.requests.Load(),
		Failures: s.failures.Load(),
		Degraded: s.degraded.Load(),
	}
}

// Transform turns a limiting belief into fifteen empowering beliefs.
// The input is not validated; callers gate blank text. A response that is not
// valid JSON of the expected shape yields a *domain.ResponseFormatError.
func (s *TransformService) Transform(ctx context.Context, limitingBelief string) (*domain.TransformedBeliefs, error) {
	s.requests.Add(1)

	if s.llmClient == nil {
		s.degraded.Add(1)
		return s.example(ctx), nil
	}

	raw, err := s.llmClient.GenerateJSON(ctx, domain.GenerationRequest{
		Model:             s.model,
		Prompt:            llm.TransformPrompt(limitingBelief),
		SystemInstruction: llm.SystemInstruction(),
		Schema:            domain.BeliefsSchema(),
	})
	if err != nil {
		s.failures.Add(1)
		s.logger.Error("model request failed", zap.String("model", s.model), zap.Error(err))
		return nil, err
	}

	result, err := domain.ParseTransformedBeliefs(raw)
	if err != nil {
		s.failures.Add(1)
		s.logger.Error("failed to parse model response",
			zap.String("raw", raw),
			zap.NamedError("cause", unwrap(err)),
		)
		return nil, err
	}

	return result, nil
}

// example waits out the mock delay and returns the fixed result. A context
// that ends early shortens the wait but never turns it into an error.
func (s *TransformService) example(ctx context.Context) *domain.TransformedBeliefs {
	if s.mockDelay > 0 {
		timer := time.NewTimer(s.mockDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
	return domain.ExampleBeliefs()
}

func unwrap(err error) error {
	var rfe *domain.ResponseFormatError
	if errors.As(err, &rfe) && rfe.Err != nil {
		return rfe.Err
	}
	return err
}
