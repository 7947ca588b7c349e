package domain

import "context"

// GenerationRequest is a single structured-output call to a hosted model.
type GenerationRequest struct {
	Model             string
	Prompt            string
	SystemInstruction string
	Schema            *Schema
}

// LLMClient generates text that is expected to be a JSON document matching
// the request schema. Implementations do not parse the result.
type LLMClient interface {
	GenerateJSON(ctx context.Context, req GenerationRequest) (string, error)
}
