package llm

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Harshitk-cp/mindshift/internal/domain"
)

// MockClient is a configurable LLM client for testing.
// Set Response or Error to control what GenerateJSON returns.
type MockClient struct {
	mu sync.Mutex

	Response string
	Error    error

	// Call tracking for assertions
	Calls []domain.GenerationRequest
}

// NewMockClient returns a client that answers with the example beliefs as JSON.
func NewMockClient() *MockClient {
	body, _ := json.Marshal(domain.ExampleBeliefs())
	return &MockClient{Response: string(body)}
}

func (c *MockClient) GenerateJSON(ctx context.Context, req domain.GenerationRequest) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Calls = append(c.Calls, req)
	if c.Error != nil {
		return "", c.Error
	}
	return c.Response, nil
}

// CallCount returns how many times GenerateJSON was invoked.
func (c *MockClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Calls)
}

// LastCall returns the most recent request, or false if there was none.
func (c *MockClient) LastCall() (domain.GenerationRequest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Calls) == 0 {
		return domain.GenerationRequest{}, false
	}
	return c.Calls[len(c.Calls)-1], true
}
