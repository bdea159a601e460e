package learnpath

import (
	"context"
	"sync"

	"github.com/learnyst/learnyst/internal/subject"
)

// MockResponse is a canned response for the MockGenerator.
type MockResponse struct {
	Nodes []subject.TopicNode
	Err   error
}

// MockGenerator is a deterministic Generator for testing.
// It returns canned responses in FIFO order and records all inputs.
// With an empty queue it returns the fixed outline.
type MockGenerator struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Input

	// Block, when set, makes Generate wait for the channel to close or the
	// context to end before answering.
	Block chan struct{}
}

var _ Generator = (*MockGenerator)(nil)

// NewMockGenerator creates a MockGenerator with the given canned responses.
func NewMockGenerator(responses ...MockResponse) *MockGenerator {
	return &MockGenerator{responses: responses}
}

func (m *MockGenerator) Generate(ctx context.Context, input Input) ([]subject.TopicNode, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, input)
	block := m.Block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-block:
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.responses) == 0 {
		return Outline(), nil
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Nodes, nil
}

// AddResponse appends a canned response to the queue.
func (m *MockGenerator) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
