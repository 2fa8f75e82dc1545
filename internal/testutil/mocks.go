// Package testutil provides hand-rolled test doubles shared across
// service and handler tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemoryStore is an in-memory KeyValueStore with injectable failures.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte

	// When set, the corresponding operations return these errors.
	GetErr    error
	SetErr    error
	RemoveErr error
	ClearErr  error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.data = make(map[string][]byte)
	return nil
}

// Len reports the number of stored keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// MockGenerator scripts Generate responses one call at a time. Each
// call consumes the next Response entry; when the script runs out the
// last entry repeats.
type MockGenerator struct {
	mu        sync.Mutex
	Responses []GenerateResponse
	Prompts   []string
	calls     int
}

type GenerateResponse struct {
	Text string
	Err  error
}

func (g *MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Prompts = append(g.Prompts, prompt)
	idx := g.calls
	g.calls++
	if len(g.Responses) == 0 {
		return "", nil
	}
	if idx >= len(g.Responses) {
		idx = len(g.Responses) - 1
	}
	r := g.Responses[idx]
	return r.Text, r.Err
}

func (g *MockGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// MockPublisher records every published event.
type MockPublisher struct {
	mu     sync.Mutex
	Events []websocket.Event
}

func (p *MockPublisher) Publish(event websocket.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
}

func (p *MockPublisher) EventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.Events))
	for i, e := range p.Events {
		types[i] = e.Type
	}
	return types
}

// MakeBudget builds a budget with a fresh ID for test fixtures.
func MakeBudget(name string, amount string) domain.Budget {
	return domain.Budget{
		ID:        uuid.New(),
		Name:      name,
		Amount:    decimal.RequireFromString(amount),
		CreatedAt: time.Now().UTC(),
		Color:     "0, 70%, 45%",
	}
}

// MakeExpense builds an expense attached to the given budget.
func MakeExpense(name string, amount string, budgetID uuid.UUID) domain.Expense {
	return domain.Expense{
		ID:        uuid.New(),
		Name:      name,
		Amount:    decimal.RequireFromString(amount),
		BudgetID:  budgetID,
		CreatedAt: time.Now().UTC(),
	}
}
