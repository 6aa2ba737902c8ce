package store

import (
	"context"
	"os-scheduler-sim/internal/responses"
	"sync"

	"github.com/google/uuid"
)

type MemoryStore struct {
	runs map[string]responses.ScheduleResponse
	mu   sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[string]responses.ScheduleResponse),
	}
}

func (m *MemoryStore) Save(_ context.Context, response *responses.ScheduleResponse) (string, error) {
	id := uuid.NewString()
	response.RunID = id

	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[id] = *response
	return id, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*responses.ScheduleResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	response, exists := m.runs[id]
	if !exists {
		return nil, ErrRunNotFound
	}
	return &response, nil
}
