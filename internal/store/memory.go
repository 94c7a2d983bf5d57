package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store used in tests and for local runs without a
// database. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]json.RawMessage)}
}

func (m *Memory) Get(_ context.Context, path string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.entries[path]
	if !ok {
		return nil, ErrNotFound
	}
	return raw, nil
}

func (m *Memory) List(_ context.Context, prefix string) (map[string]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make(map[string]json.RawMessage)
	for path, raw := range m.entries {
		if !strings.HasPrefix(path, prefix+"/") {
			continue
		}
		key := strings.TrimPrefix(path, prefix+"/")
		if strings.Contains(key, "/") {
			continue
		}
		entries[key] = raw
	}
	return entries, nil
}

func (m *Memory) Set(_ context.Context, path string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[path] = raw
	return nil
}

func (m *Memory) Update(_ context.Context, path string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.entries[path]
	if !ok {
		return ErrNotFound
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	for k, v := range fields {
		doc[k] = v
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.entries[path] = merged
	return nil
}

func (m *Memory) Remove(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, path)
	return nil
}

func (m *Memory) GenerateKey() string {
	return uuid.NewString()
}
