package repository

import (
	"context"
	"time"
)

// MockCache is an in-memory CacheRepository for tests.
type MockCache struct {
	Store    map[string]string
	GetCalls int
	SetCalls int
}

func NewMockCache() *MockCache {
	return &MockCache{Store: make(map[string]string)}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.GetCalls++
	val, ok := m.Store[key]
	return val, ok
}

func (m *MockCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.SetCalls++
	m.Store[key] = value
	return nil
}
