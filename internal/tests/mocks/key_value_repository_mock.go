package mocks

import (
	"context"
	"sync"
)

// KeyValueRepositoryMock is an in-memory store; the Func fields override it.
type KeyValueRepositoryMock struct {
	GetFunc    func(ctx context.Context, key string) (string, bool, error)
	SetFunc    func(ctx context.Context, key, value string) error
	DeleteFunc func(ctx context.Context, key string) error

	mu     sync.Mutex
	values map[string]string
}

func NewKeyValueRepositoryMock(initial map[string]string) *KeyValueRepositoryMock {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &KeyValueRepositoryMock{values: values}
}

func (m *KeyValueRepositoryMock) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *KeyValueRepositoryMock) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func (m *KeyValueRepositoryMock) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Value reads the in-memory map directly.
func (m *KeyValueRepositoryMock) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Put writes the in-memory map directly, bypassing SetFunc.
func (m *KeyValueRepositoryMock) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
}
