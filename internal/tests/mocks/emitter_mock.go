package mocks

import (
	"context"
	"sync"

	"eoapi/internal/events"
)

// EmittedEvent holds a single recorded emission for test assertions.
type EmittedEvent struct {
	Name string
	Data any
}

// EmitterMock records every event instead of sending it to a frontend.
type EmitterMock struct {
	mu     sync.Mutex
	Events []EmittedEvent
}

func (m *EmitterMock) Emit(_ context.Context, name string, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, EmittedEvent{Name: name, Data: data})
}

func (m *EmitterMock) Named(name string) []EmittedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []EmittedEvent
	for _, e := range m.Events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

type Notice struct {
	Severity events.EventType
	Text     string
}

// NotifierMock records notifications.
type NotifierMock struct {
	mu      sync.Mutex
	Notices []Notice
}

func (m *NotifierMock) Create(severity events.EventType, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notices = append(m.Notices, Notice{Severity: severity, Text: text})
}

func (m *NotifierMock) All() []Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Notice, len(m.Notices))
	copy(out, m.Notices)
	return out
}

// RefresherMock counts view refreshes.
type RefresherMock struct {
	mu    sync.Mutex
	Calls int
	Err   error
}

func (m *RefresherMock) Refresh() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	return m.Err
}

func (m *RefresherMock) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}
