package services

import (
	"context"
	"sync"

	"eoapi/internal/events"
)

// MessageService is the in-process message bus. Subscribers are called
// synchronously in subscription order; every message is also forwarded to
// the frontend as an events.AppEventMessage.
type MessageService struct {
	context context.Context
	emitter events.Emitter

	mu     sync.RWMutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id      int
	handler func(events.Message)
}

func NewMessageService(emitter events.Emitter) *MessageService {
	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	return &MessageService{emitter: emitter}
}

func (m *MessageService) Startup(ctx context.Context) {
	m.mu.Lock()
	m.context = ctx
	m.mu.Unlock()
}

// Subscribe registers handler and returns a func that removes it again.
// Handlers must not call Subscribe or the returned func themselves.
func (m *MessageService) Subscribe(handler func(events.Message)) func() {
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.subs = append(m.subs, subscription{id: id, handler: handler})
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, s := range m.subs {
				if s.id == id {
					m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (m *MessageService) Publish(ctx context.Context, msg events.Message) {
	if msg == nil {
		return
	}
	m.mu.RLock()
	handlers := make([]func(events.Message), len(m.subs))
	for i, s := range m.subs {
		handlers[i] = s.handler
	}
	appCtx := m.context
	m.mu.RUnlock()

	for _, h := range handlers {
		h(msg)
	}

	if appCtx != nil {
		if ctx == nil {
			ctx = appCtx
		}
		m.emitter.Emit(ctx, events.AppEventMessage, events.Wrap(msg))
	}
}
