package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	AppEventNotification = "event:notification"
	AppEventMessage      = "event:message"
	AppEventNavigate     = "event:router:navigate"
)

// Notification is a user-visible toast payload.
type Notification struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Window    string    `json:"window,omitempty"`
}

type contextKey string

const windowContextKey contextKey = "eoapi/events/window"

// WithWindow returns a derived context annotated with the given window key
// so emitted notifications can be scoped to one frontend window.
func WithWindow(ctx context.Context, window string) context.Context {
	if strings.TrimSpace(window) == "" {
		return ctx
	}
	return context.WithValue(ctx, windowContextKey, window)
}

// WindowFromContext extracts the window key associated with ctx.
func WindowFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(windowContextKey).(string); ok {
		return v
	}
	return ""
}

func CreateNotification(eventType EventType, message string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info Notification.
func NewInfo(message string) Notification {
	return CreateNotification(EventInfo, message)
}

// NewWarn creates a warn Notification.
func NewWarn(message string) Notification {
	return CreateNotification(EventWarn, message)
}

// NewError creates an error Notification.
func NewError(message string) Notification {
	return CreateNotification(EventError, message)
}

// NewSuccess creates a success Notification.
func NewSuccess(message string) Notification {
	return CreateNotification(EventSuccess, message)
}
