package events

import (
	"context"
	"encoding/json"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emitter sends named events to the frontend. Services take an Emitter
// instead of calling the Wails runtime directly so they run without a
// Wails context in tests.
type Emitter interface {
	Emit(ctx context.Context, name string, data any)
}

// RuntimeEmitter forwards to runtime.EventsEmit. The context must be the
// one Wails passed to OnStartup.
type RuntimeEmitter struct{}

func (RuntimeEmitter) Emit(ctx context.Context, name string, data any) {
	if n, ok := data.(Notification); ok {
		if n.Window == "" {
			n.Window = WindowFromContext(ctx)
		}
		data = n
		logNotification(ctx, name, n)
	}
	runtime.EventsEmit(ctx, name, data)
}

// NopEmitter drops everything.
type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, string, any) {}

func logNotification(ctx context.Context, name string, n Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		runtime.LogError(ctx, "events: failed to marshal notification: "+err.Error())
		return
	}

	payload := name + " " + string(data)

	switch n.Type {
	case EventError:
		runtime.LogError(ctx, payload)
	case EventWarn:
		runtime.LogWarning(ctx, payload)
	default:
		runtime.LogInfo(ctx, payload)
	}
}
