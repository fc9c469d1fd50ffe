package services

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"eoapi/internal/events"
)

// Notifier shows a fire-and-forget toast.
type Notifier interface {
	Create(severity events.EventType, text string)
}

type NotificationService struct {
	context context.Context
	emitter events.Emitter
	log     logger.Logger
}

func NewNotificationService(emitter events.Emitter, log logger.Logger) *NotificationService {
	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	return &NotificationService{emitter: emitter, log: log}
}

func (n *NotificationService) Startup(ctx context.Context) {
	n.context = ctx
}

func (n *NotificationService) Create(severity events.EventType, text string) {
	evt := events.CreateNotification(severity, text)
	if n.context == nil {
		// no frontend yet
		n.log.Info(fmt.Sprintf("notification (%s): %s", severity, text))
		return
	}
	n.emitter.Emit(n.context, events.AppEventNotification, evt)
}
