package events

import "eoapi/internal/models"

type MessageType string

const (
	MessageDataSourceChange MessageType = "onDataSourceChange"
	MessageProjectExported  MessageType = "onProjectExported"
)

// Message is one variant of what travels over the in-process message bus.
// Subscribers switch on the concrete type.
type Message interface {
	Type() MessageType
}

// DataSourceChange is published after a new data source mode was persisted.
type DataSourceChange struct {
	DataSourceType models.DataSourceMode `json:"dataSourceType"`
}

func (DataSourceChange) Type() MessageType { return MessageDataSourceChange }

// ProjectExported reports the outcome of a project export.
type ProjectExported struct {
	Extension string `json:"extension"`
	Filename  string `json:"filename"`
	OK        bool   `json:"ok"`
}

func (ProjectExported) Type() MessageType { return MessageProjectExported }

// Envelope is the frontend representation of a Message.
type Envelope struct {
	Type MessageType `json:"type"`
	Data Message     `json:"data"`
}

func Wrap(msg Message) Envelope {
	return Envelope{Type: msg.Type(), Data: msg}
}
