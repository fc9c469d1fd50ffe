package models

import "time"

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UUID        string    `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Environment struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	ProjectID  uint              `gorm:"index;not null" json:"projectID"`
	Name       string            `gorm:"size:255;not null" json:"name"`
	HostURI    string            `gorm:"size:512" json:"hostUri"`
	Parameters map[string]string `gorm:"serializer:json" json:"parameters"`
}

// ProjectExport is the payload of the default "eoapi" export.
type ProjectExport struct {
	Version      string        `json:"version"`
	Project      Project       `json:"project"`
	APIData      []ApiData     `json:"apiData"`
	Environments []Environment `json:"environment"`
}
