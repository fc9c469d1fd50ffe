package models

import "time"

// KeyValue is a row of the durable key-value store shared by every service
// instance that opens the same database.
type KeyValue struct {
	Key       string `gorm:"primaryKey;column:storage_key;size:191"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
