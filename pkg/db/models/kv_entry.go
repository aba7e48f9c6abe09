package models

import "time"

// KVEntry stores one whole-snapshot blob (a cart or the subscriber list)
// under a scope and a fixed key.
type KVEntry struct {
	Scope     string    `gorm:"column:scope;primaryKey;size:128"`
	Key       string    `gorm:"column:entry_key;primaryKey;size:64"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (KVEntry) TableName() string { return "kv_entries" }
