package models

import (
	"time"

	"gorm.io/datatypes"
)

// Setting stores one key/value configuration row.
type Setting struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement"`               // Primary key.
	Key       string         `gorm:"type:varchar(128);uniqueIndex;not null"` // Setting key.
	Value     datatypes.JSON `gorm:"type:jsonb"`                             // JSON value payload.
	CreatedAt time.Time      `gorm:"not null;autoCreateTime"`                // Creation timestamp.
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime"`                // Last update timestamp.
}
