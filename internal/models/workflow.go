package models

import (
	"time"

	"gorm.io/datatypes"
)

// Workflow persists the state of one video production run.
type Workflow struct {
	ID string `gorm:"type:varchar(64);primaryKey"` // Workflow identifier (UUID).

	Status      string `gorm:"type:varchar(32);not null;index"` // queued, running, completed, failed.
	CurrentStep int    `gorm:"not null;default:0"`              // Index of the step in flight.
	Quote       string `gorm:"type:text"`                       // Quote the run was started with.
	Error       string `gorm:"type:text"`                       // Failure detail, when failed.

	Steps     datatypes.JSON `gorm:"type:jsonb"` // Ordered step records.
	Platforms datatypes.JSON `gorm:"type:jsonb"` // Target social platforms.

	CreatedAt   time.Time  `gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime"` // Last transition timestamp.
	CompletedAt *time.Time // Terminal transition timestamp.
}
