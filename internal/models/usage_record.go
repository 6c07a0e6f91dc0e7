package models

import "time"

// UsageRecord stores metadata about one provider generation call.
// Prompts, keys, and generated payloads are never stored.
type UsageRecord struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Capability string `gorm:"type:varchar(32);not null;index"` // quote, background, music, video, probe.
	Provider   string `gorm:"type:varchar(64);not null;index"` // Provider identifier.
	Model      string `gorm:"type:varchar(128)"`               // Upstream model name.

	InputTokens  int   `gorm:"not null;default:0"` // Prompt tokens reported by the provider.
	OutputTokens int   `gorm:"not null;default:0"` // Completion tokens reported by the provider.
	DurationMS   int64 `gorm:"not null;default:0"` // Wall time of the provider call.
	Success      bool  `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index"` // Call timestamp.
}
