package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/quoteforge/quoteforge/internal/models"
	internalsettings "github.com/quoteforge/quoteforge/internal/settings"
)

// Migrate brings the schema up to date and seeds default settings.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}

	if errAutoMigrate := conn.AutoMigrate(
		&models.Workflow{},
		&models.UsageRecord{},
		&models.Setting{},
	); errAutoMigrate != nil {
		return fmt.Errorf("db: migrate: %w", errAutoMigrate)
	}
	if errSeed := ensureDefaultSettings(conn); errSeed != nil {
		return errSeed
	}

	// ddl defines an index statement to apply.
	type ddl struct {
		name string // Human-readable name for error reporting.
		sql  string // SQL to execute.
	}
	ddls := []ddl{
		{
			name: "idx_workflows_status_created_at",
			sql: `
				CREATE INDEX IF NOT EXISTS idx_workflows_status_created_at
				ON workflows (status, created_at DESC)
			`,
		},
		{
			name: "idx_usage_records_capability_created_at",
			sql: `
				CREATE INDEX IF NOT EXISTS idx_usage_records_capability_created_at
				ON usage_records (capability, created_at DESC)
			`,
		},
		{
			name: "idx_usage_records_provider_created_at",
			sql: `
				CREATE INDEX IF NOT EXISTS idx_usage_records_provider_created_at
				ON usage_records (provider, created_at DESC)
			`,
		},
		{
			name: "idx_settings_updated_at_key",
			sql: `
				CREATE INDEX IF NOT EXISTS idx_settings_updated_at_key
				ON settings (updated_at DESC, key DESC)
			`,
		},
	}
	for _, item := range ddls {
		if errDDL := conn.Exec(item.sql).Error; errDDL != nil {
			return fmt.Errorf("db: create index %s: %w", item.name, errDDL)
		}
	}

	return nil
}

// ensureDefaultSettings seeds the wizard preference rows.
func ensureDefaultSettings(conn *gorm.DB) error {
	defaults := map[string]string{
		internalsettings.DefaultQuoteTypeKey:    internalsettings.DefaultQuoteType,
		internalsettings.DefaultPromptStyleKey:  internalsettings.DefaultPromptStyle,
		internalsettings.DefaultVideoQualityKey: internalsettings.DefaultVideoQuality,
		internalsettings.StorageProviderKey:     internalsettings.DefaultStorageProvider,
		internalsettings.StoragePathKey:         internalsettings.DefaultStoragePath,
		internalsettings.FFmpegPathKey:          internalsettings.DefaultFFmpegPath,
	}
	for key, value := range defaults {
		if errEnsure := ensureStringSetting(conn, key, value); errEnsure != nil {
			return errEnsure
		}
	}
	return nil
}

// ensureStringSetting ensures a string setting exists and defaults when empty.
func ensureStringSetting(conn *gorm.DB, key, value string) error {
	payload, errMarshal := json.Marshal(value)
	if errMarshal != nil {
		return fmt.Errorf("db: marshal %s setting: %w", key, errMarshal)
	}

	var existing models.Setting
	if errFind := conn.Where("key = ?", key).First(&existing).Error; errFind == nil {
		trimmed := strings.TrimSpace(string(existing.Value))
		if len(existing.Value) == 0 || trimmed == "" || trimmed == "null" {
			if errUpdate := conn.Model(&existing).Updates(map[string]any{
				"value":      datatypes.JSON(payload),
				"updated_at": time.Now().UTC(),
			}).Error; errUpdate != nil {
				return fmt.Errorf("db: update %s setting: %w", key, errUpdate)
			}
		}
		return nil
	} else if !errors.Is(errFind, gorm.ErrRecordNotFound) {
		return fmt.Errorf("db: query %s setting: %w", key, errFind)
	}

	now := time.Now().UTC()
	setting := models.Setting{
		Key:       key,
		Value:     payload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if errCreate := conn.Create(&setting).Error; errCreate != nil {
		return fmt.Errorf("db: create %s setting: %w", key, errCreate)
	}
	return nil
}
