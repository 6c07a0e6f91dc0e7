// Package settings persists the wizard's non-secret preferences.
// API keys stay client-side and are never written here.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quoteforge/quoteforge/internal/models"
)

// Settings are the persisted wizard preferences.
type Settings struct {
	DefaultQuoteType    string `json:"defaultQuoteType"`
	DefaultPromptStyle  string `json:"defaultPromptStyle"`
	DefaultVideoQuality string `json:"defaultVideoQuality"`
	StorageProvider     string `json:"storageProvider"`
	StoragePath         string `json:"storagePath"`
	FFmpegPath          string `json:"ffmpegPath"`
}

// Defaults returns the built-in settings values.
func Defaults() Settings {
	return Settings{
		DefaultQuoteType:    DefaultQuoteType,
		DefaultPromptStyle:  DefaultPromptStyle,
		DefaultVideoQuality: DefaultVideoQuality,
		StorageProvider:     DefaultStorageProvider,
		StoragePath:         DefaultStoragePath,
		FFmpegPath:          DefaultFFmpegPath,
	}
}

// Store reads and writes settings rows.
type Store struct {
	db *gorm.DB
}

// NewStore builds a settings store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load returns the persisted settings, filling gaps with defaults.
func (s *Store) Load(ctx context.Context) (Settings, error) {
	out := Defaults()

	var rows []models.Setting
	if errFind := s.db.WithContext(ctx).Find(&rows).Error; errFind != nil {
		return Settings{}, fmt.Errorf("settings: load: %w", errFind)
	}
	for _, row := range rows {
		var value string
		if errDecode := json.Unmarshal(row.Value, &value); errDecode != nil || value == "" {
			continue
		}
		switch row.Key {
		case DefaultQuoteTypeKey:
			out.DefaultQuoteType = value
		case DefaultPromptStyleKey:
			out.DefaultPromptStyle = value
		case DefaultVideoQualityKey:
			out.DefaultVideoQuality = value
		case StorageProviderKey:
			out.StorageProvider = value
		case StoragePathKey:
			out.StoragePath = value
		case FFmpegPathKey:
			out.FFmpegPath = value
		}
	}
	return out, nil
}

// Save upserts the given settings. Empty fields keep their current value.
func (s *Store) Save(ctx context.Context, in Settings) error {
	pairs := map[string]string{
		DefaultQuoteTypeKey:    in.DefaultQuoteType,
		DefaultPromptStyleKey:  in.DefaultPromptStyle,
		DefaultVideoQualityKey: in.DefaultVideoQuality,
		StorageProviderKey:     in.StorageProvider,
		StoragePathKey:         in.StoragePath,
		FFmpegPathKey:          in.FFmpegPath,
	}
	now := time.Now().UTC()
	for key, value := range pairs {
		if value == "" {
			continue
		}
		payload, errMarshal := json.Marshal(value)
		if errMarshal != nil {
			return fmt.Errorf("settings: marshal %s: %w", key, errMarshal)
		}
		record := models.Setting{
			Key:       key,
			Value:     payload,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if errUpsert := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&record).Error; errUpsert != nil {
			return fmt.Errorf("settings: upsert %s: %w", key, errUpsert)
		}
	}
	return nil
}
