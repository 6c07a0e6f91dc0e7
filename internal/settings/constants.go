package settings

// DB config keys and defaults for settings.
const (
	// DefaultQuoteTypeKey is the DB config key for the default quote type.
	DefaultQuoteTypeKey = "DEFAULT_QUOTE_TYPE"
	// DefaultPromptStyleKey is the DB config key for the default prompt style.
	DefaultPromptStyleKey = "DEFAULT_PROMPT_STYLE"
	// DefaultVideoQualityKey is the DB config key for the default video quality.
	DefaultVideoQualityKey = "DEFAULT_VIDEO_QUALITY"
	// StorageProviderKey is the DB config key for the asset storage backend.
	StorageProviderKey = "STORAGE_PROVIDER"
	// StoragePathKey is the DB config key for the local asset directory.
	StoragePathKey = "STORAGE_PATH"
	// FFmpegPathKey is the DB config key for the ffmpeg binary location.
	FFmpegPathKey = "FFMPEG_PATH"

	// DefaultQuoteType is the fallback quote type.
	DefaultQuoteType = "philosophical"
	// DefaultPromptStyle is the fallback prompt style.
	DefaultPromptStyle = "balanced"
	// DefaultVideoQuality is the fallback video quality.
	DefaultVideoQuality = "medium"
	// DefaultStorageProvider is the fallback storage backend.
	DefaultStorageProvider = "local"
	// DefaultStoragePath is the fallback local asset directory.
	DefaultStoragePath = "./uploads"
	// DefaultFFmpegPath is the fallback ffmpeg binary location.
	DefaultFFmpegPath = "/usr/local/bin/ffmpeg"
)
