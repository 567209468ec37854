// Package config loads quotesmith settings from the config file, the
// environment and an optional .env file.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	LogLevel string        `mapstructure:"log_level" toml:"log_level" validate:"oneof=debug info warn error"`
	LLM      LLMConfig     `mapstructure:"llm" toml:"llm"`
	Export   ExportConfig  `mapstructure:"export" toml:"export"`
	Fonts    FontsConfig   `mapstructure:"fonts" toml:"fonts"`
	Storage  StorageConfig `mapstructure:"storage" toml:"storage"`
}

// LLMConfig contains the text-generation settings.
type LLMConfig struct {
	// APIKey is usually supplied through GEMINI_API_KEY rather than the file.
	APIKey  string        `mapstructure:"api_key" toml:"api_key,omitempty"`
	Model   string        `mapstructure:"model" toml:"model" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" toml:"timeout" validate:"gt=0"`
}

// ExportConfig contains the PNG export settings.
type ExportConfig struct {
	Dir        string  `mapstructure:"dir" toml:"dir" validate:"required"`
	FileName   string  `mapstructure:"file_name" toml:"file_name" validate:"required,endswith=.png"`
	PixelRatio float64 `mapstructure:"pixel_ratio" toml:"pixel_ratio" validate:"gt=0,lte=4"`
	CacheBust  bool    `mapstructure:"cache_bust" toml:"cache_bust"`
}

// FontsConfig points at a directory of TTF files for the card fonts.
type FontsConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"`
}

// StorageConfig locates the archive database and the debug log.
type StorageConfig struct {
	DBPath  string `mapstructure:"db_path" toml:"db_path" validate:"required"`
	LogPath string `mapstructure:"log_path" toml:"log_path" validate:"required"`
}
