package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. QUOTESMITH_LLM_MODEL.
const EnvPrefix = "QUOTESMITH"

const appName = "quotesmith"

// apiKeyEnvAliases are accepted in addition to QUOTESMITH_LLM_API_KEY.
var apiKeyEnvAliases = []string{"GEMINI_API_KEY", "API_KEY"}

// DataHome returns XDG_DATA_HOME or its default.
func DataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// ConfigHome returns XDG_CONFIG_HOME or its default.
func ConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// DefaultPath returns the path of the config file.
func DefaultPath() string {
	return filepath.Join(ConfigHome(), appName, "config.toml")
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	dataDir := filepath.Join(DataHome(), appName)
	exportDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		exportDir = filepath.Join(home, "Pictures", appName)
	}
	return Config{
		LogLevel: "info",
		LLM: LLMConfig{
			Model:   "gemini-2.5-flash",
			Timeout: 60 * time.Second,
		},
		Export: ExportConfig{
			Dir:        exportDir,
			FileName:   "quote.png",
			PixelRatio: 2,
			CacheBust:  true,
		},
		Fonts: FontsConfig{
			Dir: filepath.Join(dataDir, "fonts"),
		},
		Storage: StorageConfig{
			DBPath:  filepath.Join(dataDir, "data.db"),
			LogPath: filepath.Join(dataDir, "debug.log"),
		},
	}
}

// Load reads configuration from path, falling back to DefaultPath when path
// is empty. A missing default file is created with the defaults; a missing
// explicit file is an error. Environment variables override file values.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			// Best effort: a read-only config home still runs on defaults.
			_ = WriteDefault(path)
		}
	}

	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(append([]string{"llm.api_key", EnvPrefix + "_LLM_API_KEY"}, apiKeyEnvAliases...)...); err != nil {
		return nil, fmt.Errorf("error binding api key env: %w", err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	cfg.Export.Dir = expandPath(cfg.Export.Dir)
	cfg.Fonts.Dir = expandPath(cfg.Fonts.Dir)
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Storage.LogPath = expandPath(cfg.Storage.LogPath)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", d.LLM.Model)
	v.SetDefault("llm.timeout", d.LLM.Timeout)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("export.file_name", d.Export.FileName)
	v.SetDefault("export.pixel_ratio", d.Export.PixelRatio)
	v.SetDefault("export.cache_bust", d.Export.CacheBust)
	v.SetDefault("fonts.dir", d.Fonts.Dir)
	v.SetDefault("storage.db_path", d.Storage.DBPath)
	v.SetDefault("storage.log_path", d.Storage.LogPath)
}

// fileConfig mirrors Config for writing; durations are stored as strings.
type fileConfig struct {
	LogLevel string `toml:"log_level"`
	LLM      struct {
		Model   string `toml:"model"`
		Timeout string `toml:"timeout"`
	} `toml:"llm"`
	Export  ExportConfig  `toml:"export"`
	Fonts   FontsConfig   `toml:"fonts"`
	Storage StorageConfig `toml:"storage"`
}

// WriteDefault writes the default configuration to path. The API key is
// never written.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	d := Defaults()
	var fc fileConfig
	fc.LogLevel = d.LogLevel
	fc.LLM.Model = d.LLM.Model
	fc.LLM.Timeout = d.LLM.Timeout.String()
	fc.Export = d.Export
	fc.Fonts = d.Fonts
	fc.Storage = d.Storage

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(fc); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// expandPath expands environment variables and a leading "~/".
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	return p
}
