package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jywlabs/promptbuilder/internal/template"
	"gopkg.in/yaml.v3"
)

// Clipboard methods.
const (
	ClipboardAuto    = "auto"
	ClipboardOSC52   = "osc52"
	ClipboardCommand = "command"
	ClipboardNone    = "none"
)

// Config is the effective promptbuilder configuration.
type Config struct {
	Serve     ServeConfig
	Export    ExportConfig
	Clipboard ClipboardConfig
	Log       LogConfig
}

// ServeConfig configures the local web surface.
type ServeConfig struct {
	Addr string
}

// ExportConfig configures where saved prompts go.
type ExportConfig struct {
	Dir      string
	FileName string
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	Method string
}

// LogConfig configures the zap logger and its rotating file.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// rawConfig is used for YAML unmarshaling to distinguish missing keys from explicit empty values.
type rawConfig struct {
	Serve struct {
		Addr *string `yaml:"addr"`
	} `yaml:"serve"`
	Export struct {
		Dir      *string `yaml:"dir"`
		FileName *string `yaml:"fileName"`
	} `yaml:"export"`
	Clipboard struct {
		Method *string `yaml:"method"`
	} `yaml:"clipboard"`
	Log struct {
		Level      *string `yaml:"level"`
		File       *string `yaml:"file"`
		MaxSizeMB  *int    `yaml:"maxSizeMB"`
		MaxBackups *int    `yaml:"maxBackups"`
		MaxAgeDays *int    `yaml:"maxAgeDays"`
		Compress   *bool   `yaml:"compress"`
	} `yaml:"log"`
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		Serve:     ServeConfig{Addr: "127.0.0.1:8080"},
		Export:    ExportConfig{Dir: "", FileName: template.DownloadFile},
		Clipboard: ClipboardConfig{Method: ClipboardAuto},
		Log: LogConfig{
			Level:      "info",
			File:       filepath.Join(template.Dir, template.LogsDir, "promptbuilder.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   false,
		},
	}
}

// Validate checks that the Config fields are valid.
func (c *Config) Validate() error {
	if c.Serve.Addr == "" {
		return fmt.Errorf("serve.addr must not be empty")
	}
	if c.Export.FileName == "" {
		return fmt.Errorf("export.fileName must not be empty")
	}
	if strings.ContainsAny(c.Export.FileName, `/\`) {
		return fmt.Errorf("export.fileName must be a bare file name, got %q", c.Export.FileName)
	}
	switch c.Clipboard.Method {
	case ClipboardAuto, ClipboardOSC52, ClipboardCommand, ClipboardNone:
	default:
		return fmt.Errorf("clipboard.method must be one of auto, osc52, command, none; got %q", c.Clipboard.Method)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}
	return nil
}

// Path returns the config file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, template.Dir, template.ConfigFile)
}

// Load reads .promptbuilder/config.yaml in dir, applies .env and
// PROMPTBUILDER_* environment overrides, and validates the result.
// A missing config file yields defaults.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		var raw rawConfig
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		merge(&cfg, &raw)
	}

	// A missing .env is fine; any other failure is not.
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge applies only the keys that were set in YAML.
func merge(cfg *Config, raw *rawConfig) {
	if raw.Serve.Addr != nil {
		cfg.Serve.Addr = *raw.Serve.Addr
	}
	if raw.Export.Dir != nil {
		cfg.Export.Dir = *raw.Export.Dir
	}
	if raw.Export.FileName != nil {
		cfg.Export.FileName = *raw.Export.FileName
	}
	if raw.Clipboard.Method != nil {
		cfg.Clipboard.Method = strings.ToLower(*raw.Clipboard.Method)
	}
	if raw.Log.Level != nil {
		cfg.Log.Level = *raw.Log.Level
	}
	if raw.Log.File != nil {
		cfg.Log.File = *raw.Log.File
	}
	if raw.Log.MaxSizeMB != nil {
		cfg.Log.MaxSizeMB = *raw.Log.MaxSizeMB
	}
	if raw.Log.MaxBackups != nil {
		cfg.Log.MaxBackups = *raw.Log.MaxBackups
	}
	if raw.Log.MaxAgeDays != nil {
		cfg.Log.MaxAgeDays = *raw.Log.MaxAgeDays
	}
	if raw.Log.Compress != nil {
		cfg.Log.Compress = *raw.Log.Compress
	}
}

func applyEnv(cfg *Config) {
	cfg.Serve.Addr = getEnv("PROMPTBUILDER_ADDR", cfg.Serve.Addr)
	cfg.Export.Dir = getEnv("PROMPTBUILDER_EXPORT_DIR", cfg.Export.Dir)
	cfg.Clipboard.Method = strings.ToLower(getEnv("PROMPTBUILDER_CLIPBOARD", cfg.Clipboard.Method))
	cfg.Log.Level = getEnv("PROMPTBUILDER_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("PROMPTBUILDER_LOG_FILE", cfg.Log.File)
	cfg.Log.MaxSizeMB = getEnvAsInt("PROMPTBUILDER_LOG_MAX_SIZE", cfg.Log.MaxSizeMB)
	cfg.Log.MaxBackups = getEnvAsInt("PROMPTBUILDER_LOG_MAX_BACKUPS", cfg.Log.MaxBackups)
	cfg.Log.MaxAgeDays = getEnvAsInt("PROMPTBUILDER_LOG_MAX_AGE", cfg.Log.MaxAgeDays)
	cfg.Log.Compress = getEnvAsBool("PROMPTBUILDER_LOG_COMPRESS", cfg.Log.Compress)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
