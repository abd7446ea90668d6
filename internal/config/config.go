package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alexanderramin/reimagine/internal/domain"
)

const appName = "reimagine"

// Environment overrides, applied after the config file.
const (
	EnvConfigPath   = "REIMAGINE_CONFIG"
	EnvDBPath       = "REIMAGINE_DB"
	EnvLogUseCases  = "REIMAGINE_LOG_USE_CASES"
	EnvExportDir    = "REIMAGINE_EXPORT_DIR"
	EnvRoomDeletion = "REIMAGINE_ROOM_DELETE_POLICY"
)

// Config holds all reimagine configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Export  ExportConfig  `toml:"export"`
	Planner PlannerConfig `toml:"planner"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig locates the state database.
type StorageConfig struct {
	Path string `toml:"path"`
}

// ExportConfig sets where export files are written.
type ExportConfig struct {
	Dir string `toml:"dir"`
}

// PlannerConfig holds planning behavior switches.
type PlannerConfig struct {
	// RoomDeletePolicy is "keep" or "clear".
	RoomDeletePolicy string `toml:"room_delete_policy"`
}

// LogConfig controls use-case logging to stderr.
type LogConfig struct {
	UseCases bool   `toml:"use_cases"`
	Level    string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{Path: filepath.Join("~", "."+appName, appName+".db")},
		Export:  ExportConfig{Dir: "."},
		Planner: PlannerConfig{RoomDeletePolicy: string(domain.RoomDeleteKeep)},
		Log:     LogConfig{Level: "info"},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies environment overrides.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom is Load with an explicit file path.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv(EnvRoomDeletion); v != "" {
		cfg.Planner.RoomDeletePolicy = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.UseCases = b
		}
	}
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := c.RoomDeletePolicy(); err != nil {
		return fmt.Errorf("planner.room_delete_policy: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func (c Config) RoomDeletePolicy() (domain.RoomDeletePolicy, error) {
	return domain.ParseRoomDeletePolicy(c.Planner.RoomDeletePolicy)
}

// LogLevel parses log.level; empty means info.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(c.Log.Level) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// DBPath returns the storage path with a leading "~" expanded.
func (c Config) DBPath() (string, error) {
	return ExpandHome(c.Storage.Path)
}

// ExportDir returns the export directory with a leading "~" expanded.
func (c Config) ExportDir() (string, error) {
	return ExpandHome(c.Export.Dir)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, creating parent directories.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
