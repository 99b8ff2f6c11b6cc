package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// APIKeyEnv names the environment variable that overrides api_key.
const APIKeyEnv = "OMDB_API_KEY"

// Config captures the settings popcorn reads at startup.
type Config struct {
	APIURL         string
	APIKey         string
	DataDir        string
	RequestTimeout time.Duration
	LoadWatched    bool
}

const (
	defaultConfigPath     = "~/.config/popcorn/config.toml"
	defaultDataDir        = "~/.local/share/popcorn"
	defaultAPIURL         = "https://www.omdbapi.com/"
	defaultRequestTimeout = 10 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		APIKey:         strings.TrimSpace(os.Getenv(APIKeyEnv)),
		DataDir:        mustExpand(defaultDataDir),
		RequestTimeout: defaultRequestTimeout,
		LoadWatched:    true,
	}
}

// Load locates and parses the popcorn config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		APIKey         string `toml:"api_key"`
		DataDir        string `toml:"data_dir"`
		RequestTimeout string `toml:"request_timeout"`
		LoadWatched    *bool  `toml:"load_watched"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if cfg.APIKey == "" {
		cfg.APIKey = strings.TrimSpace(raw.APIKey)
	}
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		expanded, err := expandPath(v)
		if err != nil {
			return Config{}, fmt.Errorf("data_dir: %w", err)
		}
		cfg.DataDir = expanded
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout must be positive, got %s", v)
		}
		cfg.RequestTimeout = d
	}
	if raw.LoadWatched != nil {
		cfg.LoadWatched = *raw.LoadWatched
	}

	return cfg, nil
}

// Validate reports settings that prevent popcorn from starting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("no OMDb API key: set api_key in %s or %s", defaultConfigPath, APIKeyEnv)
	}
	return nil
}

// DBPath returns the bbolt database file.
func (c Config) DBPath() string {
	return filepath.Join(c.dataDir(), "popcorn.db")
}

// LogPath returns the activity log file.
func (c Config) LogPath() string {
	return filepath.Join(c.dataDir(), "popcorn.log")
}

func (c Config) dataDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir)
	}
	return c.DataDir
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
