package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jorge-barreto/risdocs/internal/catalog"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = ".risdocs.yaml"

// EnvPrefix prefixes environment overrides: RISDOCS_THEME, RISDOCS_SERVER__ADDR.
const EnvPrefix = "RISDOCS_"

type Server struct {
	Addr            string        `koanf:"addr" yaml:"addr"`
	AllowAllOrigins bool          `koanf:"allow-all-origins" yaml:"allow-all-origins"`
	SessionTTL      time.Duration `koanf:"session-ttl" yaml:"session-ttl"` // 0 keeps idle sessions forever
}

type Config struct {
	DefaultSection string `koanf:"default-section" yaml:"default-section"`
	Theme          string `koanf:"theme" yaml:"theme"`
	Catalog        string `koanf:"catalog" yaml:"catalog"`
	LogLevel       string `koanf:"log-level" yaml:"log-level"`
	LogFile        string `koanf:"log-file" yaml:"log-file"`
	PrefsFile      string `koanf:"prefs-file" yaml:"prefs-file"`
	Server         Server `koanf:"server" yaml:"server"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DefaultSection: catalog.DefaultID,
		Theme:          "auto",
		LogLevel:       "info",
		Server:         Server{Addr: ":8080", SessionTTL: 30 * time.Minute},
	}
}

// Load reads the YAML file at path (skipped when path is ""), overlays
// RISDOCS_* environment variables, and validates the result. A relative
// catalog path is resolved against the config file's directory.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if path != "" && cfg.Catalog != "" && !filepath.IsAbs(cfg.Catalog) {
		cfg.Catalog = filepath.Join(filepath.Dir(path), cfg.Catalog)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps RISDOCS_LOG_LEVEL to log-level and RISDOCS_SERVER__ADDR to server.addr.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	s = strings.ReplaceAll(s, "__", ".")
	return strings.ReplaceAll(s, "_", "-")
}

// Find walks up from dir looking for FileName. Returns "" if none exists.
func Find(dir string) (string, error) {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
