package config

import (
	"fmt"
	"strings"

	"github.com/jorge-barreto/risdocs/internal/catalog"
	"github.com/jorge-barreto/risdocs/internal/logger"
)

var validThemes = map[string]bool{
	"":      true,
	"auto":  true,
	"light": true,
	"dark":  true,
}

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	cfg.DefaultSection = strings.TrimSpace(cfg.DefaultSection)
	if cfg.DefaultSection == "" {
		return fmt.Errorf("config: 'default-section' is required")
	}

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if !validThemes[cfg.Theme] {
		return fmt.Errorf("config: 'theme' must be light, dark, or auto (got %q)", cfg.Theme)
	}
	if cfg.Theme == "" {
		cfg.Theme = "auto"
	}

	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("config: 'log-level': %w", err)
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return fmt.Errorf("config: 'server.addr' is required")
	}
	if cfg.Server.SessionTTL < 0 {
		return fmt.Errorf("config: 'server.session-ttl' must not be negative (got %s)", cfg.Server.SessionTTL)
	}
	return nil
}

// ValidateAgainst checks that the config fits the catalog it will browse.
func ValidateAgainst(cfg *Config, cat *catalog.Catalog) error {
	if cat.Has(cfg.DefaultSection) {
		return nil
	}
	if s := cat.Suggest(cfg.DefaultSection); s != "" {
		return fmt.Errorf("config: 'default-section' %q is not in the catalog (did you mean %q?)", cfg.DefaultSection, s)
	}
	return fmt.Errorf("config: 'default-section' %q is not in the catalog", cfg.DefaultSection)
}
