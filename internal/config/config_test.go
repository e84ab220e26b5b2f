package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jorge-barreto/risdocs/internal/catalog"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultSection != "overview" {
		t.Fatalf("DefaultSection = %q, want overview", cfg.DefaultSection)
	}
	if cfg.Theme != "auto" {
		t.Fatalf("Theme = %q, want auto", cfg.Theme)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `default-section: memory
theme: dark
catalog: docs.yaml
server:
  addr: "127.0.0.1:9000"
  allow-all-origins: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultSection != "memory" {
		t.Fatalf("DefaultSection = %q", cfg.DefaultSection)
	}
	if cfg.Theme != "dark" {
		t.Fatalf("Theme = %q", cfg.Theme)
	}
	if cfg.Catalog != filepath.Join(dir, "docs.yaml") {
		t.Fatalf("Catalog = %q, want path relative to config dir", cfg.Catalog)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || !cfg.Server.AllowAllOrigins {
		t.Fatalf("Server = %+v", cfg.Server)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want default info", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "theme: light\n")
	t.Setenv("RISDOCS_THEME", "dark")
	t.Setenv("RISDOCS_LOG_LEVEL", "debug")
	t.Setenv("RISDOCS_SERVER__ADDR", ":7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "dark" {
		t.Fatalf("Theme = %q, want env override", cfg.Theme)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_InvalidTheme(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "theme: sepia\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "'theme'") {
		t.Fatalf("expected theme error, got %v", err)
	}
}

func TestValidate_DefaultSectionRequired(t *testing.T) {
	cfg := Default()
	cfg.DefaultSection = "  "
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'default-section' is required") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'log-level'") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_ServerAddrRequired(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = ""
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'server.addr'") {
		t.Fatalf("got %v", err)
	}
}

func TestLoad_SessionTTL(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.SessionTTL != 30*time.Minute {
		t.Fatalf("default SessionTTL = %s, want 30m", cfg.Server.SessionTTL)
	}

	path := writeConfig(t, t.TempDir(), "server:\n  session-ttl: 5m\n")
	if cfg, err = Load(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Server.SessionTTL != 5*time.Minute {
		t.Fatalf("SessionTTL = %s, want 5m", cfg.Server.SessionTTL)
	}
}

func TestValidate_NegativeSessionTTL(t *testing.T) {
	cfg := Default()
	cfg.Server.SessionTTL = -time.Second
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'server.session-ttl'") {
		t.Fatalf("expected session-ttl error, got %v", err)
	}
}

func TestValidate_EmptyThemeDefaultsToAuto(t *testing.T) {
	cfg := Default()
	cfg.Theme = ""
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "auto" {
		t.Fatalf("Theme = %q, want auto", cfg.Theme)
	}
}

func TestValidateAgainst(t *testing.T) {
	cfg := Default()
	if err := ValidateAgainst(cfg, catalog.Builtin()); err != nil {
		t.Fatal(err)
	}

	cfg.DefaultSection = "memroy"
	err := ValidateAgainst(cfg, catalog.Builtin())
	if err == nil || !strings.Contains(err.Error(), `did you mean "memory"`) {
		t.Fatalf("got %v", err)
	}
}

func TestFind_WalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "theme: dark\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Fatalf("Find = %q, want %q", got, path)
	}
}

func TestFind_NoneFound(t *testing.T) {
	got, err := Find(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// A config above the temp dir would be found too; only assert when absent.
	if got != "" && !strings.HasSuffix(got, FileName) {
		t.Fatalf("Find = %q", got)
	}
}
