package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/risdocs/internal/catalog"
	"github.com/jorge-barreto/risdocs/internal/config"
	"github.com/jorge-barreto/risdocs/internal/ux"
)

// CatalogFile is the catalog written next to the config.
const CatalogFile = "docs.yaml"

var configTemplate = `# risdocs configuration
default-section: overview   # section shown at startup
theme: auto                 # light | dark | auto
catalog: ` + CatalogFile + `            # sections to browse, relative to this file
log-level: info
# log-file: risdocs.log
# prefs-file: ~/.config/risdocs/prefs.json

server:
  addr: ":8080"
  allow-all-origins: false
  session-ttl: 30m           # drop idle HTTP sessions; 0 keeps them
`

// Init writes a config file and an editable copy of cat into targetDir.
func Init(w io.Writer, targetDir string, cat *catalog.Catalog) error {
	configPath := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, targetDir)
	}
	catalogPath := filepath.Join(targetDir, CatalogFile)
	if _, err := os.Stat(catalogPath); err == nil {
		return fmt.Errorf("%s already exists in %s", CatalogFile, targetDir)
	}

	data, err := cat.Encode()
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.WriteFile(catalogPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", CatalogFile, err)
	}
	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.FileName, err)
	}

	fmt.Fprintf(w, "\n%s%s✓ Initialized risdocs%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Fprintf(w, "  Created:\n")
	fmt.Fprintf(w, "    %s%s%s  — configuration\n", ux.Cyan, config.FileName, ux.Reset)
	fmt.Fprintf(w, "    %s%s%s     — %d sections\n\n", ux.Cyan, CatalogFile, ux.Reset, cat.Len())
	fmt.Fprintf(w, "  Next steps:\n")
	fmt.Fprintf(w, "    1. Edit %s%s%s to change the documentation\n", ux.Cyan, CatalogFile, ux.Reset)
	fmt.Fprintf(w, "    2. Run %srisdocs browse%s\n\n", ux.Cyan, ux.Reset)
	return nil
}
