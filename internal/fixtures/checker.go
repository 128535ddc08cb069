package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"rmt/internal/config"
)

// MissingError lists required files that are absent.
type MissingError struct {
	Paths []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing %d required file(s): %s", len(e.Paths), strings.Join(e.Paths, ", "))
}

// Check verifies every required input file exists. Read-only; it collects all
// missing paths so the user sees the full list at once instead of fixing them
// one by one.
func Check(cfg *config.Config) error {
	var missing []string
	for _, path := range cfg.RequiredFiles() {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Paths: missing}
	}
	return nil
}

// VerifyReference parses the three reference datasets and checks each carries
// its own basename as the top-level key. route_manager locates its records
// under that key, so a renamed or malformed file would fail every case.
func VerifyReference(cfg *config.Config) error {
	for _, path := range cfg.ReferencePaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read reference dataset: %w", err)
		}
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if _, ok := doc[name]; !ok {
			return fmt.Errorf("reference dataset %s has no top-level %q key", path, name)
		}
	}
	return nil
}
