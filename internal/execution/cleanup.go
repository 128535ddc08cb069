package execution

import (
	"fmt"
	"os"

	"rmt/internal/config"
)

// CleanupArtifacts removes every artifact a run can produce from the working
// directory, whether or not the corresponding case executed. Absent files are
// a no-op, so the call is idempotent.
func CleanupArtifacts(cfg *config.Config) error {
	var firstErr error
	for _, path := range cfg.ArtifactPaths() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = fmt.Errorf("remove %s: %w", path, err)
			}
		}
	}
	return firstErr
}
