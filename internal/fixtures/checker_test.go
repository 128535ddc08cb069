package fixtures

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rmt/internal/config"
)

// layoutConfig returns a config whose required files live under dir.
func layoutConfig(dir string) *config.Config {
	cfg := config.New()
	cfg.Program = filepath.Join(dir, "route_manager.py")
	cfg.DataDir = filepath.Join(dir, "Data")
	cfg.TestsDir = filepath.Join(dir, "Tests")
	return cfg
}

// writeAll creates every required file with placeholder content.
func writeAll(t *testing.T, cfg *config.Config) {
	t.Helper()
	for _, path := range cfg.RequiredFiles() {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("placeholder\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCheck_AllPresent(t *testing.T) {
	cfg := layoutConfig(t.TempDir())
	writeAll(t, cfg)

	if err := Check(cfg); err != nil {
		t.Errorf("expected nil for complete layout, got %v", err)
	}
}

func TestCheck_ReportsEveryMissingFile(t *testing.T) {
	cfg := layoutConfig(t.TempDir())
	writeAll(t, cfg)

	removed := []string{
		cfg.GoldenPath("q2"),
		filepath.Join(cfg.DataDir, cfg.Routes),
	}
	for _, path := range removed {
		if err := os.Remove(path); err != nil {
			t.Fatal(err)
		}
	}

	err := Check(cfg)
	if err == nil {
		t.Fatal("expected error for missing files")
	}
	missing, ok := err.(*MissingError)
	if !ok {
		t.Fatalf("expected *MissingError, got %T", err)
	}
	if len(missing.Paths) != len(removed) {
		t.Fatalf("expected %d missing paths, got %v", len(removed), missing.Paths)
	}
	for _, path := range removed {
		if !strings.Contains(err.Error(), path) {
			t.Errorf("error should name %s: %s", path, err)
		}
	}
}

func TestCheck_EmptyLayout(t *testing.T) {
	cfg := layoutConfig(t.TempDir())

	err := Check(cfg)
	missing, ok := err.(*MissingError)
	if !ok {
		t.Fatalf("expected *MissingError, got %v", err)
	}
	if len(missing.Paths) != len(cfg.RequiredFiles()) {
		t.Errorf("expected all %d files missing, got %d", len(cfg.RequiredFiles()), len(missing.Paths))
	}
}

func TestVerifyReference(t *testing.T) {
	tests := []struct {
		name     string
		airlines string
		wantErr  bool
	}{
		{
			name:     "basename key present",
			airlines: "airlines:\n  - airline_id: 1\n    airline_name: Air Canada\n",
		},
		{
			name:     "wrong top-level key",
			airlines: "carriers:\n  - airline_id: 1\n",
			wantErr:  true,
		},
		{
			name:     "malformed yaml",
			airlines: "airlines: [unclosed\n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := layoutConfig(t.TempDir())
			writeReference(t, cfg.DataDir, "airlines.yaml", tt.airlines)
			writeReference(t, cfg.DataDir, "airports.yaml", "airports:\n  - airport_id: 1\n")
			writeReference(t, cfg.DataDir, "routes.yaml", "routes:\n  - route_airline_id: 1\n")

			err := VerifyReference(cfg)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func writeReference(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
