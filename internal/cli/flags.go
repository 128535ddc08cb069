package cli

import (
	"time"

	"rmt/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Timeout        time.Duration
	DataDir        string
	TestsDir       string
	Program        string
	Python         string
	OpenDiffs      bool
	ValidateCharts bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Timeout:        f.Timeout,
		DataDir:        f.DataDir,
		TestsDir:       f.TestsDir,
		Program:        f.Program,
		Python:         f.Python,
		OpenDiffs:      f.OpenDiffs,
		ValidateCharts: f.ValidateCharts,
	}
}
