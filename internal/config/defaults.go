package config

import "time"

const (
	// DefaultProgram is the analytics program the harness drives.
	DefaultProgram = "route_manager.py"
	// DefaultInterpreter runs the program.
	DefaultInterpreter = "python3"
	// DefaultDataDir holds the reference datasets, mirroring the program's
	// own Data/ convention.
	DefaultDataDir = "Data"
	// DefaultTestsDir holds the golden CSV files.
	DefaultTestsDir = "Tests"
	// DefaultKeyColumn is the identity column of produced and golden data.
	DefaultKeyColumn = "subject"
	// DefaultCaseTimeout bounds a single subprocess invocation.
	DefaultCaseTimeout = 2 * time.Minute
	// DefaultSummaryFile is the persisted run summary file name.
	DefaultSummaryFile = "run-summary.json"
	// DefaultSummaryDir is the directory the summary is written under.
	DefaultSummaryDir = "storage"
)

// Default reference dataset file names, resolved under DataDir.
const (
	DefaultAirlinesFile = "airlines.yaml"
	DefaultAirportsFile = "airports.yaml"
	DefaultRoutesFile   = "routes.yaml"
)
