package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"rmt/internal/domain"
)

// Config holds all configuration for the harness. It is built once at process
// start (defaults, then .env, then flags) and passed into each component.
type Config struct {
	// External program invocation
	Program     string
	Interpreter string

	// Reference dataset file names. The program resolves these under DataDir
	// itself, so commands carry the bare names.
	Airlines string
	Airports string
	Routes   string

	// Directories
	DataDir  string
	TestsDir string

	// Validation settings
	KeyColumn   string
	CaseTimeout time.Duration

	// Persisted summary
	SummaryDir  string
	SummaryFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags.
type Flags struct {
	Timeout        time.Duration
	DataDir        string
	TestsDir       string
	Program        string
	Python         string
	OpenDiffs      bool
	ValidateCharts bool
}

// New creates a Config with defaults and .env overrides applied.
func New() *Config {
	cfg := &Config{
		Program:     DefaultProgram,
		Interpreter: DefaultInterpreter,
		Airlines:    DefaultAirlinesFile,
		Airports:    DefaultAirportsFile,
		Routes:      DefaultRoutesFile,
		DataDir:     DefaultDataDir,
		TestsDir:    DefaultTestsDir,
		KeyColumn:   DefaultKeyColumn,
		CaseTimeout: DefaultCaseTimeout,
		SummaryDir:  DefaultSummaryDir,
		SummaryFile: DefaultSummaryFile,
	}
	cfg.applyEnv()
	return cfg
}

// Apply overrides the config with parsed command-line flags.
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.Timeout > 0 {
		c.CaseTimeout = flags.Timeout
	}
	if flags.DataDir != "" {
		c.DataDir = flags.DataDir
	}
	if flags.TestsDir != "" {
		c.TestsDir = flags.TestsDir
	}
	if flags.Program != "" {
		c.Program = flags.Program
	}
	if flags.Python != "" {
		c.Interpreter = flags.Python
	}
}

// applyEnv loads .env if present and applies RMT_* overrides.
func (c *Config) applyEnv() {
	_ = godotenv.Load() // a missing .env is fine

	if v := os.Getenv("RMT_PROGRAM"); v != "" {
		c.Program = v
	}
	if v := os.Getenv("RMT_PYTHON"); v != "" {
		c.Interpreter = v
	}
	if v := os.Getenv("RMT_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("RMT_TESTS_DIR"); v != "" {
		c.TestsDir = v
	}
	if v := os.Getenv("RMT_KEY_COLUMN"); v != "" {
		c.KeyColumn = v
	}
	if v := os.Getenv("RMT_CASE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.CaseTimeout = d
		}
	}
}

// ReferencePaths returns the three reference datasets as the program resolves
// them on disk.
func (c *Config) ReferencePaths() []string {
	return []string{
		filepath.Join(c.DataDir, c.Airlines),
		filepath.Join(c.DataDir, c.Airports),
		filepath.Join(c.DataDir, c.Routes),
	}
}

// GoldenPath returns the golden CSV for a question.
func (c *Config) GoldenPath(q domain.QuestionID) string {
	return filepath.Join(c.TestsDir, string(q)+".csv")
}

// RequiredFiles lists every file that must exist before any case runs: the
// program itself, the reference datasets and one golden CSV per question.
func (c *Config) RequiredFiles() []string {
	files := []string{c.Program}
	files = append(files, c.ReferencePaths()...)
	for _, q := range domain.AllQuestions {
		files = append(files, c.GoldenPath(q))
	}
	return files
}

// ArtifactPaths lists every artifact a run can leave in the working
// directory, whether or not the corresponding case executed.
func (c *Config) ArtifactPaths() []string {
	paths := make([]string, 0, 2*len(domain.AllQuestions))
	for _, q := range domain.AllQuestions {
		paths = append(paths, string(q)+".csv", string(q)+".pdf")
	}
	return paths
}

// SummaryPath returns the absolute path of the persisted run summary so run
// and diffs always read the same file regardless of cwd.
func (c *Config) SummaryPath() string {
	p := filepath.Join(c.SummaryDir, c.SummaryFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
