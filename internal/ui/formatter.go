package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"rmt/internal/config"
	"rmt/internal/domain"
)

// Formatter formats and displays console output for the harness. All lines
// carry an INFO or ERROR tag so run logs stay greppable.
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout.
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg, out: os.Stdout}
}

// SetOutput redirects the formatter, used by tests.
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

func (f *Formatter) info(format string, args ...any) {
	color.New(color.FgWhite).Fprintf(f.out, "[INFO] "+format+"\n", args...)
}

func (f *Formatter) errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(f.out, "[ERROR] "+format+"\n", args...)
}

// Usage reports an invalid invocation.
func (f *Formatter) Usage(err error) {
	f.errorf("%v", err)
	fmt.Fprintln(f.out, "Usage: rmt run [question number 1-5]")
	fmt.Fprintln(f.out, "  with no argument the full matrix runs: q1..q5 x {bar, pie}")
}

// MissingFixtures reports absent required files together with the full list
// the harness expects, so the layout is diagnosable in one read.
func (f *Formatter) MissingFixtures(err error, required []string) {
	f.errorf("%v", err)
	fmt.Fprintln(f.out, "Required files:")
	for _, path := range required {
		fmt.Fprintf(f.out, "  %s\n", path)
	}
}

// CaseStart announces a case before its subprocess is spawned.
func (f *Formatter) CaseStart(tc domain.TestCase, command string) {
	f.info("running %s: %s", tc, command)
}

// CaseVerdict reports a case's outcome right after validation.
func (f *Formatter) CaseVerdict(result domain.CaseResult) {
	if result.Passed {
		color.New(color.FgGreen).Fprintf(f.out, "[INFO] ✓ %s passed (%s)\n", result.Case, result.Duration.Round(time.Millisecond))
		return
	}
	f.errorf("✗ %s failed: %s", result.Case, result.Reason)
	if result.Detail != "" {
		f.errorf("  %s", result.Detail)
	}
	if result.Diff != nil {
		fmt.Fprintln(f.out, result.Diff.String())
	}
	if result.Output != "" {
		f.info("program output:\n%s", result.Output)
	}
}

// PrintSummary renders the aggregate report for a finished run.
func (f *Formatter) PrintSummary(s *domain.RunSummary) {
	fmt.Fprintln(f.out)
	cyan := color.New(color.FgCyan)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                     Harness Run Statistics                    ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	fmt.Fprintf(f.out, "  %-18s %d\n", "Total cases", s.Total)
	color.New(color.FgGreen).Fprintf(f.out, "  %-18s %d\n", "Passed", s.Passed)
	color.New(color.FgRed).Fprintf(f.out, "  %-18s %d\n", "Failed", s.Failed())
	fmt.Fprintf(f.out, "  %-18s %s\n", "Duration", s.Duration)
	fmt.Fprintf(f.out, "  %-18s %s\n", "Run ID", s.RunID)
	fmt.Fprintln(f.out)

	if s.AllPassed() {
		color.New(color.FgGreen).Fprintf(f.out, "TESTS PASSED: %d/%d\n", s.Passed, s.Total)
	} else {
		color.New(color.FgRed).Fprintf(f.out, "TESTS PASSED: %d/%d\n", s.Passed, s.Total)
	}

	if len(s.MissingArtifacts) > 0 {
		fmt.Fprintln(f.out)
		color.New(color.FgYellow).Fprintln(f.out, "Missing files during tests:")
		for _, name := range s.MissingArtifacts {
			fmt.Fprintf(f.out, "  %s\n", name)
		}
	}
	if len(s.InvalidCharts) > 0 {
		fmt.Fprintln(f.out)
		color.New(color.FgYellow).Fprintln(f.out, "Charts that failed PDF validation:")
		for _, name := range s.InvalidCharts {
			fmt.Fprintf(f.out, "  %s\n", name)
		}
	}
}

// PrintMatrix lists the cases a selector expands to, without executing them.
func (f *Formatter) PrintMatrix(cases []domain.TestCase, commands []string) {
	f.info("%d case(s):", len(cases))
	for i, tc := range cases {
		fmt.Fprintf(f.out, "  %2d. %-8s %s\n", i+1, tc.String(), commands[i])
	}
}
