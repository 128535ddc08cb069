package execution

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"rmt/internal/config"
)

// Runner executes the analytics program for a single test case.
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// RunResult carries the raw outcome of one subprocess invocation.
type RunResult struct {
	Output   string
	Err      error
	TimedOut bool
	Duration time.Duration
}

// Run executes the command and blocks until it exits or the case timeout
// elapses. The program writes its artifacts into the working directory.
func (r *Runner) Run(ctx context.Context, command Command) RunResult {
	ctx, cancel := context.WithTimeout(ctx, r.config.CaseTimeout)
	defer cancel()

	argv := command.Argv()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	// Children of a killed interpreter may keep the output pipe open.
	cmd.WaitDelay = time.Second

	start := time.Now()
	output, err := cmd.CombinedOutput()

	return RunResult{
		Output:   string(output),
		Err:      err,
		TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
		Duration: time.Since(start),
	}
}
