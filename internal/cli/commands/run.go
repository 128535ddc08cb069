package commands

import (
	"fmt"

	"rmt/internal/config"
	"rmt/internal/execution"
	"rmt/internal/fixtures"
	"rmt/internal/matrix"
	"rmt/internal/storage"
	"rmt/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	validator *execution.Validator
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    *ui.DiffViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	validator *execution.Validator,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer *ui.DiffViewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		validator: validator,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	selector, err := matrix.ParseSelector(args)
	if err != nil {
		rc.formatter.Usage(err)
		return &ExitError{Code: ExitConfigError, Err: err}
	}

	// Both checks run before any subprocess is spawned.
	if err := fixtures.Check(rc.config); err != nil {
		rc.formatter.MissingFixtures(err, rc.config.RequiredFiles())
		return &ExitError{Code: ExitMissingFixtures, Err: err}
	}
	if err := fixtures.VerifyReference(rc.config); err != nil {
		rc.formatter.MissingFixtures(err, rc.config.ReferencePaths())
		return &ExitError{Code: ExitMissingFixtures, Err: err}
	}

	cases := matrix.Expand(selector)

	progressBar := ui.NewProgressBar(len(cases))
	rc.validator.SetProgress(progressBar)

	summary, err := rc.validator.Execute(cmd.Context(), cases)
	if err != nil {
		return err
	}

	if err := rc.storage.Save(summary); err != nil {
		return fmt.Errorf("failed to save run summary: %w", err)
	}

	rc.formatter.PrintSummary(summary)

	if !summary.AllPassed() {
		if rc.config.Flags.OpenDiffs {
			if err := rc.viewer.View(summary); err != nil {
				return err
			}
		}
		return &ExitError{
			Code: ExitTestFailures,
			Err:  fmt.Errorf("%d of %d case(s) failed", summary.Failed(), summary.Total),
		}
	}
	return nil
}
