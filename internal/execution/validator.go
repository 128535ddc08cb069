package execution

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"rmt/internal/config"
	"rmt/internal/domain"
	"rmt/internal/tabular"
	"rmt/internal/ui"
)

// Validator runs the test matrix and checks each produced dataset against
// its golden counterpart.
type Validator struct {
	config    *config.Config
	runner    *Runner
	formatter *ui.Formatter
	progress  *ui.ProgressBar
}

// NewValidator creates a new Validator.
func NewValidator(cfg *config.Config, runner *Runner, formatter *ui.Formatter) *Validator {
	return &Validator{
		config:    cfg,
		runner:    runner,
		formatter: formatter,
	}
}

// SetProgress sets the progress bar for the run.
func (v *Validator) SetProgress(progress *ui.ProgressBar) {
	v.progress = progress
}

// Execute runs all cases strictly in order and returns the aggregated
// summary. Both cases of a question overwrite the same artifact pair, so one
// case must be validated to completion before the next spawns. Artifacts are
// removed before Execute returns, whatever the outcome.
func (v *Validator) Execute(ctx context.Context, cases []domain.TestCase) (summary *domain.RunSummary, err error) {
	summary = &domain.RunSummary{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().Format(time.RFC3339),
		Total:     len(cases),
	}
	defer func() {
		if cleanupErr := CleanupArtifacts(v.config); cleanupErr != nil && err == nil {
			err = cleanupErr
		}
	}()

	start := time.Now()
	for _, tc := range cases {
		command := NewCommand(v.config, tc)
		v.formatter.CaseStart(tc, command.String())

		result := v.validate(ctx, tc, command, summary)
		summary.Cases = append(summary.Cases, result)
		if result.Passed {
			summary.Passed++
		}

		v.formatter.CaseVerdict(result)
		if v.progress != nil {
			v.progress.Update(summary.Passed, len(summary.Cases)-summary.Passed)
		}
	}
	if v.progress != nil {
		v.progress.Finish()
	}

	elapsed := time.Since(start)
	summary.Duration = elapsed.Round(time.Millisecond).String()
	summary.DurationSeconds = elapsed.Seconds()
	return summary, nil
}

// validate executes one case and derives its verdict. A nonzero exit alone
// does not fail the case: the contract is the produced data file, not the
// exit status. The chart file is tracked but never gates the verdict.
func (v *Validator) validate(ctx context.Context, tc domain.TestCase, command Command, summary *domain.RunSummary) domain.CaseResult {
	run := v.runner.Run(ctx, command)

	result := domain.CaseResult{
		Case:     tc,
		Output:   run.Output,
		Duration: run.Duration,
	}

	if run.TimedOut {
		result.Reason = domain.ReasonTimeout
		return result
	}

	if _, err := os.Stat(tc.CSVName()); err != nil {
		result.Reason = domain.ReasonNoDataFile
		if run.Err != nil {
			result.Detail = run.Err.Error()
		}
		return result
	}

	if _, err := os.Stat(tc.ChartName()); err != nil {
		summary.MissingArtifacts = append(summary.MissingArtifacts, tc.ChartName())
	} else if v.config.Flags.ValidateCharts {
		if err := api.ValidateFile(tc.ChartName(), nil); err != nil {
			summary.InvalidCharts = append(summary.InvalidCharts, tc.ChartName())
		}
	}

	produced, err := tabular.Load(tc.CSVName(), v.config.KeyColumn)
	if err != nil {
		result.Reason = domain.ReasonBadData
		result.Detail = err.Error()
		return result
	}
	golden, err := tabular.Load(v.config.GoldenPath(tc.Question), v.config.KeyColumn)
	if err != nil {
		result.Reason = domain.ReasonBadData
		result.Detail = err.Error()
		return result
	}

	diff := tabular.Compare(produced, golden)
	if diff.Empty() {
		result.Passed = true
		result.Reason = domain.ReasonPassed
		return result
	}

	result.Reason = domain.ReasonMismatch
	result.Diff = diff
	return result
}
