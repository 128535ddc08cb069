package domain

import (
	"time"

	"rmt/internal/tabular"
)

// FailReason classifies the verdict of a test case.
type FailReason string

const (
	ReasonPassed     FailReason = "passed"
	ReasonNoDataFile FailReason = "expected data file not produced"
	ReasonBadData    FailReason = "produced data file unreadable"
	ReasonMismatch   FailReason = "structural mismatch against golden data"
	ReasonTimeout    FailReason = "execution timed out"
)

// CaseResult is the validated outcome of a single test case.
type CaseResult struct {
	Case     TestCase      `json:"case"`
	Passed   bool          `json:"passed"`
	Reason   FailReason    `json:"reason"`
	Detail   string        `json:"detail,omitempty"`
	Diff     *tabular.Diff `json:"diff,omitempty"`
	Output   string        `json:"output,omitempty"`
	Duration time.Duration `json:"duration_ns"`
	Reviewed bool          `json:"reviewed,omitempty"` // set from the diffs viewer
}

// RunSummary aggregates one full harness invocation.
type RunSummary struct {
	RunID            string       `json:"run_id"`
	Timestamp        string       `json:"timestamp"`
	Total            int          `json:"total"`
	Passed           int          `json:"passed"`
	MissingArtifacts []string     `json:"missing_artifacts,omitempty"`
	InvalidCharts    []string     `json:"invalid_charts,omitempty"`
	Duration         string       `json:"duration"`
	DurationSeconds  float64      `json:"duration_seconds"`
	Cases            []CaseResult `json:"cases"`
}

// Failed returns the number of failed cases.
func (s *RunSummary) Failed() int {
	return s.Total - s.Passed
}

// AllPassed reports whether every case passed. Missing or invalid charts do
// not affect it.
func (s *RunSummary) AllPassed() bool {
	return s.Passed == s.Total
}

// FailedCases returns the failed cases in matrix order.
func (s *RunSummary) FailedCases() []CaseResult {
	var failed []CaseResult
	for _, c := range s.Cases {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}
