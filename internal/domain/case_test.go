package domain

import "testing"

func TestTestCase_ArtifactNames(t *testing.T) {
	tc := TestCase{Question: Q3, Graph: GraphBar}

	if tc.CSVName() != "q3.csv" {
		t.Errorf("expected q3.csv, got %s", tc.CSVName())
	}
	if tc.ChartName() != "q3.pdf" {
		t.Errorf("expected q3.pdf, got %s", tc.ChartName())
	}
	if tc.String() != "q3/bar" {
		t.Errorf("expected q3/bar, got %s", tc.String())
	}
}

func TestRunSummary_Counters(t *testing.T) {
	s := &RunSummary{Total: 10, Passed: 7}

	if s.Failed() != 3 {
		t.Errorf("expected 3 failed, got %d", s.Failed())
	}
	if s.AllPassed() {
		t.Error("7/10 is not all passed")
	}

	s.Passed = 10
	if !s.AllPassed() {
		t.Error("10/10 should be all passed")
	}
}

func TestRunSummary_FailedCases(t *testing.T) {
	s := &RunSummary{
		Total:  3,
		Passed: 2,
		Cases: []CaseResult{
			{Case: TestCase{Question: Q1, Graph: GraphBar}, Passed: true},
			{Case: TestCase{Question: Q1, Graph: GraphPie}, Reason: ReasonNoDataFile},
			{Case: TestCase{Question: Q2, Graph: GraphBar}, Passed: true},
		},
	}

	failed := s.FailedCases()
	if len(failed) != 1 {
		t.Fatalf("expected 1 failed case, got %d", len(failed))
	}
	if failed[0].Case.Question != Q1 || failed[0].Case.Graph != GraphPie {
		t.Errorf("expected q1/pie, got %s", failed[0].Case)
	}
}
