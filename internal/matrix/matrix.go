package matrix

import (
	"fmt"
	"strconv"

	"rmt/internal/domain"
)

// ParseSelector interprets the optional positional argument of run and list.
// A nil result selects the full matrix; "1".."5" selects a single question.
// Anything else is a configuration error.
func ParseSelector(args []string) (*domain.QuestionID, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if len(args) > 1 {
		return nil, fmt.Errorf("expected at most one question number, got %d arguments", len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(domain.AllQuestions) {
		return nil, fmt.Errorf("invalid question number %q: must be an integer between 1 and %d", args[0], len(domain.AllQuestions))
	}
	q := domain.AllQuestions[n-1]
	return &q, nil
}

// Expand produces the ordered list of test cases for a selector: questions
// ascending, bar before pie within each question. Both cases of a question
// overwrite the same artifact pair, so they must stay adjacent and the order
// must never change.
func Expand(selector *domain.QuestionID) []domain.TestCase {
	questions := domain.AllQuestions
	if selector != nil {
		questions = []domain.QuestionID{*selector}
	}

	cases := make([]domain.TestCase, 0, len(questions)*len(domain.AllGraphTypes))
	for _, q := range questions {
		for _, g := range domain.AllGraphTypes {
			cases = append(cases, domain.TestCase{Question: q, Graph: g})
		}
	}
	return cases
}
