package domain

import "fmt"

// QuestionID identifies one of the five analytical queries route_manager
// answers. It doubles as the base name of the artifacts the program writes.
type QuestionID string

const (
	Q1 QuestionID = "q1"
	Q2 QuestionID = "q2"
	Q3 QuestionID = "q3"
	Q4 QuestionID = "q4"
	Q5 QuestionID = "q5"
)

// AllQuestions lists the questions in ascending order. Matrix ordering
// depends on this slice, do not reorder it.
var AllQuestions = []QuestionID{Q1, Q2, Q3, Q4, Q5}

// GraphType selects the chart route_manager renders alongside the data file.
type GraphType string

const (
	GraphBar GraphType = "bar"
	GraphPie GraphType = "pie"
)

// AllGraphTypes lists the graph types in matrix order (bar before pie).
var AllGraphTypes = []GraphType{GraphBar, GraphPie}

// TestCase is one (question, graph type) combination to execute and validate.
type TestCase struct {
	Question QuestionID `json:"question"`
	Graph    GraphType  `json:"graph"`
}

// CSVName returns the data file the case's invocation writes.
func (tc TestCase) CSVName() string {
	return string(tc.Question) + ".csv"
}

// ChartName returns the chart file the case's invocation writes.
func (tc TestCase) ChartName() string {
	return string(tc.Question) + ".pdf"
}

func (tc TestCase) String() string {
	return fmt.Sprintf("%s/%s", tc.Question, tc.Graph)
}
