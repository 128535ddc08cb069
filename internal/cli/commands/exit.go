package commands

// Process exit codes. Zero means every case passed.
const (
	ExitTestFailures    = 1
	ExitConfigError     = 2
	ExitMissingFixtures = 3
)

// ExitError carries a process exit code through cobra's error path; the main
// package unwraps it.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
