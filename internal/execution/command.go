package execution

import (
	"strings"

	"rmt/internal/config"
	"rmt/internal/domain"
)

// Command is the fully-built invocation of the analytics program for one test
// case. Fields are typed rather than spliced into a template string, so the
// rendered argv never depends on quoting.
type Command struct {
	Interpreter string
	Program     string
	Airlines    string
	Airports    string
	Routes      string
	Question    domain.QuestionID
	Graph       domain.GraphType
}

// NewCommand builds the invocation for a test case.
func NewCommand(cfg *config.Config, tc domain.TestCase) Command {
	return Command{
		Interpreter: cfg.Interpreter,
		Program:     cfg.Program,
		Airlines:    cfg.Airlines,
		Airports:    cfg.Airports,
		Routes:      cfg.Routes,
		Question:    tc.Question,
		Graph:       tc.Graph,
	}
}

// Argv renders the command as the argument vector handed to the OS, named
// options in the order route_manager documents them.
func (c Command) Argv() []string {
	return []string{
		c.Interpreter,
		c.Program,
		"--AIRLINES=" + c.Airlines,
		"--AIRPORTS=" + c.Airports,
		"--ROUTES=" + c.Routes,
		"--QUESTION=" + string(c.Question),
		"--GRAPH_TYPE=" + string(c.Graph),
	}
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}
