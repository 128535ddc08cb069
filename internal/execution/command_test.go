package execution

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"rmt/internal/config"
	"rmt/internal/domain"
)

func TestCommand_Argv(t *testing.T) {
	cfg := config.New()
	tc := domain.TestCase{Question: domain.Q3, Graph: domain.GraphBar}

	got := NewCommand(cfg, tc).Argv()

	want := []string{
		"python3",
		"route_manager.py",
		"--AIRLINES=airlines.yaml",
		"--AIRPORTS=airports.yaml",
		"--ROUTES=routes.yaml",
		"--QUESTION=q3",
		"--GRAPH_TYPE=bar",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected argv (-want +got):\n%s", d)
	}
}

func TestCommand_CarriesFlagOverrides(t *testing.T) {
	cfg := config.New()
	cfg.Apply(config.Flags{Python: "python3.12", Program: "analyzer.py"})
	tc := domain.TestCase{Question: domain.Q1, Graph: domain.GraphPie}

	cmd := NewCommand(cfg, tc)

	if cmd.Interpreter != "python3.12" {
		t.Errorf("expected interpreter python3.12, got %s", cmd.Interpreter)
	}
	if cmd.Program != "analyzer.py" {
		t.Errorf("expected program analyzer.py, got %s", cmd.Program)
	}
	if cmd.Graph != domain.GraphPie {
		t.Errorf("expected pie, got %s", cmd.Graph)
	}
}

func TestCommand_String(t *testing.T) {
	cfg := config.New()
	tc := domain.TestCase{Question: domain.Q5, Graph: domain.GraphPie}

	got := NewCommand(cfg, tc).String()
	want := "python3 route_manager.py --AIRLINES=airlines.yaml --AIRPORTS=airports.yaml --ROUTES=routes.yaml --QUESTION=q5 --GRAPH_TYPE=pie"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
