package matrix

import (
	"testing"

	"rmt/internal/domain"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *domain.QuestionID
		wantErr bool
	}{
		{
			name: "no argument selects the full matrix",
			args: nil,
			want: nil,
		},
		{
			name: "lowest question",
			args: []string{"1"},
			want: qptr(domain.Q1),
		},
		{
			name: "highest question",
			args: []string{"5"},
			want: qptr(domain.Q5),
		},
		{
			name:    "zero is out of range",
			args:    []string{"0"},
			wantErr: true,
		},
		{
			name:    "six is out of range",
			args:    []string{"6"},
			wantErr: true,
		},
		{
			name:    "non-integer",
			args:    []string{"abc"},
			wantErr: true,
		},
		{
			name:    "two arguments",
			args:    []string{"1", "2"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelector(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for args %v, got selector %v", tt.args, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("expected %s, got %s", *tt.want, *got)
			}
		})
	}
}

func TestExpand_FullMatrix(t *testing.T) {
	cases := Expand(nil)

	if len(cases) != 10 {
		t.Fatalf("expected 10 cases, got %d", len(cases))
	}

	// Questions ascending, bar before pie, cases of one question adjacent.
	for i, q := range domain.AllQuestions {
		bar := cases[2*i]
		pie := cases[2*i+1]
		if bar.Question != q || bar.Graph != domain.GraphBar {
			t.Errorf("case %d: expected %s/bar, got %s", 2*i, q, bar)
		}
		if pie.Question != q || pie.Graph != domain.GraphPie {
			t.Errorf("case %d: expected %s/pie, got %s", 2*i+1, q, pie)
		}
	}
}

func TestExpand_SingleQuestion(t *testing.T) {
	for _, q := range domain.AllQuestions {
		cases := Expand(&q)

		if len(cases) != 2 {
			t.Fatalf("expected 2 cases for %s, got %d", q, len(cases))
		}
		if cases[0].Question != q || cases[0].Graph != domain.GraphBar {
			t.Errorf("expected %s/bar first, got %s", q, cases[0])
		}
		if cases[1].Question != q || cases[1].Graph != domain.GraphPie {
			t.Errorf("expected %s/pie second, got %s", q, cases[1])
		}
	}
}

func TestExpand_Deterministic(t *testing.T) {
	first := Expand(nil)
	second := Expand(nil)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("case %d differs between expansions: %s vs %s", i, first[i], second[i])
		}
	}
}

func qptr(q domain.QuestionID) *domain.QuestionID {
	return &q
}
