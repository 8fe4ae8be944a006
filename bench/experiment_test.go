package bench

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/dhamidi/cnf/parse"
)

func TestParseExperimentDefaults(t *testing.T) {
	exp, err := ParseExperiment([]byte(`
grammar = "anbn.cnf"

[input]
prefix = "a"
suffix = "b"
count = 3
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if exp.Input.Kind != KindWrap {
		t.Errorf("Kind = %q, want %q", exp.Input.Kind, KindWrap)
	}
	if exp.Input.Initial != 1 || exp.Input.Step != 1 {
		t.Errorf("Initial, Step = %d, %d; want 1, 1", exp.Input.Initial, exp.Input.Step)
	}
	if !slices.Equal(exp.Algorithms, []string{"naive", "bu", "td"}) {
		t.Errorf("Algorithms = %q", exp.Algorithms)
	}
	if got := slices.Collect(exp.Inputs()); !slices.Equal(got, []string{"ab", "aabb", "aaabbb"}) {
		t.Errorf("Inputs = %q", got)
	}
}

func TestParseExperimentRejects(t *testing.T) {
	tests := map[string]string{
		"no grammar":        "[input]\nprefix = \"a\"\ncount = 1\n",
		"bad algorithm":     "grammar = \"g\"\nalgorithms = [\"earley\"]\n[input]\nprefix = \"a\"\ncount = 1\n",
		"bad kind":          "grammar = \"g\"\n[input]\nkind = \"random\"\ncount = 1\n",
		"wrap without text": "grammar = \"g\"\n[input]\ncount = 1\n",
		"repeat no unit":    "grammar = \"g\"\n[input]\nkind = \"repeat\"\ncount = 1\n",
		"list no strings":   "grammar = \"g\"\n[input]\nkind = \"list\"\n",
		"zero count":        "grammar = \"g\"\n[input]\nprefix = \"a\"\n",
		"negative limit":    "grammar = \"g\"\n[input]\nprefix = \"a\"\ncount = 1\n[limits]\nnaive-max-length = -1\n",
		"not toml":          "grammar = ",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseExperiment([]byte(src)); err == nil {
				t.Errorf("ParseExperiment succeeded")
			}
		})
	}
}

func TestLoadExperimentAndRun(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "anbn.cnf"), []byte(anbn), 0o644); err != nil {
		t.Fatalf("write grammar: %v", err)
	}
	path := filepath.Join(dir, "exp.toml")
	src := `
grammar = "anbn.cnf"
start = "S"
algorithms = ["bu", "naive"]

[input]
kind = "list"
strings = ["ab", "abab", "aaabbb"]

[limits]
naive-max-length = 4
max-depth = 64
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write experiment: %v", err)
	}

	exp, err := LoadExperiment(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := exp.GrammarPath(), filepath.Join(dir, "anbn.cnf"); got != want {
		t.Errorf("GrammarPath = %q, want %q", got, want)
	}

	r, err := exp.Runner()
	if err != nil {
		t.Fatalf("runner: %v", err)
	}
	if !slices.Equal(r.Algorithms, []parse.Algorithm{parse.BottomUp, parse.Naive}) {
		t.Errorf("Algorithms = %v", r.Algorithms)
	}

	rows, err := r.Run(exp.Inputs())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var verdicts []string
	for _, row := range rows {
		switch {
		case row.Skipped:
			verdicts = append(verdicts, "skip")
		case row.Matched:
			verdicts = append(verdicts, "yes")
		default:
			verdicts = append(verdicts, "no")
		}
	}
	if got, want := strings.Join(verdicts, " "), "yes yes no no yes skip"; got != want {
		t.Errorf("verdicts = %q, want %q", got, want)
	}
}

func TestExperimentUnknownStart(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "anbn.cnf"), []byte(anbn), 0o644); err != nil {
		t.Fatalf("write grammar: %v", err)
	}
	for _, start := range []string{"Q", "ST"} {
		exp := &Experiment{Grammar: "anbn.cnf", Start: start, dir: dir, Input: Input{Prefix: "a", Count: 1}}
		if err := exp.validate(); err != nil {
			t.Fatalf("validate: %v", err)
		}
		if _, err := exp.Runner(); err == nil {
			t.Errorf("start %q accepted", start)
		}
	}
}
