package bench

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/dhamidi/cnf/grammar"
	"github.com/dhamidi/cnf/parse"
	"github.com/pelletier/go-toml"
)

// Input kinds understood by an experiment's [input] table.
const (
	KindWrap   = "wrap"
	KindRepeat = "repeat"
	KindList   = "list"
)

// Experiment describes one measurement run as it is encoded in TOML:
//
//	grammar = "anbn.cnf"
//	algorithms = ["naive", "bu", "td"]
//
//	[input]
//	kind = "wrap"
//	prefix = "a"
//	suffix = "b"
//	initial = 1
//	step = 1
//	count = 12
//
//	[limits]
//	naive-max-length = 16
type Experiment struct {
	Grammar    string   `toml:"grammar"`
	Start      string   `toml:"start,omitempty"`
	Algorithms []string `toml:"algorithms,omitempty"`
	Input      Input    `toml:"input"`
	Limits     Limits   `toml:"limits"`

	// dir is the directory relative grammar paths are resolved against
	dir string
}

// Input selects the sequence of strings fed to the parser.
type Input struct {
	Kind    string   `toml:"kind"`
	Prefix  string   `toml:"prefix,omitempty"`
	Suffix  string   `toml:"suffix,omitempty"`
	Unit    string   `toml:"unit,omitempty"`
	Initial int      `toml:"initial"`
	Step    int      `toml:"step"`
	Count   int      `toml:"count"`
	Strings []string `toml:"strings,omitempty"`
}

// Limits keeps slow algorithms from running away.
type Limits struct {
	NaiveMaxLength int `toml:"naive-max-length"`
	MaxDepth       int `toml:"max-depth"`
}

// LoadExperiment reads and validates an experiment file. A relative grammar
// path is resolved against the experiment file's directory.
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read experiment: %w", err)
	}
	exp, err := ParseExperiment(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	exp.dir = filepath.Dir(path)
	return exp, nil
}

// ParseExperiment decodes and validates an experiment, filling in defaults.
func ParseExperiment(data []byte) (*Experiment, error) {
	exp := &Experiment{}
	if err := toml.Unmarshal(data, exp); err != nil {
		return nil, fmt.Errorf("decode experiment: %w", err)
	}
	if err := exp.validate(); err != nil {
		return nil, err
	}
	return exp, nil
}

func (e *Experiment) validate() error {
	if e.Grammar == "" {
		return fmt.Errorf("missing grammar")
	}
	if len(e.Algorithms) == 0 {
		for _, alg := range parse.Algorithms() {
			e.Algorithms = append(e.Algorithms, alg.String())
		}
	}
	for _, name := range e.Algorithms {
		if _, err := parse.ParseAlgorithm(name); err != nil {
			return err
		}
	}
	if e.Limits.NaiveMaxLength < 0 || e.Limits.MaxDepth < 0 {
		return fmt.Errorf("limits must not be negative")
	}

	in := &e.Input
	if in.Kind == "" {
		in.Kind = KindWrap
	}
	if in.Step == 0 {
		in.Step = 1
	}
	if in.Initial == 0 {
		in.Initial = 1
	}
	switch in.Kind {
	case KindWrap:
		if in.Prefix == "" && in.Suffix == "" {
			return fmt.Errorf("input kind %q needs a prefix or a suffix", in.Kind)
		}
	case KindRepeat:
		if in.Unit == "" {
			return fmt.Errorf("input kind %q needs a unit", in.Kind)
		}
	case KindList:
		if len(in.Strings) == 0 {
			return fmt.Errorf("input kind %q needs strings", in.Kind)
		}
		return nil
	default:
		return fmt.Errorf("unknown input kind %q (expected wrap, repeat, or list)", in.Kind)
	}
	if in.Count <= 0 {
		return fmt.Errorf("input count must be positive")
	}
	if in.Initial < 0 || in.Step < 0 {
		return fmt.Errorf("input initial and step must not be negative")
	}
	return nil
}

// GrammarPath returns the grammar file path, resolved against the
// experiment file's directory when relative.
func (e *Experiment) GrammarPath() string {
	if filepath.IsAbs(e.Grammar) || e.dir == "" {
		return e.Grammar
	}
	return filepath.Join(e.dir, e.Grammar)
}

// Inputs returns the experiment's input sequence.
func (e *Experiment) Inputs() iter.Seq[string] {
	in := e.Input
	switch in.Kind {
	case KindRepeat:
		return Repeat(in.Unit, in.Initial, in.Step, in.Count)
	case KindList:
		return List(in.Strings...)
	default:
		return Wrap(in.Prefix, in.Suffix, in.Initial, in.Step, in.Count)
	}
}

// Runner loads the experiment's grammar and returns a runner configured
// with its algorithms, start symbol and limits.
func (e *Experiment) Runner() (*Runner, error) {
	g, err := grammar.LoadFile(e.GrammarPath())
	if err != nil {
		return nil, fmt.Errorf("load grammar: %w", err)
	}
	return e.runnerFor(g)
}

func (e *Experiment) runnerFor(g *grammar.Grammar) (*Runner, error) {
	var opts []parse.Option
	if e.Limits.MaxDepth > 0 {
		opts = append(opts, parse.WithMaxDepth(e.Limits.MaxDepth))
	}
	r := NewRunner(parse.New(g, opts...))
	r.NaiveMaxLength = e.Limits.NaiveMaxLength

	if e.Start != "" {
		runes := []rune(e.Start)
		if len(runes) != 1 {
			return nil, fmt.Errorf("start symbol %q must be a single nonterminal", e.Start)
		}
		id, err := g.ID(runes[0])
		if err != nil {
			return nil, err
		}
		r.Start = id
	}

	r.Algorithms = r.Algorithms[:0]
	for _, name := range e.Algorithms {
		alg, err := parse.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		r.Algorithms = append(r.Algorithms, alg)
	}
	return r, nil
}
