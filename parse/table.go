package parse

import "github.com/dhamidi/cnf/grammar"

// Cell is the state of one (nonterminal, span) entry of a parse table.
// A cell only ever moves from Unknown to True or False.
type Cell uint8

const (
	Unknown Cell = iota
	True
	False
)

func cellOf(b bool) Cell {
	if b {
		return True
	}
	return False
}

func (c Cell) String() string {
	switch c {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// Table holds one Cell for every nonterminal A and span [i, j) with
// 0 <= i < j <= n. Spans are stored in a triangular layout so that each
// nonterminal takes n(n+1)/2 cells.
type Table struct {
	n     int
	plane int
	cells []Cell
}

// NewTable returns a table for input length n with every cell Unknown.
func NewTable(nonterminals, n int) *Table {
	plane := n * (n + 1) / 2
	return &Table{
		n:     n,
		plane: plane,
		cells: make([]Cell, nonterminals*plane),
	}
}

// Get returns the cell for a over [i, j).
func (t *Table) Get(a grammar.NonterminalID, i, j int) Cell {
	return t.cells[t.index(a, i, j)]
}

// Set stores the cell for a over [i, j).
func (t *Table) Set(a grammar.NonterminalID, i, j int, c Cell) {
	t.cells[t.index(a, i, j)] = c
}

func (t *Table) index(a grammar.NonterminalID, i, j int) int {
	// rows 0..i-1 hold n, n-1, ..., n-i+1 cells
	row := i*t.n - i*(i-1)/2
	return int(a)*t.plane + row + (j - i - 1)
}
