package parse

import (
	"testing"

	"github.com/dhamidi/cnf/grammar"
)

func TestTableCellsAreDistinct(t *testing.T) {
	const nts, n = 3, 7
	table := NewTable(nts, n)

	seen := make(map[int]bool)
	for a := range nts {
		for i := 0; i < n; i++ {
			for j := i + 1; j <= n; j++ {
				idx := table.index(grammar.NonterminalID(a), i, j)
				if seen[idx] {
					t.Fatalf("cell (%d, %d, %d) shares index %d", a, i, j, idx)
				}
				seen[idx] = true
				if table.Get(grammar.NonterminalID(a), i, j) != Unknown {
					t.Fatalf("cell (%d, %d, %d) not Unknown", a, i, j)
				}
			}
		}
	}
	if len(seen) != len(table.cells) {
		t.Errorf("visited %d cells, table has %d", len(seen), len(table.cells))
	}
}

func TestTableSetGet(t *testing.T) {
	table := NewTable(2, 4)
	table.Set(1, 0, 4, True)
	table.Set(0, 2, 3, False)

	if got := table.Get(1, 0, 4); got != True {
		t.Errorf("Get(1, 0, 4) = %s, want true", got)
	}
	if got := table.Get(0, 2, 3); got != False {
		t.Errorf("Get(0, 2, 3) = %s, want false", got)
	}
	if got := table.Get(0, 0, 4); got != Unknown {
		t.Errorf("Get(0, 0, 4) = %s, want unknown", got)
	}
}
