package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/cnf/bench"
)

// TextEncoder prints a verdict per input followed by one line per
// algorithm with its operation count and running time.
type TextEncoder struct {
	w    io.Writer
	rows []bench.Row
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(rows []bench.Row) error {
	e.rows = rows
	return write(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	for i := 0; i < len(e.rows); {
		input := e.rows[i].Input
		j := i
		for j < len(e.rows) && e.rows[j].Input == input {
			j++
		}
		group := e.rows[i:j]

		fmt.Fprintf(&sb, "input %q (length %d): %s\n", input, group[0].Length, verdict(group))
		for _, r := range group {
			if r.Skipped {
				fmt.Fprintf(&sb, "  %-6s skipped\n", r.Algorithm)
				continue
			}
			fmt.Fprintf(&sb, "  %-6s operations %d, %s\n", r.Algorithm, r.Operations, r.Duration)
		}
		i = j
	}

	return []byte(sb.String()), nil
}

func verdict(rows []bench.Row) string {
	for _, r := range rows {
		if r.Skipped {
			continue
		}
		if r.Matched {
			return "belongs to the language"
		}
		return "does not belong to the language"
	}
	return "not parsed"
}
