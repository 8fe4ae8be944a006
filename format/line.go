package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/cnf/bench"
)

// LineEncoder writes tab separated rows with a header line, ready to be
// pasted into a plotting tool.
type LineEncoder struct {
	w    io.Writer
	rows []bench.Row
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(rows []bench.Row) error {
	e.rows = rows
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("length\talgorithm\tmatched\toperations\tnanoseconds\n")
	for _, r := range e.rows {
		if r.Skipped {
			fmt.Fprintf(&sb, "%d\t%s\t-\t-\t-\n", r.Length, r.Algorithm)
			continue
		}
		fmt.Fprintf(&sb, "%d\t%s\t%t\t%d\t%d\n",
			r.Length,
			r.Algorithm,
			r.Matched,
			r.Operations,
			r.Duration.Nanoseconds(),
		)
	}

	return []byte(sb.String()), nil
}
