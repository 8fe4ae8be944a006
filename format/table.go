package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dhamidi/cnf/bench"
	"github.com/pterm/pterm"
)

// TableEncoder renders rows as an aligned terminal table.
type TableEncoder struct {
	w    io.Writer
	rows []bench.Row
}

func NewTableEncoder(w io.Writer) *TableEncoder {
	return &TableEncoder{w: w}
}

func (e *TableEncoder) Encode(rows []bench.Row) error {
	e.rows = rows
	return write(e.w, e)
}

func (e *TableEncoder) MarshalText() ([]byte, error) {
	data := pterm.TableData{
		{"Length", "Algorithm", "Matched", "Operations", "Time"},
	}
	for _, r := range e.rows {
		if r.Skipped {
			data = append(data, []string{strconv.Itoa(r.Length), r.Algorithm.String(), "-", "-", "skipped"})
			continue
		}
		data = append(data, []string{
			strconv.Itoa(r.Length),
			r.Algorithm.String(),
			strconv.FormatBool(r.Matched),
			strconv.FormatUint(r.Operations, 10),
			r.Duration.String(),
		})
	}

	text, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return nil, fmt.Errorf("render table: %w", err)
	}
	return []byte(text + "\n"), nil
}
