package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/cnf/bench"
)

type JSONEncoder struct {
	w    io.Writer
	rows []bench.Row
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(rows []bench.Row) error {
	e.rows = rows
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := make([]jsonRow, len(e.rows))
	for i, r := range e.rows {
		data[i] = jsonRow{
			Input:      r.Input,
			Length:     r.Length,
			Algorithm:  r.Algorithm.String(),
			Skipped:    r.Skipped,
			Matched:    r.Matched,
			Operations: r.Operations,
			DurationNs: r.Duration.Nanoseconds(),
		}
	}
	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}

type jsonRow struct {
	Input      string `json:"input"`
	Length     int    `json:"length"`
	Algorithm  string `json:"algorithm"`
	Skipped    bool   `json:"skipped,omitempty"`
	Matched    bool   `json:"matched"`
	Operations uint64 `json:"operations"`
	DurationNs int64  `json:"durationNs"`
}
