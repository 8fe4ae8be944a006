// Package format renders benchmark and parse rows for the terminal, for
// spreadsheets and for other programs.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/cnf/bench"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(rows []bench.Row) error
}

// Names lists the encoders NewEncoder knows.
var Names = []string{"text", "line", "json", "table"}

// NewEncoder returns the encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "table":
		return NewTableEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected text, line, json, or table)", name)
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
