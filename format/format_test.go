package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dhamidi/cnf/bench"
	"github.com/dhamidi/cnf/parse"
)

var sampleRows = []bench.Row{
	{Input: "ab", Length: 2, Algorithm: parse.Naive, Matched: true, Operations: 3, Duration: 1500 * time.Nanosecond},
	{Input: "ab", Length: 2, Algorithm: parse.BottomUp, Matched: true, Operations: 1, Duration: 800 * time.Nanosecond},
	{Input: "ab", Length: 2, Algorithm: parse.TopDown, Matched: true, Operations: 3, Duration: time.Microsecond},
	{Input: "aaabbb", Length: 6, Algorithm: parse.Naive, Skipped: true},
	{Input: "aaabbb", Length: 6, Algorithm: parse.BottomUp, Matched: true, Operations: 70, Duration: 2 * time.Microsecond},
}

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(sampleRows); err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := "length\talgorithm\tmatched\toperations\tnanoseconds\n" +
		"2\tnaive\ttrue\t3\t1500\n" +
		"2\tbu\ttrue\t1\t800\n" +
		"2\ttd\ttrue\t3\t1000\n" +
		"6\tnaive\t-\t-\t-\n" +
		"6\tbu\ttrue\t70\t2000\n"
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTextEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(sampleRows); err != nil {
		t.Fatalf("encode: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`input "ab" (length 2): belongs to the language`,
		"  naive  operations 3, 1.5µs",
		`input "aaabbb" (length 6): belongs to the language`,
		"  naive  skipped",
		"  bu     operations 70, 2µs",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	rejected := []bench.Row{{Input: "ba", Length: 2, Algorithm: parse.TopDown, Operations: 2}}
	if err := NewTextEncoder(&buf).Encode(rejected); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(buf.String(), "does not belong to the language") {
		t.Errorf("got %q", buf.String())
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(sampleRows); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got []jsonRow
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(sampleRows) {
		t.Fatalf("got %d rows, want %d", len(got), len(sampleRows))
	}
	if got[1].Algorithm != "bu" || got[1].Operations != 1 || got[1].DurationNs != 800 {
		t.Errorf("row 1 = %+v", got[1])
	}
	if !got[3].Skipped {
		t.Errorf("row 3 not skipped: %+v", got[3])
	}
}

func TestTableEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableEncoder(&buf).Encode(sampleRows); err != nil {
		t.Fatalf("encode: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Operations", "naive", "skipped", "70"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestNewEncoder(t *testing.T) {
	for _, name := range Names {
		if _, err := NewEncoder(name, &bytes.Buffer{}); err != nil {
			t.Errorf("NewEncoder(%q): %v", name, err)
		}
	}
	if _, err := NewEncoder("xml", &bytes.Buffer{}); err == nil {
		t.Errorf("NewEncoder(\"xml\") succeeded")
	}
}
