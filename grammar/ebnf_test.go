package grammar

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteEBNF(t *testing.T) {
	g, err := Parse("g.cnf", strings.NewReader("A -> a\nS -> AB\nS -> SS\nB -> b\nS -> \"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteEBNF(&buf, g); err != nil {
		t.Fatalf("WriteEBNF: %v", err)
	}

	want := `A = "a" .
S = A B | S S | "\"" .
B = "b" .
`
	if buf.String() != want {
		t.Errorf("WriteEBNF =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestVerifyEBNF(t *testing.T) {
	g, err := Parse("g.cnf", strings.NewReader("S -> AB\nA -> a\nB -> b\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := VerifyEBNF(g); err != nil {
		t.Errorf("VerifyEBNF: %v", err)
	}

	g, err = Parse("g.cnf", strings.NewReader("S -> AB\nA -> a\nB -> b\nU -> SS\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := VerifyEBNF(g); err == nil {
		t.Errorf("VerifyEBNF accepted a grammar with unreachable U")
	}
}
