package cmtok

import (
	"bytes"
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	src := Terminate([]byte("foo(bar)"))
	tok := Token{Tag: STRING, Span: Span{Start: 4, End: 7}}

	var out bytes.Buffer
	if err := Dump(&out, src, tok); err != nil {
		t.Fatal(err)
	}

	line := out.String()
	if !strings.Contains(line, "STRING") || !strings.Contains(line, "[4,7)") || !strings.Contains(line, `"bar"`) {
		t.Fatalf("dump line wrong: %q", line)
	}
}

func TestDumpAll(t *testing.T) {
	data := []byte("foo(bar)")
	toks := Tokenize(data)

	var out bytes.Buffer
	if err := DumpAll(&out, data, toks); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("line count wrong. expected=%d, got=%d", len(toks), len(lines))
	}
}

func TestRecords(t *testing.T) {
	data := []byte("foo(bar)")
	recs := Records(data, Tokenize(data))

	tests := []struct {
		tag    string
		text   string
		symbol string
	}{
		{"IDENT", "foo", "an identifier"},
		{"(", "(", "'('"},
		{"STRING", "bar", "a string"},
		{")", ")", "')'"},
		{"EOF", "", "EOF"},
	}

	if len(recs) != len(tests) {
		t.Fatalf("record count wrong. expected=%d, got=%d", len(tests), len(recs))
	}
	for i, tt := range tests {
		if recs[i].Tag != tt.tag || recs[i].Text != tt.text || recs[i].Symbol != tt.symbol {
			t.Fatalf("recs[%d] wrong: %+v", i, recs[i])
		}
		if recs[i].End < recs[i].Start {
			t.Fatalf("recs[%d] span inverted: %+v", i, recs[i])
		}
		if recs[i].File != "" {
			t.Fatalf("recs[%d] file should be left to the caller: %+v", i, recs[i])
		}
	}
}

// Records from different files stay distinguishable once the caller
// stamps them, the way cmtokdump does for multi-path -json output.
func TestRecordsFileAttribution(t *testing.T) {
	data := []byte("foo(bar)")
	recs := Records(data, Tokenize(data))
	for i := range recs {
		recs[i].File = "a.cmk"
	}
	for i, rec := range recs {
		if rec.File != "a.cmk" {
			t.Fatalf("recs[%d] file wrong: %+v", i, rec)
		}
	}
}
