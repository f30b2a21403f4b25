package ui

import (
	"bytes"
	"testing"
)

func TestTableWritePadsColumns(t *testing.T) {
	var buf bytes.Buffer
	tbl := Table{
		Headers: []string{"position", "value"},
		Rows: [][]string{
			{"0", "3"},
			{"10", "1"},
		},
		Highlight: map[int]bool{0: true},
	}
	if err := tbl.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "POSITION  VALUE\n0         3\n10        1\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected table:\n%q\nwant:\n%q", got, want)
	}
}

func TestColorEnabledFalseForBuffers(t *testing.T) {
	var buf bytes.Buffer
	if ColorEnabled(&buf, false) {
		t.Fatalf("buffers are not terminals")
	}
	if IsTerminalWriter(&buf) {
		t.Fatalf("buffers are not terminals")
	}
}

func TestTableWriteTrimsEmptyTrailingColumn(t *testing.T) {
	var buf bytes.Buffer
	tbl := Table{
		Headers: []string{"position", "value", ""},
		Rows: [][]string{
			{"0", "9", "top"},
			{"1", "8", ""},
		},
	}
	if err := tbl.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "POSITION  VALUE\n0         9      top\n1         8\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected table:\n%q\nwant:\n%q", got, want)
	}
}
