package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/example/stackops/internal/config"
	"github.com/example/stackops/internal/stack"
	"github.com/example/stackops/internal/stackops"
)

func TestFormatElement(t *testing.T) {
	if got := FormatElement('7'); got != "7" {
		t.Fatalf("rune: got %q", got)
	}
	if got := FormatElement(42); got != "42" {
		t.Fatalf("int: got %q", got)
	}
}

func TestStackAndQueueViews(t *testing.T) {
	s := stack.New('1', '2', '3')
	if got := StackOf(s).Elements; strings.Join(got, "") != "321" {
		t.Fatalf("stack view should list top first, got %v", got)
	}
	q := stackops.ToQueue(s)
	view := QueueOf(q)
	if view.Kind != KindQueue || strings.Join(view.Elements, "") != "321" {
		t.Fatalf("unexpected queue view %+v", view)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	view := StackOf(stack.New('4', '2'))
	if err := Write(&buf, config.OutputText, view, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "POSITION  VALUE\n0         2      top\n1         4\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected text:\n%q\nwant:\n%q", got, want)
	}

	buf.Reset()
	if err := Write(&buf, config.OutputText, StackOf(stack.New[rune]()), false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "empty stack\n" {
		t.Fatalf("unexpected empty rendering %q", buf.String())
	}
}

func TestWriteJSONAndYAML(t *testing.T) {
	view := SumView{Start: 1, End: 3, Size: 4, Sum: 8, Valid: true}
	var buf bytes.Buffer
	if err := Write(&buf, config.OutputJSON, view, false); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"sum": 8`) || strings.Contains(buf.String(), "error") {
		t.Fatalf("unexpected json %s", buf.String())
	}
	buf.Reset()
	if err := Write(&buf, config.OutputYAML, view, false); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(buf.String(), "sum: 8\n") || !strings.Contains(buf.String(), "valid: true\n") {
		t.Fatalf("unexpected yaml %s", buf.String())
	}
	if err := Write(&buf, "xml", view, false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestReverseViewDiff(t *testing.T) {
	view := ReverseView{
		Original: []string{"3", "2", "1"},
		Reversed: SequenceView{Kind: KindStack, Elements: []string{"1", "2", "3"}},
	}
	diff, err := view.Diff()
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	lines := map[string]bool{}
	for _, line := range strings.Split(diff, "\n") {
		lines[line] = true
	}
	for _, want := range []string{"--- original", "+++ reversed", "+1", "+2", " 3", "-2", "-1"} {
		if !lines[want] {
			t.Fatalf("diff missing line %q:\n%s", want, diff)
		}
	}
	if lines["-3"] || lines["+3"] {
		t.Fatalf("shared line 3 should stay as context:\n%s", diff)
	}
}
