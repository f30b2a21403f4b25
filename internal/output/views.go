package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/example/stackops/internal/ui"
	"github.com/pmezard/go-difflib/difflib"
)

// Sequence kinds.
const (
	KindStack = "stack"
	KindQueue = "queue"
)

// SequenceView is the serializable form of a stack (top first) or a queue (head first).
type SequenceView struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Elements []string `json:"elements" yaml:"elements"`
}

func (v SequenceView) endLabel() string {
	if v.Kind == KindQueue {
		return "head"
	}
	return "top"
}

// WriteText prints one row per element with the top (or head) marked.
func (v SequenceView) WriteText(w io.Writer, colorize bool) error {
	if len(v.Elements) == 0 {
		_, err := fmt.Fprintf(w, "empty %s\n", v.Kind)
		return err
	}
	tbl := ui.Table{
		Headers:   []string{"position", "value", ""},
		Highlight: map[int]bool{0: true},
		Colorize:  colorize,
	}
	for i, el := range v.Elements {
		marker := ""
		if i == 0 {
			marker = v.endLabel()
		}
		tbl.Rows = append(tbl.Rows, []string{strconv.Itoa(i), el, marker})
	}
	return tbl.Write(w)
}

// ReverseView reports the outcome of reversing a stack. SourceRemaining is
// the size of the input after it was drained.
type ReverseView struct {
	Original        []string     `json:"original" yaml:"original"`
	Reversed        SequenceView `json:"reversed" yaml:"reversed"`
	SourceRemaining int          `json:"sourceRemaining" yaml:"sourceRemaining"`
}

func (v ReverseView) WriteText(w io.Writer, colorize bool) error {
	if err := v.Reversed.WriteText(w, colorize); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "source drained: %d element(s) left\n", v.SourceRemaining)
	return err
}

// Diff returns a unified diff between the original and the reversed pop order.
func (v ReverseView) Diff() (string, error) {
	ud := difflib.UnifiedDiff{
		A:        linesOf(v.Original),
		B:        linesOf(v.Reversed.Elements),
		FromFile: "original",
		ToFile:   "reversed",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}

func linesOf(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v+"\n")
	}
	return out
}

// SumView reports a positional sum. Valid is false when the range was rejected.
type SumView struct {
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Size  int    `json:"size" yaml:"size"`
	Sum   int    `json:"sum" yaml:"sum"`
	Valid bool   `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (v SumView) WriteText(w io.Writer, _ bool) error {
	_, err := fmt.Fprintln(w, v.Sum)
	return err
}
