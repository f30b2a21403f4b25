// File: internal/output/output.go
// Brief: Internal output package implementation for 'output'.

// Package output renders stacks, queues and sums as text tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/example/stackops/internal/config"
	"github.com/example/stackops/internal/stack"
	"github.com/example/stackops/internal/stackops"
	"gopkg.in/yaml.v3"
)

// TextWriter is implemented by every view that has a human-readable form.
type TextWriter interface {
	WriteText(w io.Writer, colorize bool) error
}

// Write renders v in the requested format.
func Write(w io.Writer, format string, v TextWriter, colorize bool) error {
	switch format {
	case config.OutputJSON:
		return EncodeJSON(w, v)
	case config.OutputYAML:
		return EncodeYAML(w, v)
	case config.OutputText, "":
		return v.WriteText(w, colorize)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// EncodeJSON writes v as indented JSON.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeYAML writes v as YAML.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// FormatElement renders a stack element: characters as themselves, integers in decimal.
func FormatElement[T stackops.Element](v T) string {
	if r, ok := any(v).(rune); ok {
		return string(r)
	}
	return strconv.Itoa(int(v))
}

func formatAll[T stackops.Element](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, FormatElement(v))
	}
	return out
}

// StackOf snapshots s, top first.
func StackOf[T stackops.Element](s *stack.Stack[T]) SequenceView {
	return SequenceView{Kind: KindStack, Elements: formatAll(s.Values())}
}

// QueueOf snapshots q, head first.
func QueueOf[T stackops.Element](q *stack.Queue[T]) SequenceView {
	return SequenceView{Kind: KindQueue, Elements: formatAll(q.Values())}
}
