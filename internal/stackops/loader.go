package stackops

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/example/stackops/internal/stack"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// ErrFileRead matches any failure to read or decode a digit source.
var ErrFileRead = errors.New("read digit source")

var errMalformedInput = errors.New("input is not valid UTF-8")

// ReadError records which source failed and why.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", ErrFileRead, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", ErrFileRead, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Is(target error) bool { return target == ErrFileRead }

// LoadDigitsFromFile reads the whole file at path and returns a stack with
// its ASCII digits pushed in scan order. On failure the returned stack is
// empty and the error matches ErrFileRead.
func LoadDigitsFromFile(path string) (*stack.Stack[rune], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return stack.New[rune](), errors.WithStack(&ReadError{Path: path, Err: err})
	}
	return digitsFromBytes(path, data)
}

// LoadDigits is LoadDigitsFromFile for an already opened source.
func LoadDigits(r io.Reader) (*stack.Stack[rune], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return stack.New[rune](), errors.WithStack(&ReadError{Err: err})
	}
	return digitsFromBytes("", data)
}

// LoadDigitsBestEffort never fails: read errors are logged with their full
// detail and whatever was collected (nothing, for a failed read) is returned.
func LoadDigitsBestEffort(log logr.Logger, path string) *stack.Stack[rune] {
	digits, err := LoadDigitsFromFile(path)
	if err != nil {
		log.Error(err, "File not found", "path", path, "detail", fmt.Sprintf("%+v", err))
	}
	return digits
}

func digitsFromBytes(path string, data []byte) (*stack.Stack[rune], error) {
	digits := stack.New[rune]()
	if !utf8.Valid(data) {
		return digits, errors.WithStack(&ReadError{Path: path, Err: errMalformedInput})
	}
	for line := range strings.Lines(string(data)) {
		for _, r := range line {
			if isDigit(r) {
				digits.Push(r)
			}
		}
	}
	return digits, nil
}
