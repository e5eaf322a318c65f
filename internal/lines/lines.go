// Package lines turns text input into a lazy sequence of items, one per line.
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrUnsupportedKind is returned by [ParseKind] for unknown kinds.
var ErrUnsupportedKind = errors.New("unsupported kind")

// Kind selects the Go type each line is parsed into.
type Kind string

const (
	String Kind = "string"
	Int    Kind = "int"
	Float  Kind = "float"
)

var kinds = []Kind{String, Int, Float}

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// Kinds returns all supported kind names.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

const maxLineSize = 1 << 20

// Options controls how lines become items.
type Options struct {
	// Kind is the item type. Empty means [String].
	Kind Kind
	// Truncate cuts string lines to this many display columns, ending them
	// with "...". Zero means no limit.
	Truncate int
	// OnSkip is called for lines that cannot be parsed as Kind. Such lines
	// are dropped from the sequence.
	OnSkip func(line int, text string, err error)
}

// Reader reads items from an io.Reader one line at a time.
type Reader struct {
	name    string
	scanner *bufio.Scanner
	opts    Options
	line    int
	err     error
}

// NewReader returns a Reader over r. name identifies the input in errors.
func NewReader(name string, r io.Reader, opts Options) *Reader {
	if opts.Kind == "" {
		opts.Kind = String
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{name: name, scanner: scanner, opts: opts}
}

// All returns a single-pass sequence of parsed lines. Reading stops at the
// end of input or at the first read error, reported by [Reader.Err].
func (r *Reader) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for r.scanner.Scan() {
			r.line++
			item, err := r.parse(r.scanner.Text())
			if err != nil {
				if r.opts.OnSkip != nil {
					r.opts.OnSkip(r.line, r.scanner.Text(), err)
				}
				continue
			}
			if !yield(item) {
				return
			}
		}
		if err := r.scanner.Err(); err != nil {
			r.err = fmt.Errorf("%s: line %d: %w", r.name, r.line+1, err)
		}
	}
}

// Err returns the read error that ended the sequence, if any.
func (r *Reader) Err() error { return r.err }

// Lines returns the number of lines read so far, skipped lines included.
func (r *Reader) Lines() int { return r.line }

func (r *Reader) parse(text string) (any, error) {
	switch r.opts.Kind {
	case String:
		if r.opts.Truncate > 0 {
			text = runewidth.Truncate(text, r.opts.Truncate, "...")
		}
		return text, nil
	case Int:
		return strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	case Float:
		return strconv.ParseFloat(strings.TrimSpace(text), 64)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, r.opts.Kind)
	}
}

// Concat chains sequences, draining each in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}
