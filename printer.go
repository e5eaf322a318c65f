package printerator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"sync"
)

// Sentinel errors for programmatic error handling.
var (
	ErrItem                  = errors.New("item rendering failed")
	ErrUnsupportedFlavor     = errors.New("unsupported flavor")
	ErrUnsupportedItemFormat = errors.New("unsupported item format")
	ErrInvalidTemplate       = errors.New("invalid template")
)

// Flavor selects which rendering protocol a [Printer] applies to its items.
type Flavor string

const (
	// FlavorDebug renders %v items in Go syntax (%#v), except unsigned
	// integers and floats, and ends pretty output with a newline after the
	// closing bracket.
	FlavorDebug Flavor = "debug"
	// FlavorDisplay renders items with the caller's directive unchanged.
	FlavorDisplay Flavor = "display"
)

var flavors = []Flavor{FlavorDebug, FlavorDisplay}

// String returns the flavor name.
func (f Flavor) String() string { return string(f) }

// Flavors returns all supported flavor names.
func Flavors() []Flavor {
	out := make([]Flavor, len(flavors))
	copy(out, flavors)
	return out
}

// ParseFlavor parses a flavor name.
func ParseFlavor(s string) (Flavor, error) {
	for _, f := range flavors {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFlavor, s)
}

const defaultIndent = "    "

// Options controls the layout of a [Printer]. Options are copied at
// construction and never change afterwards.
type Options struct {
	// Pretty writes one item per line, indented and wrapped in brackets.
	// Otherwise items are joined with ", " on a single line.
	Pretty bool
	// Indices prefixes every item with its zero-based position and ": ".
	Indices bool
	// Indent is the per-item indent in Pretty mode. Empty means four spaces.
	Indent string
	// Item selects the per-item renderer. Empty means [ItemFmt].
	Item ItemFormat
}

var defaultOptions = Options{Indices: true}

// DefaultOptions returns the options used by [Debug] and [Display], and by
// the New constructors when opts is nil: single line, with indices. The
// result is a copy; changing it does not affect later printers.
func DefaultOptions() Options { return defaultOptions }

// Printer renders a single-pass sequence without collecting it. It
// implements [fmt.Formatter] and [io.WriterTo]; the sequence is drained by
// the first render and later renders see whatever is left, which after a
// complete render is nothing.
//
// A Printer is safe for concurrent use. Renders are serialized so two
// callers never interleave draws from the sequence.
type Printer[T any] struct {
	flavor Flavor
	opts   Options

	mu   sync.Mutex
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
}

// New wraps seq in a Printer of the given flavor. A nil opts means
// [DefaultOptions]. An unknown flavor is reported by the first render.
func New[T any](seq iter.Seq[T], flavor Flavor, opts *Options) *Printer[T] {
	o := defaultOptions
	if opts != nil {
		o = *opts
	}
	if o.Indent == "" {
		o.Indent = defaultIndent
	}
	if o.Item == "" {
		o.Item = ItemFmt
	}
	return &Printer[T]{flavor: flavor, opts: o, seq: seq}
}

// Debug wraps seq in a debug Printer with [DefaultOptions].
func Debug[T any](seq iter.Seq[T]) *Printer[T] {
	return New(seq, FlavorDebug, nil)
}

// Display wraps seq in a display Printer with [DefaultOptions].
func Display[T any](seq iter.Seq[T]) *Printer[T] {
	return New(seq, FlavorDisplay, nil)
}

// NewDebug wraps seq in a debug Printer with the given options.
func NewDebug[T any](seq iter.Seq[T], opts *Options) *Printer[T] {
	return New(seq, FlavorDebug, opts)
}

// NewDisplay wraps seq in a display Printer with the given options.
func NewDisplay[T any](seq iter.Seq[T], opts *Options) *Printer[T] {
	return New(seq, FlavorDisplay, opts)
}

// DebugWith wraps seq in a debug Printer with explicit layout flags.
func DebugWith[T any](seq iter.Seq[T], pretty, indices bool) *Printer[T] {
	return New(seq, FlavorDebug, &Options{Pretty: pretty, Indices: indices})
}

// DisplayWith wraps seq in a display Printer with explicit layout flags.
func DisplayWith[T any](seq iter.Seq[T], pretty, indices bool) *Printer[T] {
	return New(seq, FlavorDisplay, &Options{Pretty: pretty, Indices: indices})
}

// Flavor returns the rendering protocol of p.
func (p *Printer[T]) Flavor() Flavor { return p.flavor }

// Options returns a copy of the options p was built with.
func (p *Printer[T]) Options() Options { return p.opts }

// Format implements [fmt.Formatter]. The verb, flags, width and precision
// are forwarded to every item, so "%.1f" prints each item with one decimal.
// Since Format cannot return an error, a failed render is reported inline
// as %!verb(ERROR=...), the way fmt reports bad operands.
func (p *Printer[T]) Format(st fmt.State, verb rune) {
	if err := p.render(st, fmt.FormatString(st, verb)); err != nil {
		fmt.Fprintf(st, "%%!%c(ERROR=%v)", verb, err)
	}
}

// WriteTo renders p to w with the %v directive. It implements [io.WriterTo].
func (p *Printer[T]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := p.render(cw, "%v")
	return cw.n, err
}

// Render renders p to w, formatting each item with directive, a fmt
// directive for a single operand such as "%v" or "%.2f". Unlike [Format],
// failures are returned.
func (p *Printer[T]) Render(w io.Writer, directive string) error {
	return p.render(w, directive)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
