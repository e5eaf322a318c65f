// Package printerator prints sequences without collecting them first.
//
// A [Printer] wraps a single-pass [iter.Seq] and renders it straight into
// the output as items are drawn. The last item is detected with a one item
// lookahead, so the sequence is never buffered and may be arbitrarily long.
//
//	nums := slices.Values([]int{0, 1, 2})
//	fmt.Println(printerator.DisplayWith(nums, false, true))
//	// 0: 0, 1: 1, 2: 2
//
// # Flavors
//
// Printers come in two flavors, mirroring the two ways a value is usually
// printed:
//
//   - [FlavorDisplay] ([Display], [NewDisplay], [DisplayWith]) formats each
//     item with the directive given to the printer, unchanged.
//   - [FlavorDebug] ([Debug], [NewDebug], [DebugWith]) turns %v into %#v, so
//     strings are quoted and structs print in Go syntax. Unsigned integers
//     and floats keep %v and stay decimal. Pretty debug output ends with a
//     newline after the closing bracket; display output does not.
//
// The verb, flags, width and precision given to the printer are passed to
// every item. Format the printer as if it were a single item:
//
//	roots := func(yield func(float64) bool) { ... }
//	fmt.Printf("%.1f", printerator.Display(roots))
//	// 0: 61122.2, 1: 58358.3, 2: 53668.0
//
// # Options
//
// [Options.Pretty] writes one item per line inside brackets:
//
//	[
//	    item,
//	    item2
//	]
//
// otherwise items are joined on one line:
//
//	item, item2
//
// [Options.Indices] prefixes each item with its zero-based position:
//
//	0: item, 1: item2
//
// The two options are independent. [DefaultOptions] returns a copy of the
// defaults: single line with indices.
//
// # Item Formats
//
// [Options.Item] selects how each item becomes text: [ItemFmt] (fmt, the
// default), [ItemJSON] (compact JSON) or [ItemYAML] (single-line YAML flow).
// [GoTemplate] executes a [text/template] per item:
//
//	opts := &printerator.Options{Item: printerator.GoTemplate("{{.Name}}")}
//	fmt.Print(printerator.NewDisplay(users, opts))
//	// 0: alice, 1: bob
//
// Use [ParseItemFormat] to turn a CLI flag into an [ItemFormat]; it accepts
// "go-template=<tmpl>" strings as well as the static names.
//
// # Single Pass
//
// The first render drains the sequence. Rendering the same printer again
// continues with what is left, which after a complete render is nothing.
// Renders are serialized, so a printer shared between goroutines produces
// one full rendering and never interleaves items.
//
// # Errors
//
// [Printer.WriteTo] and [Printer.Render] return the first write or item
// error and stop. Through fmt, which has no error channel, the failure is
// written inline as %!v(ERROR=...). The package exports sentinel errors:
//
//   - [ErrItem] — an item could not be rendered (JSON, YAML or template)
//   - [ErrUnsupportedFlavor] — unknown flavor name
//   - [ErrUnsupportedItemFormat] — unknown item format name
//   - [ErrInvalidTemplate] — invalid go-template syntax
package printerator
