package printerator

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// ItemFormat selects how a single item is turned into text.
type ItemFormat string

const (
	// ItemFmt formats items with fmt, using the directive the printer was
	// rendered with. This is the default.
	ItemFmt ItemFormat = "fmt"
	// ItemJSON writes each item as compact JSON. The directive is ignored.
	ItemJSON ItemFormat = "json"
	// ItemYAML writes each item as single-line YAML flow. The directive is
	// ignored.
	ItemYAML ItemFormat = "yaml"
)

const goTemplatePrefix = "go-template="

var itemFormats = []ItemFormat{ItemFmt, ItemJSON, ItemYAML}

// String returns the item format name.
func (f ItemFormat) String() string { return string(f) }

// GoTemplate returns an ItemFormat that executes a Go text/template with
// each item as its data. The directive is ignored.
func GoTemplate(tmpl string) ItemFormat {
	return ItemFormat(goTemplatePrefix + tmpl)
}

// ItemFormats returns all supported static item format names.
// GoTemplate is not included because it is parameterized.
func ItemFormats() []ItemFormat {
	out := make([]ItemFormat, len(itemFormats))
	copy(out, itemFormats)
	return out
}

// ParseItemFormat parses an item format name. Recognizes all static formats
// and go-template=<tmpl> strings.
func ParseItemFormat(s string) (ItemFormat, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return ItemFormat(s), nil
	}
	for _, f := range itemFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedItemFormat, s)
}

func itemRenderer[T any](f ItemFormat, flavor Flavor, directive string) (func(io.Writer, T) error, error) {
	sharp, err := flavor.itemDirective(directive)
	if err != nil {
		return nil, err
	}
	switch f {
	case ItemFmt:
		return func(w io.Writer, v T) error {
			d := sharp
			if d != directive && !goSyntaxItem(v) {
				d = directive
			}
			_, err := fmt.Fprintf(w, d, v)
			return err
		}, nil
	case ItemJSON:
		return writeJSONItem[T], nil
	case ItemYAML:
		return writeYAMLItem[T], nil
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return templateItem[T](tmpl)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedItemFormat, f)
	}
}

// itemDirective maps the printer's directive to the one used per item.
func (f Flavor) itemDirective(directive string) (string, error) {
	switch f {
	case FlavorDisplay:
		return directive, nil
	case FlavorDebug:
		return goSyntax(directive), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFlavor, f)
	}
}

// goSyntax adds the '#' flag to a %v directive: "%v" becomes "%#v" and
// "%+8v" becomes "%#+8v". Other verbs are returned as they are.
func goSyntax(directive string) string {
	if len(directive) < 2 || directive[0] != '%' || !strings.HasSuffix(directive, "v") {
		return directive
	}
	if strings.ContainsRune(directive[1:len(directive)-1], '#') {
		return directive
	}
	return "%#" + directive[1:]
}

// goSyntaxItem reports whether the debug flavor prints v with %#v. Unsigned
// integers would come out in hex, so numbers keep %v unless they implement
// their own formatting.
func goSyntaxItem(v any) bool {
	switch v.(type) {
	case fmt.Formatter, fmt.GoStringer:
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	default:
		return true
	}
}
