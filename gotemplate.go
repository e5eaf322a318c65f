package printerator

import (
	"errors"
	"fmt"
	"io"
	"text/template"
)

func templateItem[T any](text string) (func(io.Writer, T) error, error) {
	tmpl, err := template.New("item").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return func(w io.Writer, v T) error {
		err := tmpl.Execute(w, v)
		var execErr template.ExecError
		if errors.As(err, &execErr) {
			return fmt.Errorf("%w: %w", ErrItem, err)
		}
		return err
	}, nil
}
