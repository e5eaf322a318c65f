package printerator

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAMLItem[T any](w io.Writer, v T) error {
	data, err := marshalFlow(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrItem, err)
	}
	_, err = w.Write(bytes.TrimSuffix(data, []byte("\n")))
	return err
}

// marshalFlow encodes v with every mapping and sequence in flow style so the
// result fits on one line.
func marshalFlow(v any) (data []byte, err error) {
	// yaml.v3 panics outright on kinds it cannot represent, such as channels.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("yaml: %v", r)
		}
	}()
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	setFlow(&node)
	return yaml.Marshal(&node)
}

func setFlow(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style |= yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlow(c)
	}
}
