package manifest

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/straiforos/wickedbased/pkg/deferred"
)

// render prints tree as YAML with two-space indentation. Key order, scalar
// quoting and multi-line formatting are the emitter's business; numeric-
// looking strings come back double-quoted so they stay strings on re-read.
func render(tree interface{}) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return "", fmt.Errorf("encoding manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("closing manifest encoder: %w", err)
	}
	return buf.String(), nil
}

// stubUnresolved replaces deferred values that survived resolution with a
// printable placeholder, keeping the emitter from serializing opaque
// implementation structs.
func stubUnresolved(tree interface{}) interface{} {
	return mapLeaves(tree, func(v interface{}) interface{} {
		dv, ok := v.(deferred.Value)
		if !ok {
			return v
		}
		if s, ok := dv.(fmt.Stringer); ok {
			return s.String()
		}
		return "<deferred>"
	})
}
