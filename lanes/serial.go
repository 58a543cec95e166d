//go:build !lanes_noserial

package lanes

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Serialization reports whether JSON/YAML encoding methods are compiled in.
// Build with the lanes_noserial tag to leave them out.
const Serialization = true

// MarshalYAML encodes a as a float32 so the shortest 32-bit representation
// is written.
func (a F32) MarshalYAML() (any, error) { return float32(a), nil }

// UnmarshalYAML parses the scalar with 32-bit precision, so any value
// written by MarshalYAML decodes to the identical bits.
func (a *F32) UnmarshalYAML(n *yaml.Node) error {
	f, err := parseYAMLFloat(n, 32)
	if err != nil {
		return err
	}
	*a = F32(f)
	return nil
}

func (a F64) MarshalYAML() (any, error) { return float64(a), nil }

func (a *F64) UnmarshalYAML(n *yaml.Node) error {
	f, err := parseYAMLFloat(n, 64)
	if err != nil {
		return err
	}
	*a = F64(f)
	return nil
}

func parseYAMLFloat(n *yaml.Node, bitSize int) (float64, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("lanes: line %d: expected a number", n.Line)
	}
	switch n.Value {
	case ".nan", ".NaN", ".NAN":
		return math.NaN(), nil
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return math.Inf(1), nil
	case "-.inf", "-.Inf", "-.INF":
		return math.Inf(-1), nil
	}
	f, err := strconv.ParseFloat(n.Value, bitSize)
	if err != nil {
		return 0, fmt.Errorf("lanes: line %d: %w", n.Line, err)
	}
	return f, nil
}
