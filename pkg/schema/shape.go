package schema

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dims names the dimensions of an array-valued attribute or dataset. A
// declaration may carry several alternatives (for example a 2D and a 3D
// form). A single alternative serializes as a flat list of names.
type Dims [][]string

// DimNames returns a Dims with one alternative.
func DimNames(names ...string) Dims { return Dims{names} }

// DimAlternatives returns a Dims with one entry per alternative.
func DimAlternatives(alts ...[]string) Dims { return Dims(alts) }

// MarshalYAML flattens a single alternative to a plain list.
func (d Dims) MarshalYAML() (interface{}, error) {
	if len(d) == 1 {
		return d[0], nil
	}
	return [][]string(d), nil
}

// UnmarshalYAML accepts a list of names or a list of lists.
func (d *Dims) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: dims must be a list", node.Line)
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var alts [][]string
		if err := node.Decode(&alts); err != nil {
			return err
		}
		*d = Dims(alts)
		return nil
	}
	var flat []string
	if err := node.Decode(&flat); err != nil {
		return err
	}
	*d = Dims{flat}
	return nil
}

// AnySize marks an unconstrained dimension extent (serialized as null).
var AnySize *int

// FixedSize returns a pointer suitable for a constrained Shape entry.
func FixedSize(n int) *int { return &n }

// Shape constrains the extent of each dimension; a nil entry leaves that
// dimension unconstrained. Like Dims, a declaration may carry alternatives,
// and each alternative's rank must match the corresponding dims alternative.
type Shape [][]*int

// ShapeOf returns a Shape with one alternative.
func ShapeOf(sizes ...*int) Shape { return Shape{sizes} }

// ShapeAlternatives returns a Shape with one entry per alternative.
func ShapeAlternatives(alts ...[]*int) Shape { return Shape(alts) }

// MarshalYAML flattens a single alternative to a plain list.
func (s Shape) MarshalYAML() (interface{}, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return [][]*int(s), nil
}

// UnmarshalYAML accepts a list of int-or-null or a list of such lists.
func (s *Shape) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: shape must be a list", node.Line)
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var alts [][]*int
		if err := node.Decode(&alts); err != nil {
			return err
		}
		*s = Shape(alts)
		return nil
	}
	var flat []*int
	if err := node.Decode(&flat); err != nil {
		return err
	}
	*s = Shape{flat}
	return nil
}

// String renders the shape for log and CLI output, e.g. "[2] or [3]".
func (s Shape) String() string {
	alts := make([]string, len(s))
	for i, alt := range s {
		parts := make([]string, len(alt))
		for j, size := range alt {
			if size == nil {
				parts[j] = "any"
			} else {
				parts[j] = strconv.Itoa(*size)
			}
		}
		alts[i] = "[" + strings.Join(parts, ", ") + "]"
	}
	return strings.Join(alts, " or ")
}
