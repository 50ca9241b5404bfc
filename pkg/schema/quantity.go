package schema

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Quantity constrains how many instances of a group, dataset, or link may
// appear in a conforming file. The zero value means exactly one.
type Quantity string

const (
	// QuantityOptional admits zero or one instance.
	QuantityOptional Quantity = "?"
	// QuantityZeroOrMany admits any number of instances.
	QuantityZeroOrMany Quantity = "*"
	// QuantityOneOrMany requires at least one instance.
	QuantityOneOrMany Quantity = "+"
)

// IsZero reports whether the quantity is the default (exactly one), so
// omitempty elides it.
func (q Quantity) IsZero() bool { return q == "" || q == "1" }

// Valid reports whether the quantity is one of the dialect's forms: a
// positive integer or one of "?", "*", "+".
func (q Quantity) Valid() bool {
	switch q {
	case "", QuantityOptional, QuantityZeroOrMany, QuantityOneOrMany:
		return true
	}
	n, err := strconv.Atoi(string(q))
	return err == nil && n > 0
}

// MarshalYAML emits integer quantities as integers, symbolic ones as strings.
func (q Quantity) MarshalYAML() (interface{}, error) {
	if n, err := strconv.Atoi(string(q)); err == nil {
		return n, nil
	}
	return string(q), nil
}

// UnmarshalYAML accepts integers and the symbolic forms.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: quantity must be an integer or one of ?, *, +", node.Line)
	}
	*q = Quantity(node.Value)
	if !q.Valid() {
		return fmt.Errorf("line %d: invalid quantity %q", node.Line, node.Value)
	}
	return nil
}
