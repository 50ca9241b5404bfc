package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RefTypeObject is the reference kind for object references, the only
// reference kind extension schemas use.
const RefTypeObject = "object"

// scalarDTypes lists the scalar type names the specification language
// defines. Anything else is flagged by the validator as a warning.
var scalarDTypes = map[string]bool{
	"float": true, "float32": true, "double": true, "float64": true,
	"long": true, "int64": true, "int": true, "int32": true,
	"int16": true, "short": true, "int8": true,
	"uint": true, "uint32": true, "uint16": true, "uint8": true, "uint64": true,
	"numeric": true, "text": true, "utf": true, "utf8": true, "utf-8": true,
	"ascii": true, "bytes": true, "bool": true, "isodatetime": true,
}

// KnownScalarDType reports whether name is a scalar type name defined by the
// specification language.
func KnownScalarDType(name string) bool { return scalarDTypes[name] }

// DType is the declared value type of an attribute or dataset: either a
// scalar type name such as "text" or "numeric", or an object reference to
// another declared type.
type DType struct {
	Name string
	Ref  *RefSpec
}

// RefSpec describes a reference dtype pointing at instances of another type.
type RefSpec struct {
	TargetType string `yaml:"target_type"`
	RefType    string `yaml:"reftype"`
}

// Scalar returns a scalar dtype.
func Scalar(name string) DType { return DType{Name: name} }

// ObjectRef returns an object-reference dtype targeting the named type.
func ObjectRef(targetType string) DType {
	return DType{Ref: &RefSpec{TargetType: targetType, RefType: RefTypeObject}}
}

// IsRef reports whether the dtype is a reference.
func (d DType) IsRef() bool { return d.Ref != nil }

// IsZero reports whether the dtype is unset, so omitempty elides it.
func (d DType) IsZero() bool { return d.Name == "" && d.Ref == nil }

// String renders the dtype for log and CLI output.
func (d DType) String() string {
	if d.Ref != nil {
		return fmt.Sprintf("%s reference to %s", d.Ref.RefType, d.Ref.TargetType)
	}
	return d.Name
}

// MarshalYAML emits a scalar name or a reference mapping.
func (d DType) MarshalYAML() (interface{}, error) {
	if d.Ref != nil {
		return d.Ref, nil
	}
	return d.Name, nil
}

// UnmarshalYAML accepts either form of the dialect.
func (d *DType) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		d.Ref = nil
		return node.Decode(&d.Name)
	case yaml.MappingNode:
		d.Name = ""
		d.Ref = &RefSpec{}
		return node.Decode(d.Ref)
	default:
		return fmt.Errorf("line %d: dtype must be a scalar type name or a reference mapping", node.Line)
	}
}
