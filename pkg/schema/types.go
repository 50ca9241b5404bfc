package schema

// Attribute is a scalar or small fixed-shape field attached to a group or
// dataset. Attributes are required unless declared otherwise.
type Attribute struct {
	Name     string `yaml:"name"`
	DType    DType  `yaml:"dtype,omitempty"`
	Dims     Dims   `yaml:"dims,omitempty"`
	Shape    Shape  `yaml:"shape,omitempty"`
	Doc      string `yaml:"doc,omitempty"`
	Required *bool  `yaml:"required,omitempty"`
}

// IsRequired reports whether the attribute must be present in conforming
// data. Absent means required.
func (a Attribute) IsRequired() bool { return a.Required == nil || *a.Required }

// Dataset is a named, potentially large, array-like member of a group. A
// dataset may itself define or include a neurodata type (table columns, for
// example, include VectorData).
type Dataset struct {
	Name             string      `yaml:"name,omitempty"`
	NeurodataTypeDef string      `yaml:"neurodata_type_def,omitempty"`
	NeurodataTypeInc string      `yaml:"neurodata_type_inc,omitempty"`
	DType            DType       `yaml:"dtype,omitempty"`
	Dims             Dims        `yaml:"dims,omitempty"`
	Shape            Shape       `yaml:"shape,omitempty"`
	Doc              string      `yaml:"doc,omitempty"`
	Quantity         Quantity    `yaml:"quantity,omitempty"`
	Attributes       []Attribute `yaml:"attributes,omitempty"`
}

// Link is a typed reference from one group to an instance of another type
// stored elsewhere in the file.
type Link struct {
	Name       string   `yaml:"name,omitempty"`
	TargetType string   `yaml:"target_type"`
	Doc        string   `yaml:"doc,omitempty"`
	Quantity   Quantity `yaml:"quantity,omitempty"`
}

// Group is a type definition (when NeurodataTypeDef is set) or an inclusion
// of an existing type within a parent group.
type Group struct {
	NeurodataTypeDef string      `yaml:"neurodata_type_def,omitempty"`
	NeurodataTypeInc string      `yaml:"neurodata_type_inc,omitempty"`
	Name             string      `yaml:"name,omitempty"`
	DefaultName      string      `yaml:"default_name,omitempty"`
	Doc              string      `yaml:"doc,omitempty"`
	Quantity         Quantity    `yaml:"quantity,omitempty"`
	Attributes       []Attribute `yaml:"attributes,omitempty"`
	Datasets         []Dataset   `yaml:"datasets,omitempty"`
	Groups           []Group     `yaml:"groups,omitempty"`
	Links            []Link      `yaml:"links,omitempty"`
}

// TypeName returns the name this group defines or includes.
func (g Group) TypeName() string {
	if g.NeurodataTypeDef != "" {
		return g.NeurodataTypeDef
	}
	return g.NeurodataTypeInc
}

// Attribute returns the named attribute, or nil.
func (g Group) Attribute(name string) *Attribute {
	for i := range g.Attributes {
		if g.Attributes[i].Name == name {
			return &g.Attributes[i]
		}
	}
	return nil
}

// Dataset returns the named dataset, or nil.
func (g Group) Dataset(name string) *Dataset {
	for i := range g.Datasets {
		if g.Datasets[i].Name == name {
			return &g.Datasets[i]
		}
	}
	return nil
}

// Link returns the named link, or nil.
func (g Group) Link(name string) *Link {
	for i := range g.Links {
		if g.Links[i].Name == name {
			return &g.Links[i]
		}
	}
	return nil
}

// Optional is a convenience for attributes declared `required: false`.
func Optional() *bool {
	v := false
	return &v
}
