package schema

// Structural equivalence for round-trip checks. Equivalence normalizes the
// dialect's defaults: an absent required flag equals an explicit true, and
// an absent quantity equals 1. Member order is significant, matching how
// the documents are authored and emitted.

// EquivalentDocuments reports whether two documents declare the same
// namespace and the same type definitions.
func EquivalentDocuments(a, b *Document) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !EquivalentNamespaces(a.Namespace, b.Namespace) {
		return false
	}
	if len(a.Groups) != len(b.Groups) || len(a.Datasets) != len(b.Datasets) {
		return false
	}
	for i := range a.Groups {
		if !EquivalentGroups(a.Groups[i], b.Groups[i]) {
			return false
		}
	}
	for i := range a.Datasets {
		if !EquivalentDatasets(a.Datasets[i], b.Datasets[i]) {
			return false
		}
	}
	return true
}

// EquivalentNamespaces compares namespace declarations field by field.
func EquivalentNamespaces(a, b Namespace) bool {
	if a.Name != b.Name || a.FullName != b.FullName || a.Version != b.Version || a.Doc != b.Doc {
		return false
	}
	if !equalStrings(a.Author, b.Author) || !equalStrings(a.Contact, b.Contact) {
		return false
	}
	if len(a.Schema) != len(b.Schema) {
		return false
	}
	for i := range a.Schema {
		if a.Schema[i].Source != b.Schema[i].Source || a.Schema[i].Namespace != b.Schema[i].Namespace {
			return false
		}
		if !equalStrings(a.Schema[i].NeurodataTypes, b.Schema[i].NeurodataTypes) {
			return false
		}
	}
	return true
}

// EquivalentGroups compares two group declarations, members included.
func EquivalentGroups(a, b Group) bool {
	if a.NeurodataTypeDef != b.NeurodataTypeDef || a.NeurodataTypeInc != b.NeurodataTypeInc {
		return false
	}
	if a.Name != b.Name || a.DefaultName != b.DefaultName || a.Doc != b.Doc {
		return false
	}
	if !equivalentQuantities(a.Quantity, b.Quantity) {
		return false
	}
	if len(a.Attributes) != len(b.Attributes) || len(a.Datasets) != len(b.Datasets) ||
		len(a.Groups) != len(b.Groups) || len(a.Links) != len(b.Links) {
		return false
	}
	for i := range a.Attributes {
		if !EquivalentAttributes(a.Attributes[i], b.Attributes[i]) {
			return false
		}
	}
	for i := range a.Datasets {
		if !EquivalentDatasets(a.Datasets[i], b.Datasets[i]) {
			return false
		}
	}
	for i := range a.Groups {
		if !EquivalentGroups(a.Groups[i], b.Groups[i]) {
			return false
		}
	}
	for i := range a.Links {
		if !EquivalentLinks(a.Links[i], b.Links[i]) {
			return false
		}
	}
	return true
}

// EquivalentDatasets compares two dataset declarations.
func EquivalentDatasets(a, b Dataset) bool {
	if a.Name != b.Name || a.NeurodataTypeDef != b.NeurodataTypeDef || a.NeurodataTypeInc != b.NeurodataTypeInc {
		return false
	}
	if a.Doc != b.Doc || !equivalentQuantities(a.Quantity, b.Quantity) {
		return false
	}
	if !EquivalentDTypes(a.DType, b.DType) || !equalDims(a.Dims, b.Dims) || !equalShapes(a.Shape, b.Shape) {
		return false
	}
	if len(a.Attributes) != len(b.Attributes) {
		return false
	}
	for i := range a.Attributes {
		if !EquivalentAttributes(a.Attributes[i], b.Attributes[i]) {
			return false
		}
	}
	return true
}

// EquivalentAttributes compares two attribute declarations, treating an
// absent required flag as true.
func EquivalentAttributes(a, b Attribute) bool {
	if a.Name != b.Name || a.Doc != b.Doc || a.IsRequired() != b.IsRequired() {
		return false
	}
	return EquivalentDTypes(a.DType, b.DType) && equalDims(a.Dims, b.Dims) && equalShapes(a.Shape, b.Shape)
}

// EquivalentLinks compares two link declarations.
func EquivalentLinks(a, b Link) bool {
	return a.Name == b.Name && a.TargetType == b.TargetType && a.Doc == b.Doc &&
		equivalentQuantities(a.Quantity, b.Quantity)
}

// EquivalentDTypes compares two dtypes.
func EquivalentDTypes(a, b DType) bool {
	if (a.Ref == nil) != (b.Ref == nil) {
		return false
	}
	if a.Ref != nil {
		return a.Ref.TargetType == b.Ref.TargetType && a.Ref.RefType == b.Ref.RefType
	}
	return a.Name == b.Name
}

func equivalentQuantities(a, b Quantity) bool {
	return a == b || (a.IsZero() && b.IsZero())
}

func equalDims(a, b Dims) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalStrings(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalShapes(a, b Shape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			av, bv := a[i][j], b[i][j]
			if (av == nil) != (bv == nil) {
				return false
			}
			if av != nil && *av != *bv {
				return false
			}
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
