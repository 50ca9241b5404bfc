// Package validate checks extension schema documents for the structural
// mistakes the external generator would otherwise reject: duplicate type
// names, unresolved parents and targets, and inconsistent dims/shape
// declarations.
package validate

import (
	"fmt"

	"github.com/catalystneuro/ndx-patterned-ogen/pkg/registry"
	"github.com/catalystneuro/ndx-patterned-ogen/pkg/schema"
)

// Issue codes.
const (
	CodeDuplicateType    = "dup-type"
	CodeDuplicateMember  = "dup-member"
	CodeUnknownParent    = "unknown-parent"
	CodeUnknownTarget    = "unknown-target"
	CodeUnknownDType     = "unknown-dtype"
	CodeShapeRank        = "shape-rank"
	CodeMissingDoc       = "missing-doc"
	CodeNamespaceImport  = "namespace-import"
	CodeUntypedGroup     = "untyped-group"
	CodeInvalidReference = "invalid-reference"
)

// Validator checks documents against a registry of known types.
type Validator struct {
	registry *registry.Registry
}

// New returns a validator resolving parents and targets against reg.
func New(reg *registry.Registry) *Validator {
	return &Validator{registry: reg}
}

// Document validates a loaded document and returns the full report. The
// document itself is not modified.
func (v *Validator) Document(doc *schema.Document) *Report {
	report := NewReport(doc.Namespace.Name)

	defined := make(map[string]bool)
	for _, name := range doc.TypeNames() {
		if defined[name] {
			report.Errorf(CodeDuplicateType, name, "type %s defined more than once", name)
		}
		defined[name] = true
	}

	resolve := func(name string) bool {
		if defined[name] {
			return true
		}
		_, ok := v.registry.Resolve(name)
		return ok
	}

	for namespace, types := range doc.Namespace.ImportedTypes() {
		for _, name := range types {
			ns, ok := v.registry.Resolve(name)
			if !ok {
				report.Warnf(CodeNamespaceImport, doc.Namespace.Name,
					"imported type %s is not in the known %s vocabulary", name, namespace)
			} else if ns != namespace {
				report.Warnf(CodeNamespaceImport, doc.Namespace.Name,
					"imported type %s belongs to namespace %s, not %s", name, ns, namespace)
			}
		}
	}

	for _, g := range doc.Groups {
		if g.NeurodataTypeDef == "" {
			report.Errorf(CodeUntypedGroup, g.TypeName(), "top-level group must declare neurodata_type_def")
			continue
		}
		v.group(report, g, g.NeurodataTypeDef, true, resolve)
	}
	for _, ds := range doc.Datasets {
		if ds.NeurodataTypeDef == "" {
			report.Errorf(CodeUntypedGroup, ds.Name, "top-level dataset must declare neurodata_type_def")
			continue
		}
		v.dataset(report, ds, ds.NeurodataTypeDef, true, resolve)
	}

	return report
}

func (v *Validator) group(report *Report, g schema.Group, path string, topLevel bool, resolve func(string) bool) {
	if topLevel {
		if g.NeurodataTypeInc == "" {
			report.Errorf(CodeUnknownParent, path, "type %s declares no parent type", g.NeurodataTypeDef)
		} else if !resolve(g.NeurodataTypeInc) {
			report.Errorf(CodeUnknownParent, path, "parent type %s does not resolve", g.NeurodataTypeInc)
		}
	} else if g.NeurodataTypeInc != "" && !resolve(g.NeurodataTypeInc) {
		report.Errorf(CodeUnknownParent, path, "included type %s does not resolve", g.NeurodataTypeInc)
	}
	if g.Doc == "" {
		report.Warnf(CodeMissingDoc, path, "missing doc string")
	}

	seen := make(map[string]string)
	member := func(kind, name string) {
		if name == "" {
			return
		}
		if prev, ok := seen[name]; ok {
			report.Errorf(CodeDuplicateMember, path+"/"+name, "%s %s collides with %s of the same name", kind, name, prev)
		}
		seen[name] = kind
	}

	for _, a := range g.Attributes {
		member("attribute", a.Name)
		v.attribute(report, a, path+"/"+a.Name, resolve)
	}
	for _, ds := range g.Datasets {
		name := ds.Name
		if name == "" {
			name = ds.NeurodataTypeInc
		}
		member("dataset", name)
		v.dataset(report, ds, path+"/"+name, false, resolve)
	}
	for _, l := range g.Links {
		member("link", l.Name)
		if l.TargetType == "" {
			report.Errorf(CodeUnknownTarget, path+"/"+l.Name, "link declares no target_type")
		} else if !resolve(l.TargetType) {
			report.Errorf(CodeUnknownTarget, path+"/"+l.Name, "link target type %s does not resolve", l.TargetType)
		}
		if l.Doc == "" {
			report.Warnf(CodeMissingDoc, path+"/"+l.Name, "missing doc string")
		}
	}
	for _, sub := range g.Groups {
		name := sub.Name
		if name == "" {
			name = sub.TypeName()
		}
		member("group", name)
		v.group(report, sub, path+"/"+name, false, resolve)
	}
}

func (v *Validator) dataset(report *Report, ds schema.Dataset, path string, topLevel bool, resolve func(string) bool) {
	if topLevel {
		if ds.NeurodataTypeInc == "" {
			report.Errorf(CodeUnknownParent, path, "type %s declares no parent type", ds.NeurodataTypeDef)
		} else if !resolve(ds.NeurodataTypeInc) {
			report.Errorf(CodeUnknownParent, path, "parent type %s does not resolve", ds.NeurodataTypeInc)
		}
	} else if ds.NeurodataTypeInc != "" && !resolve(ds.NeurodataTypeInc) {
		report.Errorf(CodeUnknownParent, path, "included type %s does not resolve", ds.NeurodataTypeInc)
	}
	if ds.Doc == "" {
		report.Warnf(CodeMissingDoc, path, "missing doc string")
	}
	v.dtype(report, ds.DType, path, resolve)
	v.dimsShape(report, ds.Dims, ds.Shape, path)

	seen := make(map[string]bool)
	for _, a := range ds.Attributes {
		if seen[a.Name] {
			report.Errorf(CodeDuplicateMember, path+"/"+a.Name, "attribute %s declared more than once", a.Name)
		}
		seen[a.Name] = true
		v.attribute(report, a, path+"/"+a.Name, resolve)
	}
}

func (v *Validator) attribute(report *Report, a schema.Attribute, path string, resolve func(string) bool) {
	if a.Name == "" {
		report.Errorf(CodeDuplicateMember, path, "attribute declares no name")
	}
	if a.Doc == "" {
		report.Warnf(CodeMissingDoc, path, "missing doc string")
	}
	v.dtype(report, a.DType, path, resolve)
	v.dimsShape(report, a.Dims, a.Shape, path)
}

func (v *Validator) dtype(report *Report, d schema.DType, path string, resolve func(string) bool) {
	if d.IsZero() {
		return
	}
	if d.Ref != nil {
		if d.Ref.RefType != schema.RefTypeObject {
			report.Errorf(CodeInvalidReference, path, "unsupported reftype %q", d.Ref.RefType)
		}
		if d.Ref.TargetType == "" {
			report.Errorf(CodeUnknownTarget, path, "reference dtype declares no target_type")
		} else if !resolve(d.Ref.TargetType) {
			report.Errorf(CodeUnknownTarget, path, "reference target type %s does not resolve", d.Ref.TargetType)
		}
		return
	}
	if !schema.KnownScalarDType(d.Name) {
		report.Warnf(CodeUnknownDType, path, "unknown scalar dtype %q", d.Name)
	}
}

func (v *Validator) dimsShape(report *Report, dims schema.Dims, shape schema.Shape, path string) {
	if len(dims) == 0 && len(shape) == 0 {
		return
	}
	if len(dims) == 0 {
		report.Errorf(CodeShapeRank, path, "shape declared without dims")
		return
	}
	if len(shape) == 0 {
		report.Errorf(CodeShapeRank, path, "dims declared without shape")
		return
	}
	if len(dims) != len(shape) {
		report.Errorf(CodeShapeRank, path, "dims declares %d alternatives, shape declares %d", len(dims), len(shape))
		return
	}
	for i := range dims {
		if len(dims[i]) != len(shape[i]) {
			report.Errorf(CodeShapeRank, path,
				"alternative %d: dims rank %d does not match shape rank %d", i, len(dims[i]), len(shape[i]))
		}
	}
}

// Files loads the namespace document at each path and validates it,
// returning one report per path. A document that fails to load yields a
// report carrying a single load error.
func (v *Validator) Files(paths ...string) []*Report {
	reports := make([]*Report, 0, len(paths))
	for _, path := range paths {
		doc, err := schema.LoadDocument(path)
		if err != nil {
			report := NewReport(path)
			report.Errorf("load", path, "%v", err)
			reports = append(reports, report)
			continue
		}
		report := v.Document(doc)
		report.Source = path
		reports = append(reports, report)
	}
	return reports
}

// Err folds a set of reports into a single error, nil when all pass.
func Err(reports []*Report) error {
	failed := 0
	for _, r := range reports {
		if r.HasErrors() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(reports))
	}
	return nil
}
