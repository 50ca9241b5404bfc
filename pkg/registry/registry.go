// Package registry resolves neurodata type names to the namespace that
// defines them. A registry seeded with the base vocabulary answers parent
// and link-target lookups during validation.
package registry

import (
	"fmt"
	"sort"

	"github.com/catalystneuro/ndx-patterned-ogen/pkg/schema"
)

// Core and hdmf-common namespace names as they appear in schema includes.
const (
	CoreNamespace       = "core"
	HDMFCommonNamespace = "hdmf-common"
)

// baseVocabulary lists the base data-model types extension schemas extend
// and reference. It is not the full standard, only the surface extensions
// build on.
var baseVocabulary = map[string]string{
	"NWBContainer":            CoreNamespace,
	"NWBDataInterface":        CoreNamespace,
	"NWBData":                 CoreNamespace,
	"Device":                  CoreNamespace,
	"LabMetaData":             CoreNamespace,
	"OptogeneticStimulusSite": CoreNamespace,
	"OptogeneticSeries":       CoreNamespace,
	"TimeSeries":              CoreNamespace,
	"TimeIntervals":           CoreNamespace,
	"ImagingPlane":            CoreNamespace,
	"PlaneSegmentation":       CoreNamespace,

	"Container":          HDMFCommonNamespace,
	"Data":               HDMFCommonNamespace,
	"DynamicTable":       HDMFCommonNamespace,
	"DynamicTableRegion": HDMFCommonNamespace,
	"VectorData":         HDMFCommonNamespace,
	"VectorIndex":        HDMFCommonNamespace,
	"ElementIdentifiers": HDMFCommonNamespace,
}

// Registry maps type names to defining namespaces.
type Registry struct {
	types map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{types: make(map[string]string)}
}

// Base returns a registry preloaded with the base data-model vocabulary.
func Base() *Registry {
	r := New()
	for name, ns := range baseVocabulary {
		r.types[name] = ns
	}
	return r
}

// Register records a type as defined by the given namespace. Registering a
// name that already resolves is an error, whichever namespace defined it.
func (r *Registry) Register(namespace, typeName string) error {
	if typeName == "" {
		return fmt.Errorf("cannot register an empty type name in namespace %s", namespace)
	}
	if existing, ok := r.types[typeName]; ok {
		return fmt.Errorf("type %s already defined by namespace %s", typeName, existing)
	}
	r.types[typeName] = namespace
	return nil
}

// AddDocument registers every type a document defines.
func (r *Registry) AddDocument(doc *schema.Document) error {
	for _, name := range doc.TypeNames() {
		if err := r.Register(doc.Namespace.Name, name); err != nil {
			return fmt.Errorf("failed to register types of %s: %w", doc.Namespace.Name, err)
		}
	}
	return nil
}

// Resolve returns the namespace defining the named type.
func (r *Registry) Resolve(typeName string) (string, bool) {
	ns, ok := r.types[typeName]
	return ns, ok
}

// Types returns every registered type name, sorted.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered types.
func (r *Registry) Len() int { return len(r.types) }
