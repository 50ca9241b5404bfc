package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Document is a fully loaded extension: the namespace declaration together
// with the type definitions from all of its schema sources.
type Document struct {
	Namespace Namespace
	Groups    []Group
	Datasets  []Dataset
}

// LoadDocument loads a namespace file and every schema source it references,
// resolved relative to the namespace file's directory. A namespace file
// declaring more than one namespace is rejected; extension files in the wild
// declare exactly one.
func LoadDocument(namespacePath string) (*Document, error) {
	file, err := LoadNamespaceFile(namespacePath)
	if err != nil {
		return nil, err
	}
	if len(file.Namespaces) > 1 {
		return nil, fmt.Errorf("namespace file %s declares %d namespaces, want 1", namespacePath, len(file.Namespaces))
	}

	doc := &Document{Namespace: file.Namespaces[0]}
	dir := filepath.Dir(namespacePath)
	for _, source := range doc.Namespace.Sources() {
		ext, err := LoadExtensionsFile(filepath.Join(dir, source))
		if err != nil {
			return nil, fmt.Errorf("failed to load schema source %s: %w", source, err)
		}
		doc.Groups = append(doc.Groups, ext.Groups...)
		doc.Datasets = append(doc.Datasets, ext.Datasets...)
	}
	return doc, nil
}

// NamespaceFileName returns the conventional file name for the namespace
// document, e.g. "ndx-patterned-ogen.namespace.yaml".
func (d *Document) NamespaceFileName() string {
	return d.Namespace.Name + ".namespace.yaml"
}

// ExtensionsFileName returns the conventional file name for the definitions
// document, e.g. "ndx-patterned-ogen.extensions.yaml".
func (d *Document) ExtensionsFileName() string {
	return d.Namespace.Name + ".extensions.yaml"
}

// Save writes the namespace and extensions documents into dir using the
// conventional file names.
func (d *Document) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	nsData, err := yaml.Marshal(NamespaceFile{Namespaces: []Namespace{d.Namespace}})
	if err != nil {
		return fmt.Errorf("failed to serialize namespace: %w", err)
	}
	extData, err := yaml.Marshal(ExtensionsFile{Groups: d.Groups, Datasets: d.Datasets})
	if err != nil {
		return fmt.Errorf("failed to serialize extensions: %w", err)
	}

	nsPath := filepath.Join(dir, d.NamespaceFileName())
	if err := os.WriteFile(nsPath, nsData, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", nsPath, err)
	}
	extPath := filepath.Join(dir, d.ExtensionsFileName())
	if err := os.WriteFile(extPath, extData, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", extPath, err)
	}
	return nil
}

// Type returns the group defining the named type, or nil.
func (d *Document) Type(name string) *Group {
	for i := range d.Groups {
		if d.Groups[i].NeurodataTypeDef == name {
			return &d.Groups[i]
		}
	}
	return nil
}

// TypeNames lists the type names defined by the document, in declaration
// order, duplicates included.
func (d *Document) TypeNames() []string {
	names := make([]string, 0, len(d.Groups)+len(d.Datasets))
	for _, g := range d.Groups {
		if g.NeurodataTypeDef != "" {
			names = append(names, g.NeurodataTypeDef)
		}
	}
	for _, ds := range d.Datasets {
		if ds.NeurodataTypeDef != "" {
			names = append(names, ds.NeurodataTypeDef)
		}
	}
	return names
}
