package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Namespace declares an extension namespace: its identity, provenance, and
// the schema sources and imported types it is built from.
type Namespace struct {
	Name     string      `yaml:"name"`
	FullName string      `yaml:"full_name,omitempty"`
	Version  string      `yaml:"version"`
	Doc      string      `yaml:"doc,omitempty"`
	Author   []string    `yaml:"author,omitempty"`
	Contact  []string    `yaml:"contact,omitempty"`
	Schema   []SchemaRef `yaml:"schema"`
}

// SchemaRef is one entry of a namespace's schema list: either an import of
// named types from another namespace, or a source file of this namespace's
// own definitions.
type SchemaRef struct {
	Source         string   `yaml:"source,omitempty"`
	Namespace      string   `yaml:"namespace,omitempty"`
	NeurodataTypes []string `yaml:"neurodata_types,omitempty"`
}

// ImportedTypes collects the type names imported from other namespaces,
// keyed by namespace name.
func (n Namespace) ImportedTypes() map[string][]string {
	imports := make(map[string][]string)
	for _, ref := range n.Schema {
		if ref.Namespace != "" {
			imports[ref.Namespace] = append(imports[ref.Namespace], ref.NeurodataTypes...)
		}
	}
	return imports
}

// Sources collects the schema source files of this namespace.
func (n Namespace) Sources() []string {
	var sources []string
	for _, ref := range n.Schema {
		if ref.Source != "" {
			sources = append(sources, ref.Source)
		}
	}
	return sources
}

// NamespaceFile is the top-level structure of a *.namespace.yaml document.
type NamespaceFile struct {
	Namespaces []Namespace `yaml:"namespaces"`
}

// ExtensionsFile is the top-level structure of a *.extensions.yaml document:
// the type definitions themselves.
type ExtensionsFile struct {
	Groups   []Group   `yaml:"groups,omitempty"`
	Datasets []Dataset `yaml:"datasets,omitempty"`
}

// LoadNamespaceFile reads and parses a namespace document.
func LoadNamespaceFile(path string) (*NamespaceFile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- schema paths come from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read namespace file: %w", err)
	}
	var file NamespaceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse namespace file %s: %w", path, err)
	}
	if len(file.Namespaces) == 0 {
		return nil, fmt.Errorf("namespace file %s declares no namespaces", path)
	}
	return &file, nil
}

// LoadExtensionsFile reads and parses an extensions document.
func LoadExtensionsFile(path string) (*ExtensionsFile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- schema paths come from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read extensions file: %w", err)
	}
	var file ExtensionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse extensions file %s: %w", path, err)
	}
	return &file, nil
}
