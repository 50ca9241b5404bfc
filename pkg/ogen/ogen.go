// Package ogen declares the ndx-patterned-ogen extension: the namespace and
// the type definitions for patterned (holographic) optogenetic stimulation
// metadata. The committed documents under spec/ are exported from this
// package and must stay equivalent to it.
package ogen

import (
	"github.com/catalystneuro/ndx-patterned-ogen/pkg/registry"
	"github.com/catalystneuro/ndx-patterned-ogen/pkg/schema"
)

// Namespace identity.
const (
	NamespaceName = "ndx-patterned-ogen"
	Version       = "0.1.0"
	FullName      = "Patterned optogenetic stimulation extension"
)

// Type names defined by the extension.
const (
	TypeOptogeneticStimulus2DPattern      = "OptogeneticStimulus2DPattern"
	TypeOptogeneticStimulus3DPattern      = "OptogeneticStimulus3DPattern"
	TypeSpiralScanning                    = "SpiralScanning"
	TypeTemporalFocusing                  = "TemporalFocusing"
	TypeSpatialLightModulator2D           = "SpatialLightModulator2D"
	TypeSpatialLightModulator3D           = "SpatialLightModulator3D"
	TypeLightSource                       = "LightSource"
	TypePatternedOptogeneticStimulusSite  = "PatternedOptogeneticStimulusSite"
	TypeOptogeneticStimulusTarget         = "OptogeneticStimulusTarget"
	TypePatternedOptogeneticStimulusTable = "PatternedOptogeneticStimulusTable"
)

// Namespace returns the extension's namespace declaration, including the
// base-vocabulary imports and the schema source reference.
func Namespace() schema.Namespace {
	return schema.Namespace{
		Name:     NamespaceName,
		FullName: FullName,
		Version:  Version,
		Doc: "Extension for storing the metadata of patterned optogenetic stimulation: stimulus " +
			"patterns, light sources, spatial light modulator devices, stimulus sites, targeted " +
			"ROIs, and a stimulus interval table.",
		Author:  []string{"Alessandra Trapani", "Luiz Tauffer"},
		Contact: []string{"alessandra.trapani@catalystneuro.com", "luiz.tauffer@catalystneuro.com"},
		Schema: []schema.SchemaRef{
			{
				Namespace: registry.CoreNamespace,
				NeurodataTypes: []string{
					"Device",
					"LabMetaData",
					"OptogeneticStimulusSite",
					"TimeIntervals",
				},
			},
			{
				Namespace: registry.HDMFCommonNamespace,
				NeurodataTypes: []string{
					"DynamicTableRegion",
					"VectorData",
				},
			},
			{Source: NamespaceName + ".extensions.yaml"},
		},
	}
}

// Groups returns every type definition of the extension, in the order they
// are written to the extensions document.
func Groups() []schema.Group {
	return []schema.Group{
		stimulus2DPattern(),
		stimulus3DPattern(),
		spiralScanning(),
		temporalFocusing(),
		spatialLightModulator2D(),
		spatialLightModulator3D(),
		lightSource(),
		stimulusSite(),
		stimulusTarget(),
		stimulusTable(),
	}
}

// Document assembles the full extension document.
func Document() *schema.Document {
	return &schema.Document{
		Namespace: Namespace(),
		Groups:    Groups(),
	}
}
