package ogen

import "github.com/catalystneuro/ndx-patterned-ogen/pkg/schema"

// Device types. Description and manufacturer are inherited from the base
// Device type; only the extension's own attributes are declared.

func spatialLightModulator2D() schema.Group {
	return schema.Group{
		NeurodataTypeDef: TypeSpatialLightModulator2D,
		NeurodataTypeInc: "Device",
		Doc:              "2D spatial light modulator used to generate holographic photostimulation patterns.",
		Attributes: []schema.Attribute{
			{
				Name:  "model",
				DType: schema.Scalar("text"),
				Doc:   "Model of the spatial light modulator.",
			},
			{
				Name:     "spatial_resolution",
				DType:    schema.Scalar("numeric"),
				Dims:     schema.DimNames("width, height"),
				Shape:    schema.ShapeOf(schema.FixedSize(2)),
				Doc:      "Resolution of the spatial light modulator (in pixels), formatted as [width, height].",
				Required: schema.Optional(),
			},
		},
	}
}

func spatialLightModulator3D() schema.Group {
	return schema.Group{
		NeurodataTypeDef: TypeSpatialLightModulator3D,
		NeurodataTypeInc: "Device",
		Doc:              "3D spatial light modulator used to generate holographic photostimulation patterns.",
		Attributes: []schema.Attribute{
			{
				Name:  "model",
				DType: schema.Scalar("text"),
				Doc:   "Model of the spatial light modulator.",
			},
			{
				Name:     "spatial_resolution",
				DType:    schema.Scalar("numeric"),
				Dims:     schema.DimNames("width, height, depth"),
				Shape:    schema.ShapeOf(schema.FixedSize(3)),
				Doc:      "Resolution of the spatial light modulator (in pixels), formatted as [width, height, depth].",
				Required: schema.Optional(),
			},
		},
	}
}

func lightSource() schema.Group {
	return schema.Group{
		NeurodataTypeDef: TypeLightSource,
		NeurodataTypeInc: "Device",
		Doc:              "Light source used to apply photostimulation.",
		Attributes: []schema.Attribute{
			{
				Name:     "model",
				DType:    schema.Scalar("text"),
				Doc:      "Model of the light source device.",
				Required: schema.Optional(),
			},
			{
				Name:     "stimulation_wavelength",
				DType:    schema.Scalar("numeric"),
				Doc:      "Excitation wavelength of stimulation light, in nanometers.",
				Required: schema.Optional(),
			},
			{
				Name:     "filter_description",
				DType:    schema.Scalar("text"),
				Doc:      "Filter used to obtain the excitation wavelength of stimulation light, e.g. a short pass at 1040 nm.",
				Required: schema.Optional(),
			},
			{
				Name:     "peak_power",
				DType:    schema.Scalar("numeric"),
				Doc:      "Incident power of the stimulation device, in Watts.",
				Required: schema.Optional(),
			},
			{
				Name:     "peak_pulse_energy",
				DType:    schema.Scalar("numeric"),
				Doc:      "If the device is a pulsed laser, pulse energy in Joules.",
				Required: schema.Optional(),
			},
			{
				Name:     "intensity",
				DType:    schema.Scalar("numeric"),
				Doc:      "Intensity of the excitation in W/mm^2, if known.",
				Required: schema.Optional(),
			},
			{
				Name:     "exposure_time",
				DType:    schema.Scalar("numeric"),
				Doc:      "Exposure time of the sample, in seconds.",
				Required: schema.Optional(),
			},
			{
				Name:     "pulse_rate",
				DType:    schema.Scalar("numeric"),
				Doc:      "If the device is a pulsed laser, pulse rate (in Hz) used for stimulation.",
				Required: schema.Optional(),
			},
		},
	}
}
