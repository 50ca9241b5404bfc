package ogen

import "github.com/catalystneuro/ndx-patterned-ogen/pkg/schema"

// Stimulus pattern containers. All of them extend LabMetaData so they can be
// stored in the file's lab metadata and referenced from the stimulus table.

func stimulus2DPattern() schema.Group {
	return schema.Group{
		NeurodataTypeDef: TypeOptogeneticStimulus2DPattern,
		NeurodataTypeInc: "LabMetaData",
		Doc:              "Container to store the spatial information about a generic 2D optogenetic stimulus pattern.",
		Attributes: []schema.Attribute{
			descriptionAttribute("Scanning or scanless method for shaping optogenetic light, e.g. diffraction limited points, disks."),
			{
				Name:  "sweep_size",
				DType: schema.Scalar("numeric"),
				Doc: "Size of the scanning sweep pattern in micrometers. If a scalar is provided, the sweep " +
					"pattern is assumed to be a circle with diameter 'sweep_size'. If 'sweep_size' is a " +
					"two-dimensional array, the sweep pattern is assumed to be a rectangle with dimensions " +
					"[width, height].",
				Required: schema.Optional(),
			},
		},
		Datasets: []schema.Dataset{
			{
				Name:  "sweep_mask",
				DType: schema.Scalar("numeric"),
				Dims:  schema.DimNames("width", "height"),
				Shape: schema.ShapeOf(schema.AnySize, schema.AnySize),
				Doc: "Scanning sweep pattern designated using a mask of size [width, height], where for a " +
					"given pixel a value of 1 indicates stimulation and a value of 0 indicates no stimulation.",
				Quantity: schema.QuantityOptional,
			},
		},
	}
}

func stimulus3DPattern() schema.Group {
	return schema.Group{
		NeurodataTypeDef: TypeOptogeneticStimulus3DPattern,
		NeurodataTypeInc: "LabMetaData",
		Doc:              "Container to store the spatial information about a generic 3D optogenetic stimulus pattern.",
		Attributes: []schema.Attribute{
			descriptionAttribute("Scanning or scanless method for shaping optogenetic light, e.g. 3D shot, disks."),
			{
				Name:  "sweep_size",
				DType: schema.Scalar("numeric"),
				Doc: "Size of the scanning sweep pattern in micrometers. If a scalar is provided, the sweep " +
					"pattern is assumed to be a cylinder with diameter 'sweep_size'. If 'sweep_size' is a " +
					"three-dimensional array, the sweep pattern is assumed to be a cuboid with dimensions " +
					"[width, height, depth].",
				Required: schema.Optional(),
			},
		},
		Datasets: []schema.Dataset{
			{
				Name:  "sweep_mask",
				DType: schema.Scalar("numeric"),
				Dims:  schema.DimNames("width", "height", "depth"),
				Shape: schema.ShapeOf(schema.AnySize, schema.AnySize, schema.AnySize),
				Doc: "Scanning sweep pattern designated using a mask of size [width, height, depth], where " +
					"for a given voxel a value of 1 indicates stimulation and a value of 0 indicates no " +
					"stimulation.",
				Quantity: schema.QuantityOptional,
			},
		},
	}
}

func spiralScanning() schema.Group {
	return schema.Group{
		NeurodataTypeDef: TypeSpiralScanning,
		NeurodataTypeInc: "LabMetaData",
		Doc:              "Container to store the parameters defining a spiral scanning pattern.",
		Attributes: []schema.Attribute{
			descriptionAttribute("Description of the scanning pattern."),
			{
				Name:  "diameter",
				DType: schema.Scalar("numeric"),
				Doc:   "Spiral diameter of each sweep, in micrometers.",
			},
			{
				Name:  "height",
				DType: schema.Scalar("numeric"),
				Doc:   "Spiral height of each sweep, in micrometers.",
			},
			{
				Name:  "number_of_revolutions",
				DType: schema.Scalar("numeric"),
				Doc:   "Number of turns within a spiral.",
			},
		},
	}
}

func temporalFocusing() schema.Group {
	return schema.Group{
		NeurodataTypeDef: TypeTemporalFocusing,
		NeurodataTypeInc: "LabMetaData",
		Doc:              "Container to store the parameters defining a temporal focusing beam-shaping.",
		Attributes: []schema.Attribute{
			descriptionAttribute("Description of the temporal focusing beam-shaping."),
			{
				Name:  "lateral_point_spread_function",
				DType: schema.Scalar("text"),
				Doc:   "Estimated lateral spatial profile or point spread function, expressed as mean [um] +/- s.d [um].",
			},
			{
				Name:  "axial_point_spread_function",
				DType: schema.Scalar("text"),
				Doc:   "Estimated axial spatial profile or point spread function, expressed as mean [um] +/- s.d [um].",
			},
		},
	}
}

func descriptionAttribute(doc string) schema.Attribute {
	return schema.Attribute{
		Name:  "description",
		DType: schema.Scalar("text"),
		Doc:   doc,
	}
}
