package ogen

import "github.com/catalystneuro/ndx-patterned-ogen/pkg/schema"

func stimulusSite() schema.Group {
	return schema.Group{
		NeurodataTypeDef: TypePatternedOptogeneticStimulusSite,
		NeurodataTypeInc: "OptogeneticStimulusSite",
		Doc:              "Patterned optogenetic stimulus site.",
		Attributes: []schema.Attribute{
			{
				Name:     "effector",
				DType:    schema.Scalar("text"),
				Doc:      "Light-activated effector protein expressed by the targeted cell, e.g. ChR2.",
				Required: schema.Optional(),
			},
		},
		Links: []schema.Link{
			{
				Name:       "spatial_light_modulator",
				TargetType: "Device",
				Doc:        "Spatial light modulator used to generate the holographic pattern.",
				Quantity:   schema.QuantityOptional,
			},
			{
				Name:       "light_source",
				TargetType: TypeLightSource,
				Doc:        "Light source used to apply photostimulation.",
				Quantity:   schema.QuantityOptional,
			},
		},
	}
}

func stimulusTarget() schema.Group {
	return schema.Group{
		NeurodataTypeDef: TypeOptogeneticStimulusTarget,
		NeurodataTypeInc: "LabMetaData",
		Doc:              "Container to store the targeted ROIs of a photostimulation experiment.",
		Datasets: []schema.Dataset{
			{
				Name:             "targeted_rois",
				NeurodataTypeInc: "DynamicTableRegion",
				Doc:              "A table region referencing the ROIs that were targeted for photostimulation.",
			},
			{
				Name:             "segmented_rois",
				NeurodataTypeInc: "DynamicTableRegion",
				Doc: "A table region referencing the ROIs segmented after photostimulation. May differ " +
					"from targeted_rois when not every targeted ROI responded.",
				Quantity: schema.QuantityOptional,
			},
		},
	}
}
