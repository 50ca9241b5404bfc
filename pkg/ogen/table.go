package ogen

import "github.com/catalystneuro/ndx-patterned-ogen/pkg/schema"

// stimulusTable declares the interval table tying every stimulus onset to
// its power, pattern, targets, and site. start_time and stop_time columns
// are inherited from TimeIntervals.
func stimulusTable() schema.Group {
	return schema.Group{
		NeurodataTypeDef: TypePatternedOptogeneticStimulusTable,
		NeurodataTypeInc: "TimeIntervals",
		DefaultName:      "PatternedOptogeneticStimulusTable",
		Doc:              "Parameters corresponding to events of patterned optogenetic stimulation with indicated targeted ROIs.",
		Datasets: []schema.Dataset{
			{
				Name:             "power",
				NeurodataTypeInc: "VectorData",
				DType:            schema.Scalar("numeric"),
				Doc:              "Power (in Watts) applied to each target during patterned photostimulation.",
			},
			{
				Name:             "frequency",
				NeurodataTypeInc: "VectorData",
				DType:            schema.Scalar("numeric"),
				Doc:              "Frequency of stimulation if the stimulus delivered is pulsed, in Hz.",
				Quantity:         schema.QuantityOptional,
			},
			{
				Name:             "pulse_width",
				NeurodataTypeInc: "VectorData",
				DType:            schema.Scalar("numeric"),
				Doc:              "Pulse width of stimulation if the stimulus delivered is pulsed, in seconds/phase.",
				Quantity:         schema.QuantityOptional,
			},
			{
				Name:             "targets",
				NeurodataTypeInc: "VectorData",
				DType:            schema.ObjectRef(TypeOptogeneticStimulusTarget),
				Doc:              "Targeted ROIs for each stimulus onset.",
			},
			{
				Name:             "stimulus_pattern",
				NeurodataTypeInc: "VectorData",
				DType:            schema.ObjectRef("LabMetaData"),
				Doc:              "Stimulus pattern applied at each stimulus onset.",
			},
			{
				Name:             "stimulus_site",
				NeurodataTypeInc: "VectorData",
				DType:            schema.ObjectRef(TypePatternedOptogeneticStimulusSite),
				Doc:              "Stimulus site of each stimulus onset.",
			},
		},
	}
}
