package equipment

// builtinSpecs are the sheets printed in the hire brochure. Stored edits are
// layered on top of these.
var builtinSpecs = map[string][]Spec{
	// Telehandlers
	"manitou-mrt-2150-plus-360-roto": {
		{Label: "Max Lift Height", Value: "20.9 m"},
		{Label: "Max Lift Capacity", Value: "3,500 kg"},
		{Label: "Capacity at Max Height", Value: "1,000 kg"},
		{Label: "Engine", Value: "Deutz 74 kW"},
		{Label: "Drive", Value: "4WD"},
		{Label: "Width", Value: "2.35 m"},
		{Label: "Weight", Value: "14,100 kg"},
	},
	"merlo-roto-30-16": {
		{Label: "Max Lift Height", Value: "15.6 m"},
		{Label: "Max Lift Capacity", Value: "3,000 kg"},
		{Label: "Capacity at Max Height", Value: "1,200 kg"},
		{Label: "Engine", Value: "Perkins 74 kW"},
		{Label: "Drive", Value: "4WD"},
		{Label: "Width", Value: "2.25 m"},
		{Label: "Weight", Value: "10,800 kg"},
	},
	"manitou-mt-932-straight": {
		{Label: "Max Lift Height", Value: "8.6 m"},
		{Label: "Max Lift Capacity", Value: "3,200 kg"},
		{Label: "Capacity at Max Height", Value: "1,800 kg"},
		{Label: "Engine", Value: "Deutz 55 kW"},
		{Label: "Drive", Value: "4WD"},
		{Label: "Width", Value: "2.25 m"},
		{Label: "Weight", Value: "7,800 kg"},
	},
	"manitou-mt-1440-straight": {
		{Label: "Max Lift Height", Value: "13.5 m"},
		{Label: "Max Lift Capacity", Value: "4,000 kg"},
		{Label: "Capacity at Max Height", Value: "2,200 kg"},
		{Label: "Engine", Value: "Deutz 74 kW"},
		{Label: "Drive", Value: "4WD"},
		{Label: "Width", Value: "2.35 m"},
		{Label: "Weight", Value: "9,400 kg"},
	},

	// Access
	"genie-z-45-25j-diesel-boom": {
		{Label: "Platform Height", Value: "15.72 m"},
		{Label: "Horizontal Reach", Value: "7.72 m"},
		{Label: "Capacity", Value: "227 kg"},
		{Label: "Drive", Value: "4WD"},
		{Label: "Width", Value: "2.29 m"},
		{Label: "Weight", Value: "7,257 kg"},
		{Label: "Fuel", Value: "Diesel"},
	},
	"genie-z-60-37-diesel-boom": {
		{Label: "Platform Height", Value: "18.29 m"},
		{Label: "Horizontal Reach", Value: "11.27 m"},
		{Label: "Capacity", Value: "272 kg"},
		{Label: "Drive", Value: "4WD"},
		{Label: "Width", Value: "2.49 m"},
		{Label: "Weight", Value: "10,024 kg"},
		{Label: "Fuel", Value: "Diesel"},
	},
	"genie-s-65-diesel-boom": {
		{Label: "Platform Height", Value: "20.17 m"},
		{Label: "Horizontal Reach", Value: "16.76 m"},
		{Label: "Capacity", Value: "272 kg"},
		{Label: "Drive", Value: "4WD"},
		{Label: "Width", Value: "2.49 m"},
		{Label: "Weight", Value: "11,340 kg"},
		{Label: "Fuel", Value: "Diesel"},
	},
	"genie-gs-1932-electric-scissor": {
		{Label: "Platform Height", Value: "5.79 m"},
		{Label: "Platform Size", Value: "0.76 × 1.83 m"},
		{Label: "Capacity", Value: "227 kg"},
		{Label: "Drive", Value: "2WD"},
		{Label: "Width", Value: "0.76 m"},
		{Label: "Weight", Value: "1,247 kg"},
		{Label: "Fuel", Value: "Electric"},
	},
	"genie-gs-2632-electric-scissor": {
		{Label: "Platform Height", Value: "7.79 m"},
		{Label: "Platform Size", Value: "0.81 × 1.83 m"},
		{Label: "Capacity", Value: "227 kg"},
		{Label: "Drive", Value: "2WD"},
		{Label: "Width", Value: "0.81 m"},
		{Label: "Weight", Value: "1,497 kg"},
		{Label: "Fuel", Value: "Electric"},
	},
	"genie-gs-3232-electric-scissor": {
		{Label: "Platform Height", Value: "9.75 m"},
		{Label: "Platform Size", Value: "0.81 × 2.26 m"},
		{Label: "Capacity", Value: "350 kg"},
		{Label: "Drive", Value: "2WD"},
		{Label: "Width", Value: "0.81 m"},
		{Label: "Weight", Value: "2,063 kg"},
		{Label: "Fuel", Value: "Electric"},
	},
}

// BuiltinSpecs returns a fresh copy of the brochure sheet for slug, or an
// empty sheet when the machine has none.
func BuiltinSpecs(slug string) SpecSheet {
	base := builtinSpecs[slug]
	sheet := make(SpecSheet, len(base))
	copy(sheet, base)
	return sheet
}
