package pricing

// DefaultTable returns the published price band for every hardware subcategory.
func DefaultTable() Table {
	return Table{
		// Building supplies
		"building_blocks_and_bricks":             newRange("2.20", "6.50", "0.45"),
		"building_cements_concretes_and_mortars": newRange("7.50", "18.95", "1.20"),
		"building_aggregates_and_sand":           newRange("4.50", "12.95", "1.10"),
		"building_roof_materials":                newRange("8.50", "38.95", "3.20"),
		"building_slates_and_tiles":              newRange("2.80", "14.50", "1.70"),
		"building_roof_windows":                  newRange("195.00", "485.00", "41.50"),
		"building_gutter_downpipe_and_waste":     newRange("3.50", "18.95", "1.60"),
		"building_underground_drainage":          newRange("4.95", "32.50", "2.80"),
		"building_damp_proof_membranes":          newRange("12.95", "55.00", "4.70"),
		"building_caps_and_lintels":              newRange("6.50", "42.00", "4.50"),
		"building_fascias_and_soffits":           newRange("8.95", "32.95", "3.00"),
		"building_pvc_sheeting_and_ventilation":  newRange("3.95", "24.50", "2.30"),

		// Timber
		"timber_construction_and_treated_timber": newRange("4.50", "28.50", "2.70"),
		"timber_rough_and_sawn_timber":           newRange("3.95", "18.50", "2.90"),
		"timber_pao_and_planed_timber":           newRange("4.50", "22.00", "2.90"),
		"timber_plywood":                         newRange("18.50", "62.00", "4.80"),
		"timber_mdf_and_hardboard":               newRange("12.95", "42.00", "3.60"),
		"timber_patio_and_composite_decking":     newRange("8.95", "38.50", "3.70"),
		"timber_skirting_and_architrave":         newRange("2.50", "12.95", "1.30"),
		"timber_mouldings_and_hardwood":          newRange("3.50", "22.50", "2.40"),

		// Insulation
		"insulation_plasterboard":                   newRange("6.95", "24.50", "1.95"),
		"insulation_pir_board_insulation":           newRange("14.50", "48.00", "3.70"),
		"insulation_attic_and_loft_insulation":      newRange("18.95", "52.00", "3.70"),
		"insulation_foilback_and_cavity_insulation": newRange("22.50", "65.00", "4.70"),
		"insulation_plaster_and_accessories":        newRange("8.50", "28.50", "2.20"),
		"insulation_cement_board":                   newRange("12.50", "38.00", "2.80"),

		// Plumbing & heating
		"plumbing_boilers":                   newRange("1250.00", "2850.00", "178.00"),
		"plumbing_cylinders_and_tanks":       newRange("185.00", "680.00", "55.00"),
		"plumbing_radiators":                 newRange("42.00", "195.00", "17.00"),
		"plumbing_underfloor_heating":        newRange("65.00", "320.00", "28.00"),
		"plumbing_copper_tubes_and_fittings": newRange("1.80", "18.50", "1.85"),
		"plumbing_pex_and_multilayer_pipe":   newRange("2.50", "24.50", "2.45"),
		"plumbing_heat_pumps_and_renewables": newRange("2850.00", "6500.00", "406.00"),
		"plumbing_heating_controls":          newRange("18.50", "85.00", "7.40"),

		// Bathroom
		"bathroom_sanitaryware":           newRange("45.00", "285.00", "26.70"),
		"bathroom_baths":                  newRange("185.00", "650.00", "51.70"),
		"bathroom_showers_and_enclosures": newRange("125.00", "480.00", "39.40"),
		"bathroom_taps":                   newRange("38.00", "185.00", "16.30"),
		"bathroom_bathroom_furniture":     newRange("95.00", "420.00", "36.10"),
		"bathroom_wall_panels_and_tiling": newRange("12.50", "42.00", "3.30"),

		// Doors & floors
		"doors_internal_doors":              newRange("65.00", "285.00", "24.40"),
		"doors_external_doors":              newRange("195.00", "650.00", "50.60"),
		"doors_door_frames_and_liners":      newRange("22.00", "85.00", "7.00"),
		"doors_door_furniture":              newRange("8.50", "48.00", "4.40"),
		"doors_laminate_and_vinyl_flooring": newRange("14.50", "42.00", "3.10"),
		"doors_carpet_and_underlay":         newRange("5.50", "22.00", "1.83"),

		// Paint
		"paint_emulsions_and_interior":    newRange("14.95", "52.00", "4.10"),
		"paint_exterior_and_masonry":      newRange("18.50", "58.00", "4.40"),
		"paint_woodstains_and_varnishes":  newRange("12.50", "38.00", "2.80"),
		"paint_spray_paint_and_specialty": newRange("6.50", "24.50", "2.00"),
		"paint_brushes_and_rollers":       newRange("2.50", "18.50", "1.78"),
		"paint_wallpaper_and_adhesives":   newRange("8.50", "32.00", "2.60"),

		// Tools
		"tools_hand_tools":              newRange("4.50", "38.00", "3.72"),
		"tools_power_tools":             newRange("45.00", "295.00", "27.80"),
		"tools_measuring_and_levelling": newRange("6.50", "65.00", "6.50"),
		"tools_screws_and_nails":        newRange("3.50", "14.50", "1.22"),
		"tools_bolts_and_fixings":       newRange("2.80", "12.50", "1.08"),
		"tools_adhesives_and_sealants":  newRange("4.50", "16.50", "1.33"),
		"tools_cable_and_electrical":    newRange("3.50", "28.50", "2.78"),

		// PPE
		"ppe_hi_vis_and_jackets":          newRange("8.50", "38.00", "3.28"),
		"ppe_gloves":                      newRange("3.50", "14.50", "1.22"),
		"ppe_helmets_and_head_protection": newRange("6.50", "28.50", "2.44"),
		"ppe_safety_boots":                newRange("32.00", "95.00", "7.00"),
		"ppe_ear_and_eye_protection":      newRange("4.50", "22.50", "2.00"),
		"ppe_dust_masks_and_respirators":  newRange("2.50", "24.50", "2.44"),

		// Garden
		"garden_lawnmowers_and_strimmers": newRange("85.00", "420.00", "37.22"),
		"garden_hand_tools_and_barrows":   newRange("8.50", "55.00", "5.17"),
		"garden_fencing_and_screening":    newRange("12.50", "65.00", "5.83"),
		"garden_paving_and_gravel":        newRange("4.50", "28.00", "2.61"),
		"garden_garden_decor_and_pots":    newRange("5.50", "38.00", "3.61"),
		"garden_sheds_and_storage":        newRange("195.00", "850.00", "72.78"),

		// Fuel
		"fuel_coal_and_smokeless_fuels": newRange("8.50", "26.50", "2.00"),
		"fuel_briquettes_and_logs":      newRange("4.50", "18.50", "1.56"),
	}
}
