package catalog

import (
	"fmt"
	"math/rand"
)

// specifications picks category-specific attributes from fixed enumerations.
// Categories without a specification table get an empty map.
func specifications(category string, rng *rand.Rand) map[string]any {
	pick := func(options ...string) string {
		return options[rng.Intn(len(options))]
	}

	switch category {
	case "barn-doors":
		return map[string]any{
			"material":          pick("Solid Wood", "MDF", "Engineered Wood"),
			"thickness":         pick(`1.5"`, `1.75"`, `2"`),
			"finish":            pick("Natural", "Stained", "Painted"),
			"hardware_included": true,
		}
	case "closet-doors":
		return map[string]any{
			"material":   pick("Solid Wood", "MDF", "Glass Panel"),
			"thickness":  pick(`1.375"`, `1.5"`, `1.75"`),
			"hinge_type": pick("Standard", "Soft-Close", "European"),
			"adjustable": true,
		}
	case "hardware":
		return map[string]any{
			"material":        pick("Stainless Steel", "Carbon Steel", "Aluminum"),
			"finish":          pick("Black", "Brushed Nickel", "Oil Rubbed Bronze"),
			"weight_capacity": fmt.Sprintf("%d lbs", rng.Intn(50)+100),
			"warranty":        "10 years",
		}
	case "track-systems":
		return map[string]any{
			"material":        pick("Steel", "Aluminum", "Stainless Steel"),
			"length":          fmt.Sprintf("%d ft", rng.Intn(4)+6),
			"weight_capacity": fmt.Sprintf("%d lbs", rng.Intn(100)+150),
			"mounting":        "Top Mount",
		}
	case "handles":
		return map[string]any{
			"material": pick("Stainless Steel", "Brass", "Aluminum"),
			"finish":   pick("Brushed", "Polished", "Matte"),
			"length":   fmt.Sprintf("%d inches", rng.Intn(8)+4),
			"mounting": "Surface Mount",
		}
	case "accessories":
		return map[string]any{
			"material":      pick("Metal", "Plastic", "Composite"),
			"finish":        pick("Black", "White", "Chrome"),
			"compatibility": "Universal",
			"installation":  "Easy",
		}
	default:
		return map[string]any{}
	}
}
