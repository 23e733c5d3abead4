package catalog

import "fmt"

// Name fragments and copy templates per category key. Categories supplied
// through a categories file fall back to the generic pools.

var namePrefixes = map[string][]string{
	"barn-doors":    {"Premier", "Rustic", "Modern", "Classic", "Designer", "Artisan"},
	"closet-doors":  {"Custom", "Contemporary", "Traditional", "Elegant", "Luxury", "Premium"},
	"hardware":      {"Professional", "Heavy-Duty", "Premium", "Commercial", "Designer", "Industrial"},
	"track-systems": {"Complete", "Professional", "Heavy-Duty", "Premium", "Commercial", "Designer"},
	"handles":       {"Ergonomic", "Designer", "Premium", "Contemporary", "Classic", "Modern"},
	"accessories":   {"Premium", "Professional", "Complete", "Designer", "Quality", "Essential"},
}

var nameSuffixes = map[string][]string{
	"barn-doors":    {"Barn Door", "Sliding Door", "Door System"},
	"closet-doors":  {"Closet Door", "Wardrobe Door", "Door Panel"},
	"hardware":      {"Hardware Kit", "Track Hardware", "Door Hardware"},
	"track-systems": {"Track System", "Sliding System", "Door Track"},
	"handles":       {"Door Handle", "Pull Handle", "Lever Handle"},
	"accessories":   {"Accessory Kit", "Hardware Set", "Component Set"},
}

var genericPrefixes = []string{"Premium", "Professional", "Complete", "Designer", "Quality", "Essential"}

// descriptionTemplates use indexed verbs: 1 = lowercased product name,
// 2 = category description, 3 = city.
var descriptionTemplates = []string{
	"Transform your space with our %[1]s. %[2]s Expertly crafted for the discerning %[3]s homeowner.",
	"Discover the perfect blend of style and functionality with our %[1]s. %[2]s Professional installation available throughout %[3]s.",
	"Elevate your home's aesthetic with our premium %[1]s. %[2]s Backed by our satisfaction guarantee.",
	"Experience exceptional quality with our %[1]s. %[2]s Designed for modern %[3]s homes.",
}

var categoryKeywords = map[string][]string{
	"barn-doors":    {"barn doors", "sliding doors", "rustic doors"},
	"closet-doors":  {"closet doors", "wardrobe doors", "custom closets"},
	"hardware":      {"door hardware", "track systems", "sliding hardware"},
	"track-systems": {"track systems", "sliding tracks", "door tracks"},
	"handles":       {"door handles", "cabinet pulls", "hardware"},
	"accessories":   {"door accessories", "hardware accessories", "door parts"},
}

func prefixesFor(category string) []string {
	if prefixes, ok := namePrefixes[category]; ok {
		return prefixes
	}
	return genericPrefixes
}

func suffixesFor(category string, cfg CategoryConfig) []string {
	if suffixes, ok := nameSuffixes[category]; ok {
		return suffixes
	}
	return []string{cfg.Name}
}

func baseKeywords(siteName, city string) []string {
	return []string{
		fmt.Sprintf("%s closet doors", city),
		fmt.Sprintf("custom doors %s", city),
		fmt.Sprintf("door installation %s", city),
		siteName,
	}
}
