package catalog

import "slices"

// AllCategoryID selects every product.
const AllCategoryID = "all"

// Category is one entry of the product taxonomy.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var taxonomy = []Category{
	{ID: AllCategoryID, Name: "All Products"},

	// Fire detection and alarm.
	{ID: "fire-detection", Name: "Fire Detection"},
	{ID: "alarm-panels", Name: "Alarm Panels"},
	{ID: "smoke-detectors", Name: "Smoke Detectors"},
	{ID: "heat-detectors", Name: "Heat Detectors"},
	{ID: "manual-call-points", Name: "Manual Call Points"},
	{ID: "notification-devices", Name: "Notification Devices"},
	{ID: "flame-detectors", Name: "Flame Detectors"},
	{ID: "beam-detectors", Name: "Beam Detectors"},
	{ID: "aspirating-systems", Name: "Aspirating Systems"},
	{ID: "smoke-control", Name: "Smoke Control"},

	// Suppression and fire fighting.
	{ID: "fire-suppression", Name: "Fire Suppression"},
	{ID: "fm200-systems", Name: "FM200 Systems"},
	{ID: "co2-systems", Name: "CO2 Systems"},
	{ID: "foam-systems", Name: "Foam Systems"},
	{ID: "sprinkler-systems", Name: "Sprinkler Systems"},
	{ID: "water-mist-systems", Name: "Water Mist Systems"},
	{ID: "kitchen-suppression", Name: "Kitchen Suppression"},
	{ID: "fire-hoses", Name: "Fire Hoses"},
	{ID: "fire-hydrants", Name: "Fire Hydrants"},
	{ID: "fire-pumps", Name: "Fire Pumps"},
	{ID: "fire-cabinets", Name: "Fire Cabinets"},

	// Safety and emergency equipment.
	{ID: "safety-equipment", Name: "Safety Equipment"},
	{ID: "emergency-lighting", Name: "Emergency Lighting"},
	{ID: "exit-signs", Name: "Exit Signs"},
	{ID: "emergency-lights", Name: "Emergency Lights"},
	{ID: "first-aid-kits", Name: "First Aid Kits"},
	{ID: "safety-signage", Name: "Safety Signage"},
	{ID: "fire-blankets", Name: "Fire Blankets"},
	{ID: "evacuation-equipment", Name: "Evacuation Equipment"},
	{ID: "emergency-phones", Name: "Emergency Phones"},
	{ID: "voice-evacuation", Name: "Voice Evacuation"},
	{ID: "testing-equipment", Name: "Testing Equipment"},
	{ID: "maintenance-tools", Name: "Maintenance Tools"},
	{ID: "spare-parts", Name: "Spare Parts"},

	// Gas detection.
	{ID: "gas-detection", Name: "Gas Detection"},
	{ID: "gas-monitors", Name: "Gas Monitors"},
	{ID: "toxic-gas-detectors", Name: "Toxic Gas Detectors"},
	{ID: "oxygen-monitors", Name: "Oxygen Monitors"},
	{ID: "combustible-detectors", Name: "Combustible Detectors"},
	{ID: "calibration-equipment", Name: "Calibration Equipment"},

	// Personal protective equipment.
	{ID: "personal-protective", Name: "Personal Protective"},
	{ID: "breathing-apparatus", Name: "Breathing Apparatus"},
	{ID: "fire-helmets", Name: "Fire Helmets"},
	{ID: "fire-gloves", Name: "Fire Gloves"},
	{ID: "fire-boots", Name: "Fire Boots"},
	{ID: "fire-suits", Name: "Fire Suits"},
}

// Categories returns the full ordered taxonomy, starting with "all".
func Categories() []Category {
	return slices.Clone(taxonomy)
}

// CategoryName returns the display name for a category id.
func CategoryName(id string) (string, bool) {
	for _, category := range taxonomy {
		if category.ID == id {
			return category.Name, true
		}
	}
	return "", false
}

// AvailableCategories returns "all" plus each taxonomy category used by at
// least one product, in taxonomy order.
func AvailableCategories(products []Product) []Category {
	used := make(map[string]struct{}, len(products))
	for _, product := range products {
		used[product.CategoryID] = struct{}{}
	}
	out := make([]Category, 0, len(used)+1)
	for _, category := range taxonomy {
		if category.ID == AllCategoryID {
			out = append(out, category)
			continue
		}
		if _, ok := used[category.ID]; ok {
			out = append(out, category)
		}
	}
	return out
}
