package services

// Service is a static catalog entry describing an offered service.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// catalog is fixed at process start; declaration order is the serving order.
var catalog = []Service{
	{
		ID:          "emergency",
		Title:       "24/7 Emergency Plumbing",
		Description: "Rapid response for leaks, bursts, and urgent repairs.",
		Icon:        "zap",
	},
	{
		ID:          "drain",
		Title:       "Drain Cleaning",
		Description: "Clogged drains cleared fast with professional equipment.",
		Icon:        "pipe",
	},
	{
		ID:          "water-heater",
		Title:       "Water Heater Repair & Install",
		Description: "Tank and tankless systems serviced and installed.",
		Icon:        "flame",
	},
	{
		ID:          "leak-detection",
		Title:       "Leak Detection",
		Description: "Pinpoint hidden leaks with non-invasive diagnostics.",
		Icon:        "droplet",
	},
}

// Catalog returns the offered services in declaration order. Callers
// receive a copy so the table itself stays immutable.
func Catalog() []Service {
	out := make([]Service, len(catalog))
	copy(out, catalog)
	return out
}
