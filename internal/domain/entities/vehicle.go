package entities

// VehicleInfo is the normalized answer of the plate lookup API.
//
// Placeholder is set when the upstream could not be reached and the record
// was synthesized so the funnel keeps moving.

type VehicleInfo struct {
	Plate       string `json:"plate"`
	Brand       string `json:"brand,omitempty"`
	Model       string `json:"model,omitempty"`
	Year        string `json:"year,omitempty"`
	Color       string `json:"color,omitempty"`
	Validated   bool   `json:"validated"`
	Placeholder bool   `json:"placeholder,omitempty"`
	Source      string `json:"source,omitempty"`
}
