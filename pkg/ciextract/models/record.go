package models

// Indicator is one stage cell of a DisplayRecord.
type Indicator struct {
	// Marker is the recognized marker, empty when the stage cell did not match.
	Marker string `json:"marker,omitempty"`
	// Color is the indicator color (nil for a blank indicator).
	Color *Color `json:"color,omitempty"`
}

// IsBlank reports whether the indicator renders as an empty cell.
func (i Indicator) IsBlank() bool {
	return i.Color == nil
}

// DisplayRecord is one output row ready for rendering.
type DisplayRecord struct {
	// Values holds [document, drawing placeholder, placeholder, detail values...].
	Values []string `json:"values"`
	// Indicators holds one indicator per selected stage.
	Indicators []Indicator `json:"indicators"`
	// Sentinel marks an explanatory row rather than a matched document.
	Sentinel bool `json:"sentinel,omitempty"`
}

// Width returns the total column count of the record.
func (r DisplayRecord) Width() int {
	return len(r.Values) + len(r.Indicators)
}

// Document returns the first column value.
func (r DisplayRecord) Document() string {
	if len(r.Values) == 0 {
		return ""
	}
	return r.Values[0]
}
