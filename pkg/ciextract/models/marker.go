package models

// Color is a display color for a stage indicator.
type Color struct {
	// Name is the human-readable color name.
	Name string `json:"name"`
	// Hex is the CSS hex value.
	Hex string `json:"hex"`
}

// Indicator colors used by MarkerColors.
var (
	ColorGrey   = Color{Name: "grey", Hex: "#808080"}
	ColorGreen  = Color{Name: "green", Hex: "#008000"}
	ColorOrange = Color{Name: "orange", Hex: "#FFA500"}
)

// Markers is the closed vocabulary of recognized stage markers in display order.
var Markers = []string{"DR", "D", "U", "X,D"}

// MarkerColors maps each recognized marker to its indicator color.
var MarkerColors = map[string]Color{
	"DR":  ColorGrey,
	"D":   ColorGreen,
	"U":   ColorOrange,
	"X,D": ColorGreen,
}

// IsMarker reports whether v is a recognized marker. Comparison is exact.
func IsMarker(v string) bool {
	_, ok := MarkerColors[v]
	return ok
}
