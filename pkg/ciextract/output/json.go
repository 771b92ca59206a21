// Package output serializes query results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
)

// Choices lists the selectable values of a loaded workbook.
type Choices struct {
	Functions []string `json:"functions"`
	Stages    []string `json:"stages"`
}

// ToJSON serializes a table.
func ToJSON(t *models.Table, pretty bool) ([]byte, error) {
	return marshal(t, pretty)
}

// ResultToJSON serializes a typed query result.
func ResultToJSON(r *models.Result, pretty bool) ([]byte, error) {
	return marshal(r, pretty)
}

// ChoicesToJSON serializes the function and stage choices.
func ChoicesToJSON(c *Choices, pretty bool) ([]byte, error) {
	return marshal(c, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
