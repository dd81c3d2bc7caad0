// Package output serializes the dataset and renders the HTML report.
package output

import (
	"encoding/json"

	"github.com/ukaji3/roomboard-go/pkg/roomboard/models"
)

// ToJSON serializes the dataset. HTML-significant characters are escaped,
// so the result can be inlined into a <script> element as is.
// Nil slices are written as [] so the report script can iterate them.
func ToJSON(ds *models.Dataset, pretty bool) ([]byte, error) {
	out := *ds
	if out.Weeks == nil {
		out.Weeks = []models.Week{}
	}
	if out.Rooms == nil {
		out.Rooms = []models.Room{}
	}
	if pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

// FromJSON parses a dataset produced by ToJSON.
func FromJSON(data []byte) (*models.Dataset, error) {
	var ds models.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}
