package report

import (
	"encoding/json"
	"io"

	"lexstat/internal/analysis"
)

// WriteJSON encodes the report as indented JSON.
func WriteJSON(w io.Writer, rep analysis.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
