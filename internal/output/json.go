// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"fastacheck/pkg/api"
)

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes one pretty-indented SummaryV1 document.
func WriteJSON(w io.Writer, s api.SummaryV1) error {
	return encodePretty(w, s)
}

// WriteValidationJSON writes one pretty-indented ValidationV1 document.
func WriteValidationJSON(w io.Writer, v api.ValidationV1) error {
	return encodePretty(w, v)
}
