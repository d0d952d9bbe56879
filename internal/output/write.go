// internal/output/write.go
package output

import (
	"fmt"
	"io"

	"fastacheck/pkg/api"
)

// Write dispatches a summary to the renderer for format.
func Write(w io.Writer, format string, s api.SummaryV1) error {
	switch format {
	case "json":
		return WriteJSON(w, s)
	case "csv":
		return WriteCSV(w, s)
	case "text":
		return WriteText(w, s)
	}
	return fmt.Errorf("unsupported output %q", format)
}
