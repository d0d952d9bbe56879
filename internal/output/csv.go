// internal/output/csv.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"fastacheck/pkg/api"
)

// WriteCSV emits the summary as metric,value rows. Undefined statistics are
// written as empty values rather than zeros.
func WriteCSV(w io.Writer, s api.SummaryV1) error {
	cw := csv.NewWriter(w)
	row := func(metric, value string) {
		cw.Write([]string{metric, value})
	}
	fcell := func(p *float64, format string) string {
		if p == nil {
			return ""
		}
		return fmt.Sprintf(format, *p)
	}
	icell := func(p *int) string {
		if p == nil {
			return ""
		}
		return fmt.Sprintf("%d", *p)
	}

	row("metric", "value")
	row("sequence_count", fmt.Sprintf("%d", s.Basic.SequenceCount))
	row("total_length", fmt.Sprintf("%d", s.Basic.TotalLength))
	row("mean_length", fcell(s.Basic.MeanLength, "%.1f"))
	row("min_length", icell(s.Basic.MinLength))
	row("max_length", icell(s.Basic.MaxLength))
	row("gc_fraction", fcell(s.GCStats.OverallGCFraction, "%.4f"))
	if as := s.AssemblyStats; as != nil {
		row("n50", icell(as.N50))
		row("l50", icell(as.L50))
		row("aun", fcell(as.AuN, "%.1f"))
	}
	if o := s.Outliers; o != nil {
		row("outlier_count", fmt.Sprintf("%d", len(o.Outliers)))
	}
	cw.Flush()
	return cw.Error()
}
