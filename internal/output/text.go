// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"fastacheck/pkg/api"
)

const undefined = "undefined"

// maxListedOutliers caps the outlier listing in text mode; JSON carries the
// full list.
const maxListedOutliers = 10

func fnum(p *float64, format string) string {
	if p == nil {
		return undefined
	}
	return fmt.Sprintf(format, *p)
}

func fpct(p *float64) string {
	if p == nil {
		return undefined
	}
	return fmt.Sprintf("%.1f%%", *p*100)
}

func inum(p *int) string {
	if p == nil {
		return undefined
	}
	return fmt.Sprintf("%d", *p)
}

// textWriter keeps the first write error and drops the rest, so a report
// body can be emitted line by line and checked once at the end.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) pf(format string, a ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, a...)
}

// WriteText renders the summary as the human-readable report. The first
// write error aborts the report and is returned.
func WriteText(w io.Writer, s api.SummaryV1) error {
	t := &textWriter{w: w}
	b := s.Basic
	t.pf("Sequences: %d\n", b.SequenceCount)
	t.pf("Total length: %d bp\n", b.TotalLength)
	t.pf("Average length: %s bp\n", fnum(b.MeanLength, "%.1f"))
	t.pf("Shortest: %s bp\n", inum(b.MinLength))
	t.pf("Longest: %s bp\n", inum(b.MaxLength))
	t.pf("Overall GC content: %s\n", fpct(s.GCStats.OverallGCFraction))

	if ls := s.LengthStats; ls != nil {
		t.pf("\n=== Detailed Length Statistics ===\n")
		t.pf("Median length: %s bp\n", fnum(ls.Median, "%.0f"))
		t.pf("Standard deviation: %s\n", fnum(ls.StdDev, "%.1f"))
		t.pf("Q1 (25th percentile): %s bp\n", fnum(ls.Q1, "%.0f"))
		t.pf("Q3 (75th percentile): %s bp\n", fnum(ls.Q3, "%.0f"))

		gc := s.GCStats
		t.pf("\n=== GC Content Statistics ===\n")
		t.pf("Mean GC content: %s\n", fpct(gc.MeanGCFraction))
		t.pf("Median GC content: %s\n", fpct(gc.MedianGCFraction))
		t.pf("GC range: %s - %s\n", fpct(gc.MinGCFraction), fpct(gc.MaxGCFraction))
	}

	if ns := s.NStats; ns != nil && ns.TotalNBases > 0 {
		t.pf("\n=== N Base Statistics ===\n")
		t.pf("Total N bases: %d\n", ns.TotalNBases)
		t.pf("Sequences with Ns: %d (%s)\n", ns.SequencesWithN, fpct(ns.WithNFraction))
		t.pf("Overall N content: %s\n", fpct(ns.OverallNFraction))
	}

	if as := s.AssemblyStats; as != nil {
		t.pf("\n=== Genome Assembly Metrics ===\n")
		t.pf("N25: %s bp (L25: %s)\n", inum(as.N25), inum(as.L25))
		t.pf("N50: %s bp (L50: %s)\n", inum(as.N50), inum(as.L50))
		t.pf("N75: %s bp (L75: %s)\n", inum(as.N75), inum(as.L75))
		t.pf("N90: %s bp (L90: %s)\n", inum(as.N90), inum(as.L90))
		t.pf("N95: %s bp (L95: %s)\n", inum(as.N95), inum(as.L95))
		t.pf("auN: %s\n", fnum(as.AuN, "%.1f"))
		t.pf("Largest: %s bp\n", inum(as.Largest))
		t.pf("\n=== Contig Size Distribution ===\n")
		t.writeBuckets(as.Buckets)
	}

	if gs := s.GeneStats; gs != nil {
		t.pf("\n=== Gene/Protein Set Metrics ===\n")
		t.writeBuckets(gs.Buckets)
		t.pf("Mean length: %s bp\n", fnum(gs.MeanLength, "%.1f"))
		t.pf("Median length: %s bp\n", fnum(gs.MedianLength, "%.1f"))
	}

	if o := s.Outliers; o != nil {
		t.pf("\n=== Outlier Detection (%s, threshold=%g) ===\n", o.Method, o.Threshold)
		if len(o.Outliers) == 0 {
			t.pf("No outlier sequences detected\n")
		} else {
			t.pf("Found %d outlier sequences:\n", len(o.Outliers))
			for i, ol := range o.Outliers {
				if i == maxListedOutliers {
					t.pf("  ... and %d more\n", len(o.Outliers)-maxListedOutliers)
					break
				}
				t.pf("  Sequence %d: %d bp\n", ol.Index+1, ol.Length)
			}
		}
	}
	return t.err
}

func (t *textWriter) writeBuckets(buckets []api.BucketV1) {
	for _, b := range buckets {
		t.pf("%s: %d (%d bp)\n", b.Label, b.Count, b.TotalLength)
	}
}

// WriteValidationText renders a validation report. In quiet mode only the
// verdict is printed.
func WriteValidationText(w io.Writer, v api.ValidationV1, quiet bool) error {
	t := &textWriter{w: w}
	if quiet {
		if v.Valid {
			t.pf("VALID\n")
		} else {
			t.pf("INVALID\n")
		}
		return t.err
	}
	if v.Valid {
		t.pf("Valid FASTA file (%d sequences)\n", v.RecordCount)
	} else {
		t.pf("Invalid FASTA file\n")
		t.pf("\nErrors:\n")
		for _, e := range v.Errors {
			t.pf("  line %d: %s\n", e.Line, e.Message)
		}
	}
	if len(v.Warnings) > 0 {
		t.pf("\nWarnings:\n")
		for _, wn := range v.Warnings {
			t.pf("  line %d: %s\n", wn.Line, wn.Message)
		}
	}
	return t.err
}
