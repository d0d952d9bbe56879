// core/stats/summary.go
package stats

import "fastacheck-core/assembly"

// Summary is the immutable end-of-run aggregate. The optional blocks are nil
// exactly when the corresponding analysis was not requested, so renderers can
// rely on presence being deterministic. Nothing here is recomputed.
type Summary struct {
	Basic    Basic
	GC       GCStats
	Lengths  *LengthStats
	N        *NStats
	Assembly *assembly.Metrics
	Genes    *assembly.GeneMetrics
	Outliers *assembly.OutlierReport
}

// Assemble merges the already-computed blocks into one result. Pure merge:
// no hidden state, safe to hand to any renderer.
func Assemble(
	basic Basic,
	gc GCStats,
	lengths *LengthStats,
	n *NStats,
	asm *assembly.Metrics,
	genes *assembly.GeneMetrics,
	outliers *assembly.OutlierReport,
) Summary {
	return Summary{
		Basic:    basic,
		GC:       gc,
		Lengths:  lengths,
		N:        n,
		Assembly: asm,
		Genes:    genes,
		Outliers: outliers,
	}
}
