// core/stats/accumulator.go
//
// Running aggregates over a stream of records. The accumulator keeps O(1)
// state per step plus the retained per-record lengths (and GC ratios), which
// percentile-style metrics need after the stream ends.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"fastacheck-core/assembly"
	"fastacheck-core/fasta"
)

type Accumulator struct {
	count       int
	totalLength int
	minLength   int
	maxLength   int
	gcTotal     int
	nTotal      int
	withN       int
	lengths     []int
	gcRatios    []float64
}

func NewAccumulator() *Accumulator { return &Accumulator{} }

// Add folds one record into the running state. Ties on min/max keep the
// first value seen.
func (a *Accumulator) Add(rec fasta.Record) {
	a.count++
	a.totalLength += rec.Length
	if a.count == 1 || rec.Length < a.minLength {
		a.minLength = rec.Length
	}
	if a.count == 1 || rec.Length > a.maxLength {
		a.maxLength = rec.Length
	}
	a.gcTotal += rec.GC
	a.nTotal += rec.N
	if rec.N > 0 {
		a.withN++
	}
	a.lengths = append(a.lengths, rec.Length)
	ratio := 0.0
	if rec.Length > 0 {
		ratio = float64(rec.GC) / float64(rec.Length)
	}
	a.gcRatios = append(a.gcRatios, ratio)
}

func (a *Accumulator) Count() int { return a.count }

// Lengths hands the retained length set over by value; the accumulator's own
// copy is never aliased by the distribution engine.
func (a *Accumulator) Lengths() []int {
	return append([]int(nil), a.lengths...)
}

// Basic is the always-present summary block. Mean, Median, StdDev, GCFraction
// and NFraction are nil when no records were processed: undefined, never
// coerced to zero. StdDev is the population standard deviation. GCFraction
// uses the full length (N bases included) as its denominator.
type Basic struct {
	SequenceCount int
	TotalLength   int
	MinLength     int
	MaxLength     int
	Mean          *float64
	Median        *float64
	StdDev        *float64
	GCFraction    *float64
	NFraction     *float64
}

// Basic is a pure query; it can be called at any point during accumulation.
func (a *Accumulator) Basic() Basic {
	b := Basic{
		SequenceCount: a.count,
		TotalLength:   a.totalLength,
		MinLength:     a.minLength,
		MaxLength:     a.maxLength,
	}
	if a.count == 0 {
		return b
	}
	mean := float64(a.totalLength) / float64(a.count)
	b.Mean = &mean
	if med, ok := assembly.Percentile(a.lengths, 50); ok {
		b.Median = &med
	}
	sd := stat.PopStdDev(lengthsAsFloats(a.lengths), nil)
	b.StdDev = &sd
	if a.totalLength > 0 {
		gc := float64(a.gcTotal) / float64(a.totalLength)
		nf := float64(a.nTotal) / float64(a.totalLength)
		b.GCFraction = &gc
		b.NFraction = &nf
	}
	return b
}

// LengthStats is the detailed length block: spread and quartiles of the
// retained length set. All fields are nil for an empty set.
type LengthStats struct {
	Median   *float64
	StdDev   *float64
	Variance *float64
	Q1       *float64
	Q3       *float64
}

func (a *Accumulator) LengthStats() LengthStats {
	var ls LengthStats
	if a.count == 0 {
		return ls
	}
	xs := lengthsAsFloats(a.lengths)
	sd := stat.PopStdDev(xs, nil)
	va := stat.PopVariance(xs, nil)
	ls.StdDev, ls.Variance = &sd, &va
	if med, ok := assembly.Percentile(a.lengths, 50); ok {
		ls.Median = &med
	}
	if q1, ok := assembly.Percentile(a.lengths, 25); ok {
		ls.Q1 = &q1
	}
	if q3, ok := assembly.Percentile(a.lengths, 75); ok {
		ls.Q3 = &q3
	}
	return ls
}

// GCStats describes the per-record GC fraction distribution. Overall is the
// whole-set fraction (same value as Basic.GCFraction); the rest summarize
// the per-record ratios.
type GCStats struct {
	Overall *float64
	Mean    *float64
	Median  *float64
	Min     *float64
	Max     *float64
	StdDev  *float64
}

func (a *Accumulator) GCStats() GCStats {
	var g GCStats
	if a.count == 0 {
		return g
	}
	if a.totalLength > 0 {
		overall := float64(a.gcTotal) / float64(a.totalLength)
		g.Overall = &overall
	}
	mean := stat.Mean(a.gcRatios, nil)
	sd := stat.PopStdDev(a.gcRatios, nil)
	g.Mean, g.StdDev = &mean, &sd
	mn, mx := a.gcRatios[0], a.gcRatios[0]
	for _, r := range a.gcRatios[1:] {
		if r < mn {
			mn = r
		}
		if r > mx {
			mx = r
		}
	}
	g.Min, g.Max = &mn, &mx
	med := medianFloats(a.gcRatios)
	g.Median = &med
	return g
}

// NStats tallies literal N bases across the set. Non-N ambiguity codes stay
// out of it; they are tallied per record as Record.Ambiguous.
type NStats struct {
	TotalN          int
	SequencesWithN  int
	WithNFraction   *float64 // sequences containing N / sequence count
	OverallFraction *float64 // N bases / total length
}

func (a *Accumulator) NStats() NStats {
	ns := NStats{TotalN: a.nTotal, SequencesWithN: a.withN}
	if a.count == 0 {
		return ns
	}
	wf := float64(a.withN) / float64(a.count)
	ns.WithNFraction = &wf
	if a.totalLength > 0 {
		of := float64(a.nTotal) / float64(a.totalLength)
		ns.OverallFraction = &of
	}
	return ns
}

func lengthsAsFloats(lengths []int) []float64 {
	xs := make([]float64, len(lengths))
	for i, l := range lengths {
		xs[i] = float64(l)
	}
	return xs
}

func medianFloats(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
