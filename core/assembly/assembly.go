// core/assembly/assembly.go
//
// Order-statistics metrics over a finalized set of sequence lengths: Nx/Lx,
// auN, size-distribution buckets, and length outliers. The caller hands the
// length set over once, after streaming completes; nothing here mutates it.
package assembly

import "sort"

// Config selects which metrics Compute reports. Zero values fall back to the
// package defaults, so Config{} gives the standard assembly report.
type Config struct {
	Xs      []int    // Nx/Lx percentages, each in [0,100]
	Buckets []Bucket // size-distribution table
}

// DefaultXs is the conventional set of Nx/Lx thresholds.
var DefaultXs = []int{25, 50, 75, 90, 95}

// NxPoint is one point of the Nx curve: at x percent of the total length,
// N is the crossing sequence length and L its 1-based rank.
type NxPoint struct {
	X int
	N int
	L int
}

// Metrics is the assembly report for one length set. Nx and AuN are nil when
// the set was empty: the metrics are undefined, not zero.
type Metrics struct {
	Nx      []NxPoint
	AuN     *float64
	Largest int
	Buckets []BucketCount
}

// Compute builds the full assembly report. The input slice is copied before
// sorting; the caller's order is preserved.
func Compute(cfg Config, lengths []int) Metrics {
	xs := cfg.Xs
	if xs == nil {
		xs = DefaultXs
	}
	table := cfg.Buckets
	if table == nil {
		table = AssemblyBuckets
	}

	m := Metrics{Buckets: countBuckets(table, lengths)}
	if len(lengths) == 0 {
		return m
	}

	sorted := descending(lengths)
	m.Largest = sorted[0]

	var total int64
	for _, l := range sorted {
		total += int64(l)
	}
	for _, x := range xs {
		n, l := crossing(sorted, total, x)
		m.Nx = append(m.Nx, NxPoint{X: x, N: n, L: l})
	}
	if a, ok := auN(lengths); ok {
		m.AuN = &a
	}
	return m
}

// Nx returns the Nx value and Lx rank for one threshold. It exists for
// callers that need a single point; Compute sorts once for the whole curve.
func Nx(lengths []int, x int) (n, l int) {
	if len(lengths) == 0 {
		return 0, 0
	}
	sorted := descending(lengths)
	var total int64
	for _, v := range sorted {
		total += int64(v)
	}
	return crossing(sorted, total, x)
}

// crossing walks the descending lengths until the running sum first reaches
// x% of total. Integer arithmetic keeps the threshold comparison exact.
func crossing(sorted []int, total int64, x int) (n, l int) {
	var cum int64
	for i, v := range sorted {
		cum += int64(v)
		if cum*100 >= total*int64(x) {
			return v, i + 1
		}
	}
	return sorted[len(sorted)-1], len(sorted)
}

// auN is the area under the Nx curve: sum(l^2)/T, the length-weighted mean
// length. One pass, no sorting needed.
func auN(lengths []int) (float64, bool) {
	var total, sq float64
	for _, l := range lengths {
		total += float64(l)
		sq += float64(l) * float64(l)
	}
	if total == 0 {
		return 0, false
	}
	return sq / total, true
}

// descending returns a stably sorted copy, longest first. Stability keeps the
// tie-break at Nx boundaries reproducible across runs.
func descending(lengths []int) []int {
	out := append([]int(nil), lengths...)
	sort.SliceStable(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}
