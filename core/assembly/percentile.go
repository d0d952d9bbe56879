// core/assembly/percentile.go
package assembly

import "sort"

// Percentile returns the p-th percentile (0-100) of lengths using linear
// interpolation between closest ranks: the value at fractional sorted index
// p/100*(n-1). This is the interpolation the quartile-based outlier bounds
// are defined against; gonum's stat.Quantile interpolates the empirical CDF
// instead and would shift the bounds, so the rank formula is spelled out
// here. The second return is false for an empty set.
func Percentile(lengths []int, p float64) (float64, bool) {
	n := len(lengths)
	if n == 0 {
		return 0, false
	}
	sorted := make([]float64, n)
	for i, l := range lengths {
		sorted[i] = float64(l)
	}
	sort.Float64s(sorted)
	if n == 1 {
		return sorted[0], true
	}
	idx := p / 100 * float64(n-1)
	lo := int(idx)
	if lo >= n-1 {
		return sorted[n-1], true
	}
	if lo < 0 {
		return sorted[0], true
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac, true
}
