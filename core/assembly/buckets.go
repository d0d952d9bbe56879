// core/assembly/buckets.go
package assembly

// Bucket is a half-open size range [Low, High); High <= 0 means unbounded.
type Bucket struct {
	Label string
	Low   int
	High  int
}

// BucketCount is one bucket plus the tallies that landed in it.
type BucketCount struct {
	Bucket
	Count       int
	TotalLength int
}

// AssemblyBuckets is the contig size-distribution table.
var AssemblyBuckets = []Bucket{
	{Label: "<1kb", Low: 0, High: 1_000},
	{Label: "1-10kb", Low: 1_000, High: 10_000},
	{Label: "10-100kb", Low: 10_000, High: 100_000},
	{Label: "100kb-1Mb", Low: 100_000, High: 1_000_000},
	{Label: ">=1Mb", Low: 1_000_000},
}

// GeneBuckets is the smaller-range table for gene/protein sets.
var GeneBuckets = []Bucket{
	{Label: "<300", Low: 0, High: 300},
	{Label: "300-1500", Low: 300, High: 1_500},
	{Label: ">=1500", Low: 1_500},
}

func (b Bucket) contains(l int) bool {
	if l < b.Low {
		return false
	}
	return b.High <= 0 || l < b.High
}

func countBuckets(table []Bucket, lengths []int) []BucketCount {
	out := make([]BucketCount, len(table))
	for i, b := range table {
		out[i].Bucket = b
	}
	for _, l := range lengths {
		for i := range out {
			if out[i].contains(l) {
				out[i].Count++
				out[i].TotalLength += l
				break
			}
		}
	}
	return out
}

// GeneMetrics is the gene/protein-set view of a length distribution.
type GeneMetrics struct {
	Buckets []BucketCount
	Mean    *float64
	Median  *float64
}

// ComputeGenes buckets lengths into the gene table and reports the central
// tendency of the set. Mean and Median are nil for an empty set.
func ComputeGenes(lengths []int) GeneMetrics {
	g := GeneMetrics{Buckets: countBuckets(GeneBuckets, lengths)}
	if len(lengths) == 0 {
		return g
	}
	var total float64
	for _, l := range lengths {
		total += float64(l)
	}
	mean := total / float64(len(lengths))
	g.Mean = &mean
	if med, ok := Percentile(lengths, 50); ok {
		g.Median = &med
	}
	return g
}
