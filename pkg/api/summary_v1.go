// pkg/api/summary_v1.go
package api

// SummaryV1 is the stable JSON schema for an analysis run. Keep fields,
// names, and types stable. Add new fields only with ",omitempty". Pointer
// fields are omitted when the underlying statistic is undefined (empty
// input, zero denominator); consumers must not read absence as zero.
type SummaryV1 struct {
	Basic         BasicV1          `json:"basic"`
	GCStats       GCStatsV1        `json:"gc_stats"`
	LengthStats   *LengthStatsV1   `json:"length_stats,omitempty"`
	NStats        *NStatsV1        `json:"n_stats,omitempty"`
	AssemblyStats *AssemblyStatsV1 `json:"assembly_stats,omitempty"`
	GeneStats     *GeneStatsV1     `json:"gene_stats,omitempty"`
	Outliers      *OutliersV1      `json:"outliers,omitempty"`
}

type BasicV1 struct {
	SequenceCount int      `json:"sequence_count"`
	TotalLength   int      `json:"total_length"`
	MinLength     *int     `json:"min_length,omitempty"`
	MaxLength     *int     `json:"max_length,omitempty"`
	MeanLength    *float64 `json:"mean_length,omitempty"`
	MedianLength  *float64 `json:"median_length,omitempty"`
	StdDev        *float64 `json:"std_dev,omitempty"`
	NFraction     *float64 `json:"n_fraction,omitempty"`
}

type GCStatsV1 struct {
	OverallGCFraction *float64 `json:"overall_gc_fraction,omitempty"`
	MeanGCFraction    *float64 `json:"mean_gc_fraction,omitempty"`
	MedianGCFraction  *float64 `json:"median_gc_fraction,omitempty"`
	MinGCFraction     *float64 `json:"min_gc_fraction,omitempty"`
	MaxGCFraction     *float64 `json:"max_gc_fraction,omitempty"`
	StdDevGCFraction  *float64 `json:"std_dev_gc_fraction,omitempty"`
}

type LengthStatsV1 struct {
	Median   *float64 `json:"median,omitempty"`
	StdDev   *float64 `json:"std_dev,omitempty"`
	Variance *float64 `json:"variance,omitempty"`
	Q1       *float64 `json:"q1,omitempty"`
	Q3       *float64 `json:"q3,omitempty"`
}

type NStatsV1 struct {
	TotalNBases      int      `json:"total_n_bases"`
	SequencesWithN   int      `json:"sequences_with_n"`
	WithNFraction    *float64 `json:"sequences_with_n_fraction,omitempty"`
	OverallNFraction *float64 `json:"overall_n_fraction,omitempty"`
}

type AssemblyStatsV1 struct {
	N25     *int        `json:"n25,omitempty"`
	L25     *int        `json:"l25,omitempty"`
	N50     *int        `json:"n50,omitempty"`
	L50     *int        `json:"l50,omitempty"`
	N75     *int        `json:"n75,omitempty"`
	L75     *int        `json:"l75,omitempty"`
	N90     *int        `json:"n90,omitempty"`
	L90     *int        `json:"l90,omitempty"`
	N95     *int        `json:"n95,omitempty"`
	L95     *int        `json:"l95,omitempty"`
	AuN     *float64    `json:"aun,omitempty"`
	Largest *int        `json:"largest,omitempty"`
	Buckets []BucketV1  `json:"size_distribution"`
	ExtraNx []NxPointV1 `json:"extra_nx,omitempty"` // points outside the named 25..95 set
}

type NxPointV1 struct {
	X int `json:"x"`
	N int `json:"n"`
	L int `json:"l"`
}

type BucketV1 struct {
	Label       string `json:"label"`
	Low         int    `json:"low"`
	High        int    `json:"high,omitempty"` // absent = unbounded
	Count       int    `json:"count"`
	TotalLength int    `json:"total_length"`
}

type GeneStatsV1 struct {
	Buckets      []BucketV1 `json:"size_distribution"`
	MeanLength   *float64   `json:"mean_length,omitempty"`
	MedianLength *float64   `json:"median_length,omitempty"`
}

type OutliersV1 struct {
	Method    string      `json:"method"`
	Threshold float64     `json:"threshold"`
	LowBound  *float64    `json:"low_bound,omitempty"`
	HighBound *float64    `json:"high_bound,omitempty"`
	Outliers  []OutlierV1 `json:"outliers"`
}

type OutlierV1 struct {
	Index  int `json:"index"` // 0-based input position
	Length int `json:"length"`
}
