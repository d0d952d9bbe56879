// internal/output/api_conv.go
package output

import (
	"fastacheck/pkg/api"

	"fastacheck-core/assembly"
	"fastacheck-core/fasta"
	"fastacheck-core/stats"
)

// ToSummaryV1 converts a domain summary to the stable wire schema (v1).
// Undefined statistics stay nil and drop out of the encoded JSON.
func ToSummaryV1(s stats.Summary) api.SummaryV1 {
	v := api.SummaryV1{
		Basic: api.BasicV1{
			SequenceCount: s.Basic.SequenceCount,
			TotalLength:   s.Basic.TotalLength,
			MeanLength:    s.Basic.Mean,
			MedianLength:  s.Basic.Median,
			StdDev:        s.Basic.StdDev,
			NFraction:     s.Basic.NFraction,
		},
		GCStats: api.GCStatsV1{
			OverallGCFraction: s.GC.Overall,
			MeanGCFraction:    s.GC.Mean,
			MedianGCFraction:  s.GC.Median,
			MinGCFraction:     s.GC.Min,
			MaxGCFraction:     s.GC.Max,
			StdDevGCFraction:  s.GC.StdDev,
		},
	}
	if s.Basic.SequenceCount > 0 {
		mn, mx := s.Basic.MinLength, s.Basic.MaxLength
		v.Basic.MinLength, v.Basic.MaxLength = &mn, &mx
	}
	if s.Lengths != nil {
		v.LengthStats = &api.LengthStatsV1{
			Median:   s.Lengths.Median,
			StdDev:   s.Lengths.StdDev,
			Variance: s.Lengths.Variance,
			Q1:       s.Lengths.Q1,
			Q3:       s.Lengths.Q3,
		}
	}
	if s.N != nil {
		v.NStats = &api.NStatsV1{
			TotalNBases:      s.N.TotalN,
			SequencesWithN:   s.N.SequencesWithN,
			WithNFraction:    s.N.WithNFraction,
			OverallNFraction: s.N.OverallFraction,
		}
	}
	if s.Assembly != nil {
		v.AssemblyStats = toAssemblyV1(*s.Assembly)
	}
	if s.Genes != nil {
		v.GeneStats = &api.GeneStatsV1{
			Buckets:      toBucketsV1(s.Genes.Buckets),
			MeanLength:   s.Genes.Mean,
			MedianLength: s.Genes.Median,
		}
	}
	if s.Outliers != nil {
		v.Outliers = toOutliersV1(*s.Outliers)
	}
	return v
}

func toAssemblyV1(m assembly.Metrics) *api.AssemblyStatsV1 {
	v := &api.AssemblyStatsV1{
		AuN:     m.AuN,
		Buckets: toBucketsV1(m.Buckets),
	}
	if m.Nx != nil {
		l := m.Largest
		v.Largest = &l
	}
	for _, p := range m.Nx {
		n, rank := p.N, p.L
		switch p.X {
		case 25:
			v.N25, v.L25 = &n, &rank
		case 50:
			v.N50, v.L50 = &n, &rank
		case 75:
			v.N75, v.L75 = &n, &rank
		case 90:
			v.N90, v.L90 = &n, &rank
		case 95:
			v.N95, v.L95 = &n, &rank
		default:
			v.ExtraNx = append(v.ExtraNx, api.NxPointV1{X: p.X, N: p.N, L: p.L})
		}
	}
	return v
}

func toBucketsV1(in []assembly.BucketCount) []api.BucketV1 {
	out := make([]api.BucketV1, 0, len(in))
	for _, b := range in {
		out = append(out, api.BucketV1{
			Label:       b.Label,
			Low:         b.Low,
			High:        b.High,
			Count:       b.Count,
			TotalLength: b.TotalLength,
		})
	}
	return out
}

func toOutliersV1(rep assembly.OutlierReport) *api.OutliersV1 {
	v := &api.OutliersV1{
		Method:    string(rep.Method),
		Threshold: rep.Threshold,
		LowBound:  rep.Low,
		HighBound: rep.High,
		Outliers:  []api.OutlierV1{},
	}
	for _, o := range rep.Outliers {
		v.Outliers = append(v.Outliers, api.OutlierV1{Index: o.Index, Length: o.Length})
	}
	return v
}

// ToValidationV1 converts a validation report to the stable wire schema.
func ToValidationV1(res fasta.ValidationResult) api.ValidationV1 {
	return api.ValidationV1{
		Valid:       res.Valid,
		RecordCount: res.RecordCount,
		Errors:      toIssuesV1(res.Errors),
		Warnings:    toIssuesV1(res.Warnings),
	}
}

func toIssuesV1(in []fasta.Issue) []api.IssueV1 {
	out := make([]api.IssueV1, 0, len(in))
	for _, i := range in {
		out = append(out, api.IssueV1{Line: i.Line, Message: i.Msg})
	}
	return out
}
