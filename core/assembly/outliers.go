// core/assembly/outliers.go
package assembly

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Method selects the outlier detection strategy.
type Method string

const (
	MethodIQR    Method = "iqr"
	MethodZScore Method = "zscore"
)

// DefaultThreshold is the IQR multiplier k and the z-score cutoff. 1.5 is
// aggressive for z-scores (3 is the usual convention) but matches the
// tool's historical default; callers override it per run.
const DefaultThreshold = 1.5

// Outlier is one flagged length, identified by its 0-based input position.
type Outlier struct {
	Index  int
	Length int
}

// OutlierReport records what was searched for and what was found. Low/High
// are the IQR fence bounds; they stay nil for the z-score method.
type OutlierReport struct {
	Method    Method
	Threshold float64
	Low       *float64
	High      *float64
	Outliers  []Outlier
}

// Detect flags lengths that fall outside the chosen method's bounds.
// An empty set, or a zero-variance set under z-score, yields no outliers.
func Detect(method Method, threshold float64, lengths []int) (OutlierReport, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	rep := OutlierReport{Method: method, Threshold: threshold}
	if len(lengths) == 0 {
		return rep, nil
	}
	switch method {
	case MethodIQR:
		q1, _ := Percentile(lengths, 25)
		q3, _ := Percentile(lengths, 75)
		iqr := q3 - q1
		low, high := q1-threshold*iqr, q3+threshold*iqr
		rep.Low, rep.High = &low, &high
		for i, l := range lengths {
			if v := float64(l); v < low || v > high {
				rep.Outliers = append(rep.Outliers, Outlier{Index: i, Length: l})
			}
		}
	case MethodZScore:
		xs := make([]float64, len(lengths))
		for i, l := range lengths {
			xs[i] = float64(l)
		}
		mean := stat.Mean(xs, nil)
		sd := stat.PopStdDev(xs, nil)
		if sd == 0 {
			return rep, nil
		}
		for i, v := range xs {
			z := (v - mean) / sd
			if z < 0 {
				z = -z
			}
			if z > threshold {
				rep.Outliers = append(rep.Outliers, Outlier{Index: i, Length: lengths[i]})
			}
		}
	default:
		return rep, fmt.Errorf("unknown outlier method %q", method)
	}
	return rep, nil
}
