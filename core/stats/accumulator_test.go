package stats

import (
	"math"
	"testing"

	"fastacheck-core/fasta"
)

func addLengths(a *Accumulator, lengths ...int) {
	for _, l := range lengths {
		a.Add(fasta.Record{ID: "s", Length: l})
	}
}

func TestAccumulatorBasic(t *testing.T) {
	a := NewAccumulator()
	a.Add(fasta.Record{ID: "a", Length: 8, GC: 4})
	a.Add(fasta.Record{ID: "b", Length: 4, GC: 4})

	b := a.Basic()
	if b.SequenceCount != 2 || b.TotalLength != 12 {
		t.Fatalf("count=%d total=%d", b.SequenceCount, b.TotalLength)
	}
	if b.MinLength != 4 || b.MaxLength != 8 {
		t.Fatalf("min=%d max=%d", b.MinLength, b.MaxLength)
	}
	if b.Mean == nil || *b.Mean != 6 {
		t.Fatalf("mean = %v", b.Mean)
	}
	if b.Median == nil || *b.Median != 6 {
		t.Fatalf("median = %v", b.Median)
	}
	if b.GCFraction == nil || math.Abs(*b.GCFraction-8.0/12.0) > 1e-9 {
		t.Fatalf("gc = %v", b.GCFraction)
	}
}

func TestAccumulatorPopulationStdDev(t *testing.T) {
	a := NewAccumulator()
	addLengths(a, 2, 4, 4, 4, 5, 5, 7, 9)
	b := a.Basic()
	if b.Mean == nil || *b.Mean != 5 {
		t.Fatalf("mean = %v", b.Mean)
	}
	if b.StdDev == nil || math.Abs(*b.StdDev-2) > 1e-9 {
		t.Fatalf("population stddev = %v, want 2", b.StdDev)
	}
}

func TestAccumulatorZeroRecords(t *testing.T) {
	a := NewAccumulator()
	b := a.Basic()
	if b.SequenceCount != 0 || b.TotalLength != 0 {
		t.Fatalf("zeroed counts expected: %+v", b)
	}
	if b.Mean != nil || b.Median != nil || b.StdDev != nil || b.GCFraction != nil || b.NFraction != nil {
		t.Fatalf("undefined markers expected: %+v", b)
	}
	ls := a.LengthStats()
	if ls.Median != nil || ls.Q1 != nil {
		t.Fatalf("undefined length stats expected: %+v", ls)
	}
	gc := a.GCStats()
	if gc.Overall != nil || gc.Mean != nil {
		t.Fatalf("undefined gc stats expected: %+v", gc)
	}
}

func TestAccumulatorSingleRecord(t *testing.T) {
	a := NewAccumulator()
	addLengths(a, 42)
	b := a.Basic()
	if *b.Mean != 42 || *b.Median != 42 || *b.StdDev != 0 {
		t.Fatalf("single record: %+v", b)
	}
}

func TestAccumulatorZeroLengthRecordsOnly(t *testing.T) {
	a := NewAccumulator()
	addLengths(a, 0, 0)
	b := a.Basic()
	// Count is defined; GC fraction is not (zero denominator).
	if b.SequenceCount != 2 || b.GCFraction != nil || b.NFraction != nil {
		t.Fatalf("zero-length records: %+v", b)
	}
	if b.Mean == nil || *b.Mean != 0 {
		t.Fatalf("mean = %v", b.Mean)
	}
}

func TestAccumulatorLengthsIsACopy(t *testing.T) {
	a := NewAccumulator()
	addLengths(a, 1, 2, 3)
	got := a.Lengths()
	got[0] = 99
	if a.Lengths()[0] != 1 {
		t.Fatal("Lengths must hand out a copy")
	}
}

func TestAccumulatorLengthStats(t *testing.T) {
	a := NewAccumulator()
	addLengths(a, 1, 2, 3, 4, 5, 100)
	ls := a.LengthStats()
	if ls.Q1 == nil || math.Abs(*ls.Q1-2.25) > 1e-9 {
		t.Fatalf("q1 = %v", ls.Q1)
	}
	if ls.Q3 == nil || math.Abs(*ls.Q3-4.75) > 1e-9 {
		t.Fatalf("q3 = %v", ls.Q3)
	}
	if ls.Variance == nil || ls.StdDev == nil {
		t.Fatal("expected defined variance/stddev")
	}
	if math.Abs(*ls.Variance-(*ls.StdDev)*(*ls.StdDev)) > 1e-6 {
		t.Fatalf("variance %v vs stddev %v", *ls.Variance, *ls.StdDev)
	}
}

func TestAccumulatorGCAndNStats(t *testing.T) {
	a := NewAccumulator()
	a.Add(fasta.Record{ID: "a", Length: 4, GC: 4})          // 1.0
	a.Add(fasta.Record{ID: "b", Length: 4, GC: 2, N: 2})    // 0.5
	a.Add(fasta.Record{ID: "c", Length: 4, GC: 0, Other: 4}) // 0.0

	gc := a.GCStats()
	if gc.Overall == nil || math.Abs(*gc.Overall-0.5) > 1e-9 {
		t.Fatalf("overall = %v", gc.Overall)
	}
	if *gc.Mean != 0.5 || *gc.Median != 0.5 || *gc.Min != 0 || *gc.Max != 1 {
		t.Fatalf("gc stats = %+v", gc)
	}

	ns := a.NStats()
	if ns.TotalN != 2 || ns.SequencesWithN != 1 {
		t.Fatalf("n stats = %+v", ns)
	}
	if ns.WithNFraction == nil || math.Abs(*ns.WithNFraction-1.0/3.0) > 1e-9 {
		t.Fatalf("withN fraction = %v", ns.WithNFraction)
	}
	if ns.OverallFraction == nil || math.Abs(*ns.OverallFraction-2.0/12.0) > 1e-9 {
		t.Fatalf("overall n fraction = %v", ns.OverallFraction)
	}
}

func TestAccumulatorAmbiguityCodesNotInNStats(t *testing.T) {
	a := NewAccumulator()
	a.Add(fasta.Record{ID: "a", Length: 4, Ambiguous: 3, Other: 1})

	ns := a.NStats()
	if ns.TotalN != 0 || ns.SequencesWithN != 0 {
		t.Fatalf("n stats = %+v, want zero tallies", ns)
	}
	b := a.Basic()
	if b.NFraction == nil || *b.NFraction != 0 {
		t.Fatalf("n fraction = %v, want 0", b.NFraction)
	}
}
