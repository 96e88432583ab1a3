package market

import (
	"math"
	"testing"
)

func TestSyntheticSource_Length(t *testing.T) {
	src := NewSyntheticSource("CRYPTO IDX", 100, 1)
	for _, n := range []int{1, 35, 100, 500} {
		series := src.Series(n)
		if series.Len() != n {
			t.Fatalf("requested %d points, got %d", n, series.Len())
		}
	}
}

func TestSyntheticSource_SeedReproducibility(t *testing.T) {
	a := NewSyntheticSource("CRYPTO IDX", 100, 42).Series(100)
	b := NewSyntheticSource("CRYPTO IDX", 100, 42).Series(100)
	if len(a.Points) != len(b.Points) {
		t.Fatalf("length mismatch: %d vs %d", len(a.Points), len(b.Points))
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs: %.6f vs %.6f", i, a.Points[i], b.Points[i])
		}
	}
}

func TestSyntheticSource_DifferentSeedsDiverge(t *testing.T) {
	a := NewSyntheticSource("CRYPTO IDX", 100, 1).Series(50)
	b := NewSyntheticSource("CRYPTO IDX", 100, 2).Series(50)
	same := true
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different walks")
	}
}

func TestSyntheticSource_PricesStayPositive(t *testing.T) {
	// A tiny base price forces the negative-price guard to engage.
	src := NewSyntheticSource("CRYPTO IDX", 0.5, 7)
	series := src.Series(1000)
	for i, p := range series.Points {
		if p <= 0 {
			t.Fatalf("point %d is non-positive: %f", i, p)
		}
		if math.IsNaN(p) || math.IsInf(p, 0) {
			t.Fatalf("point %d is not finite: %f", i, p)
		}
	}
}

func TestSyntheticSource_MinimumLength(t *testing.T) {
	src := NewSyntheticSource("CRYPTO IDX", 100, 3)
	if got := src.Series(0).Len(); got != 1 {
		t.Fatalf("zero-length request should yield 1 point, got %d", got)
	}
}

func TestFixedSource_ReturnsCopy(t *testing.T) {
	fixed := &FixedSource{Symbol: "CRYPTO IDX", Points: []float64{1, 2, 3}}
	series := fixed.Series(99)
	if series.Len() != 3 {
		t.Fatalf("expected canned length 3, got %d", series.Len())
	}
	series.Points[0] = 1000
	if fixed.Points[0] != 1 {
		t.Fatal("mutating the returned series must not touch the source")
	}
	if series.Symbol != "CRYPTO IDX" {
		t.Fatalf("unexpected symbol: %s", series.Symbol)
	}
}
