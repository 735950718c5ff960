package dist

import (
	"math"
	"testing"
)

func TestBoundedStaysInBounds(t *testing.T) {
	tests := []struct {
		name     string
		location float64
		scale    float64
		lo, hi   float64
	}{
		{name: "centered", location: 0, scale: 0.1, lo: -1, hi: 1},
		{name: "near upper bound", location: 0.95, scale: 0.3, lo: -1, hi: 1},
		{name: "location above interval", location: 5, scale: 0.5, lo: 0, hi: 1},
		{name: "location below interval", location: -5, scale: 0.5, lo: 0, hi: 1},
		{name: "tiny scale", location: 0.5, scale: 1e-9, lo: 0, hi: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewSource(1)
			d, err := NewBounded(tt.location, tt.scale, tt.lo, tt.hi, rng)
			if err != nil {
				t.Fatalf("NewBounded: %v", err)
			}
			for i := 0; i < 10000; i++ {
				x := d.Rand()
				if x < tt.lo || x > tt.hi {
					t.Fatalf("draw %d out of [%v,%v]: %v", i, tt.lo, tt.hi, x)
				}
				if math.IsNaN(x) {
					t.Fatalf("draw %d is NaN", i)
				}
			}
		})
	}
}

func TestBoundedDegenerateInterval(t *testing.T) {
	// When the interval carries no numeric mass the sampler collapses to
	// the nearest bound instead of emitting NaN.
	rng := NewSource(1)
	d, err := NewBounded(100, 1e-6, 0, 1, rng)
	if err != nil {
		t.Fatalf("NewBounded: %v", err)
	}
	for i := 0; i < 100; i++ {
		if x := d.Rand(); x != 1 {
			t.Fatalf("expected collapse to upper bound, got %v", x)
		}
	}

	d, err = NewBounded(-100, 1e-6, 0, 1, rng)
	if err != nil {
		t.Fatalf("NewBounded: %v", err)
	}
	for i := 0; i < 100; i++ {
		if x := d.Rand(); x != 0 {
			t.Fatalf("expected collapse to lower bound, got %v", x)
		}
	}
}

func TestBoundedRejectsBadParams(t *testing.T) {
	rng := NewSource(1)
	if _, err := NewBounded(0, 0, -1, 1, rng); err == nil {
		t.Fatal("expected error for zero scale")
	}
	if _, err := NewBounded(0, -1, -1, 1, rng); err == nil {
		t.Fatal("expected error for negative scale")
	}
	if _, err := NewBounded(0, 1, 1, 1, rng); err == nil {
		t.Fatal("expected error for empty interval")
	}
	if _, err := NewBounded(0, 1, 2, 1, rng); err == nil {
		t.Fatal("expected error for inverted interval")
	}
}

func TestBoundedMeanNearLocation(t *testing.T) {
	rng := NewSource(7)
	d, err := NewBounded(0.5, 0.05, 0, 1, rng)
	if err != nil {
		t.Fatalf("NewBounded: %v", err)
	}
	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		sum += d.Rand()
	}
	mean := sum / n
	if math.Abs(mean-0.5) > 0.01 {
		t.Fatalf("mean %v too far from location 0.5", mean)
	}
}

func TestSameSeedSameDraws(t *testing.T) {
	a, err := NewBounded(0, 0.1, -1, 1, NewSource(99))
	if err != nil {
		t.Fatalf("NewBounded: %v", err)
	}
	b, err := NewBounded(0, 0.1, -1, 1, NewSource(99))
	if err != nil {
		t.Fatalf("NewBounded: %v", err)
	}
	for i := 0; i < 1000; i++ {
		if x, y := a.Rand(), b.Rand(); x != y {
			t.Fatalf("draw %d diverged: %v vs %v", i, x, y)
		}
	}
}

func TestBernoulliFrequency(t *testing.T) {
	tests := []struct {
		name string
		p    float64
	}{
		{name: "never", p: 0},
		{name: "always", p: 1},
		{name: "half", p: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBernoulli(tt.p, NewSource(3))
			if err != nil {
				t.Fatalf("NewBernoulli: %v", err)
			}
			hits := 0
			const n = 20000
			for i := 0; i < n; i++ {
				if b.Rand() {
					hits++
				}
			}
			freq := float64(hits) / n
			if math.Abs(freq-tt.p) > 0.01 {
				t.Fatalf("frequency %v too far from p=%v", freq, tt.p)
			}
		})
	}
}

func TestBernoulliRejectsBadProbability(t *testing.T) {
	if _, err := NewBernoulli(-0.1, NewSource(1)); err == nil {
		t.Fatal("expected error for negative probability")
	}
	if _, err := NewBernoulli(1.1, NewSource(1)); err == nil {
		t.Fatal("expected error for probability above one")
	}
}

func TestBinomialRange(t *testing.T) {
	bin, err := NewBinomial(20, 0.5, NewSource(5))
	if err != nil {
		t.Fatalf("NewBinomial: %v", err)
	}
	for i := 0; i < 5000; i++ {
		k := bin.Rand()
		if k < 0 || k > 20 {
			t.Fatalf("draw %d out of [0,20]: %d", i, k)
		}
	}
}

func TestNormalRejectsBadScale(t *testing.T) {
	if _, err := NewNormal(0, 0, NewSource(1)); err == nil {
		t.Fatal("expected error for zero scale")
	}
}
