package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synphot/phot/units"
)

func TestGrid(t *testing.T) {
	g := Grid(4000, 5000, 11)
	if len(g) != 11 {
		t.Fatalf("len = %d, want 11", len(g))
	}

	if g[0] != 4000 || g[10] != 5000 {
		t.Fatalf("bounds = [%v, %v], want [4000, 5000]", g[0], g[10])
	}

	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			t.Fatalf("grid not strictly increasing at %d", i)
		}
	}
}

func TestFlatFnuShape(t *testing.T) {
	s := FlatFnu(1e-26, 4000, 8000, 41)
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// f_λ·λ² must be constant for a flat f_ν spectrum.
	ref := s.Flux[0] * s.Wavelength[0] * s.Wavelength[0]
	for i := range s.Flux {
		got := s.Flux[i] * s.Wavelength[i] * s.Wavelength[i]
		if math.Abs(got-ref) > ref*1e-12 {
			t.Fatalf("sample %d: f_λ·λ² = %v, want %v", i, got, ref)
		}
	}
}

func TestFlatFnuAB(t *testing.T) {
	s := FlatFnuAB(17.5, 4000, 8000, 5)

	want := units.ABToFnu(17.5)
	got := units.FlamToFnu(s.Flux[2], s.Wavelength[2])

	if math.Abs(got-want) > want*1e-12 {
		t.Fatalf("f_ν = %v, want %v", got, want)
	}
}

func TestGaussianLinePeak(t *testing.T) {
	s := GaussianLine(1, 9, 5000, 50, 4000, 6000, 201)

	peak := 0.0
	peakWav := 0.0

	for i, f := range s.Flux {
		if f > peak {
			peak = f
			peakWav = s.Wavelength[i]
		}
	}

	if math.Abs(peakWav-5000) > 10 {
		t.Fatalf("peak at %v Å, want ~5000", peakWav)
	}

	if math.Abs(peak-10) > 1e-6 {
		t.Fatalf("peak flux = %v, want 10", peak)
	}
}

func TestTophat(t *testing.T) {
	c := Tophat("hat", 5000, 6000)

	lo, hi := c.Support()
	if lo != 5000 || hi != 6000 {
		t.Fatalf("support = [%v, %v], want [5000, 6000]", lo, hi)
	}

	if got := c.At(5500); got != 1 {
		t.Fatalf("At(5500) = %v, want 1", got)
	}
}
