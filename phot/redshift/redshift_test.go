package redshift

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-synphot/internal/testutil"
	"github.com/cwbudde/algo-synphot/phot/cosmo"
	"github.com/cwbudde/algo-synphot/phot/spectrum"
	"github.com/cwbudde/algo-synphot/phot/units"
)

func TestTransformZeroIsIdentity(t *testing.T) {
	s := testutil.GaussianLine(1e-16, 5e-16, 6000, 300, 4000, 8000, 401)
	s.Phase = 2

	out, err := Transform(s, 0, cosmo.Default())
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out.Wavelength, s.Wavelength, 0)
	testutil.RequireSliceNearlyEqual(t, out.Flux, s.Flux, 0)

	if out.Phase != 2 {
		t.Fatalf("Phase = %v, want 2", out.Phase)
	}

	// Identity must still be a copy.
	out.Flux[0] = -1
	if s.Flux[0] == -1 {
		t.Fatal("Transform(z=0) shares backing arrays with input")
	}
}

func TestTransformDilatesWavelengths(t *testing.T) {
	s := testutil.FlatFlam(1e-15, 4000, 8000, 101)

	const z = 0.25

	out, err := Transform(s, z, cosmo.Default())
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	if len(out.Wavelength) != len(s.Wavelength) {
		t.Fatalf("sample count changed: %d -> %d", len(s.Wavelength), len(out.Wavelength))
	}

	for i := range s.Wavelength {
		want := s.Wavelength[i] * (1 + z)
		if math.Abs(out.Wavelength[i]-want) > 1e-9 {
			t.Fatalf("sample %d: λ_obs = %v, want %v", i, out.Wavelength[i], want)
		}
	}
}

func TestTransformInverseSquareDimming(t *testing.T) {
	// At fixed z the flux scale factor must equal
	// (d_ref/d_L)² / (1+z) exactly.
	model := cosmo.Default()
	s := testutil.FlatFlam(1e-15, 4000, 8000, 101)

	const z = 0.05

	out, err := Transform(s, z, model)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	dl, err := model.LuminosityDistance(z)
	if err != nil {
		t.Fatalf("LuminosityDistance: %v", err)
	}

	ratio := units.PcToCm(RefDistancePc) / units.MpcToCm(dl)
	want := 1e-15 * ratio * ratio / (1 + z)

	for i := range out.Flux {
		if math.Abs(out.Flux[i]-want) > want*1e-12 {
			t.Fatalf("sample %d: flux %v, want %v", i, out.Flux[i], want)
		}
	}
}

func TestTransformMonotonicDimming(t *testing.T) {
	// Increasing z strictly decreases the observed flux density at a
	// fixed sample index for z in (0, 5].
	model := cosmo.Default()
	s := testutil.FlatFlam(1e-15, 4000, 8000, 11)

	prev := math.Inf(1)
	for z := 0.1; z <= 5.0001; z += 0.1 {
		out, err := Transform(s, z, model)
		if err != nil {
			t.Fatalf("Transform(%v): %v", z, err)
		}

		if out.Flux[5] >= prev {
			t.Fatalf("flux not strictly decreasing at z=%v: %v >= %v", z, out.Flux[5], prev)
		}

		prev = out.Flux[5]
	}
}

func TestTransformInvalidRedshift(t *testing.T) {
	s := testutil.FlatFlam(1e-15, 4000, 8000, 11)

	for _, z := range []float64{-1, -2} {
		if _, err := Transform(s, z, cosmo.Default()); !errors.Is(err, cosmo.ErrInvalidRedshift) {
			t.Fatalf("Transform(z=%v) = %v, want ErrInvalidRedshift", z, err)
		}
	}
}

func TestTransformBlueshiftCompressesWavelengths(t *testing.T) {
	s := testutil.FlatFlam(1e-15, 4000, 8000, 11)

	out, err := Transform(s, -0.5, cosmo.Default())
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	if out.Wavelength[0] != 2000 {
		t.Fatalf("λ_obs[0] = %v, want 2000", out.Wavelength[0])
	}
}

func TestTransformInvalidSpectrum(t *testing.T) {
	if _, err := Transform(spectrum.Spectrum{}, 0.1, cosmo.Default()); !errors.Is(err, spectrum.ErrEmptySpectrum) {
		t.Fatalf("Transform = %v, want ErrEmptySpectrum", err)
	}
}
