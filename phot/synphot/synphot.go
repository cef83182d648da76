package synphot

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-synphot/phot/bandpass"
	"github.com/cwbudde/algo-synphot/phot/spectrum"
	"github.com/cwbudde/algo-synphot/phot/units"
)

// Errors returned by synthetic photometry functions.
var (
	ErrNoOverlap = errors.New("synphot: spectrum does not overlap bandpass support")
	ErrZeroFlux  = errors.New("synphot: spectrum carries no positive flux in band")
)

// Config holds photometry integration parameters.
type Config struct {
	// Oversample subdivides every interval of the native union grid
	// into this many pieces. Values <= 1 use the native grid.
	Oversample int
}

// ABMagnitude computes the AB magnitude of the spectrum through the
// bandpass on the native union grid.
func ABMagnitude(s spectrum.Spectrum, c *bandpass.Curve) (float64, error) {
	return ABMagnitudeConfig(s, c, Config{})
}

// ABMagnitudeConfig computes the AB magnitude with explicit integration
// parameters.
func ABMagnitudeConfig(s spectrum.Spectrum, c *bandpass.Curve, cfg Config) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	lo, hi := c.Support()

	sLo, sHi := s.Bounds()
	if sHi <= lo || sLo >= hi {
		return 0, fmt.Errorf("%w: spectrum [%g, %g] Å vs %s support [%g, %g] Å",
			ErrNoOverlap, sLo, sHi, c.Name(), lo, hi)
	}

	grid := unionGrid(s.Wavelength, c.Grid(), lo, hi, cfg.Oversample)

	resampled, err := s.Resample(grid)
	if err != nil {
		return 0, err
	}

	thr := make([]float64, len(grid))
	for i, w := range grid {
		thr[i] = c.At(w)
	}

	// Numerator: ∫ f_λ T dλ.
	prod := make([]float64, len(grid))
	vecmath.MulBlock(prod, resampled.Flux, thr)
	num := integrate.Trapezoidal(grid, prod)

	// Denominator: ∫ T c/λ² dλ, the throughput-over-frequency factor.
	for i, w := range grid {
		prod[i] = thr[i] * units.SpeedOfLightAA / (w * w)
	}
	den := integrate.Trapezoidal(grid, prod)

	fnu := num / den
	if fnu <= 0 || math.IsNaN(fnu) {
		return 0, fmt.Errorf("%w: mean f_ν = %g", ErrZeroFlux, fnu)
	}

	return units.FnuToAB(fnu), nil
}

// ScaleToAB rescales the spectrum so that its AB magnitude through the
// bandpass equals target. The spectrum is first zero-padded to cover the
// full bandpass support; the returned spectrum carries that padding.
// Remeasuring the result through the same bandpass reproduces target to
// floating-point precision.
func ScaleToAB(s spectrum.Spectrum, c *bandpass.Curve, target float64) (spectrum.Spectrum, error) {
	lo, hi := c.Support()

	padded, err := s.Pad(lo, hi)
	if err != nil {
		return spectrum.Spectrum{}, err
	}

	current, err := ABMagnitude(padded, c)
	if err != nil {
		return spectrum.Spectrum{}, err
	}

	factor := math.Pow(10, -0.4*(target-current))

	return padded.Scale(factor), nil
}

// unionGrid merges the spectrum and curve wavelengths within [lo, hi],
// keeping the bounds themselves, and optionally subdivides every
// resulting interval.
func unionGrid(spec, curve []float64, lo, hi float64, oversample int) []float64 {
	merged := make([]float64, 0, len(spec)+len(curve))
	merged = append(merged, curve...)

	for _, w := range spec {
		if w > lo && w < hi {
			merged = append(merged, w)
		}
	}

	sort.Float64s(merged)

	grid := merged[:0]
	for i, w := range merged {
		if i == 0 || w > grid[len(grid)-1] {
			grid = append(grid, w)
		}
	}

	if oversample <= 1 {
		return grid
	}

	fine := make([]float64, 0, len(grid)*oversample)
	for i := 0; i < len(grid)-1; i++ {
		step := (grid[i+1] - grid[i]) / float64(oversample)
		for k := 0; k < oversample; k++ {
			fine = append(fine, grid[i]+float64(k)*step)
		}
	}

	return append(fine, grid[len(grid)-1])
}
