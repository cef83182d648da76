// Package testutil provides deterministic spectra and bandpass fixtures
// shared by the photometry package tests.
package testutil

import (
	"math"

	"github.com/cwbudde/algo-synphot/phot/bandpass"
	"github.com/cwbudde/algo-synphot/phot/spectrum"
	"github.com/cwbudde/algo-synphot/phot/units"
)

// Grid returns n evenly spaced wavelengths over [lo, hi].
func Grid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)

	for i := range out {
		out[i] = lo + float64(i)*step
	}

	out[n-1] = hi

	return out
}

// FlatFnu generates a spectrum with constant flux density in frequency
// space: f_λ(λ) = f_ν·c/λ². Its AB magnitude is filter-independent.
func FlatFnu(fnu, lo, hi float64, n int) spectrum.Spectrum {
	wav := Grid(lo, hi, n)
	flux := make([]float64, n)

	for i, w := range wav {
		flux[i] = units.FnuToFlam(fnu, w)
	}

	return spectrum.Spectrum{Wavelength: wav, Flux: flux}
}

// FlatFnuAB generates a flat-f_ν spectrum whose AB magnitude is mag.
func FlatFnuAB(mag, lo, hi float64, n int) spectrum.Spectrum {
	return FlatFnu(units.ABToFnu(mag), lo, hi, n)
}

// FlatFlam generates a spectrum with constant f_λ.
func FlatFlam(flam, lo, hi float64, n int) spectrum.Spectrum {
	wav := Grid(lo, hi, n)
	flux := make([]float64, n)

	for i := range flux {
		flux[i] = flam
	}

	return spectrum.Spectrum{Wavelength: wav, Flux: flux}
}

// GaussianLine generates a continuum plus a Gaussian emission line.
func GaussianLine(continuum, amp, center, sigma, lo, hi float64, n int) spectrum.Spectrum {
	wav := Grid(lo, hi, n)
	flux := make([]float64, n)

	for i, w := range wav {
		d := (w - center) / sigma
		flux[i] = continuum + amp*math.Exp(-0.5*d*d)
	}

	return spectrum.Spectrum{Wavelength: wav, Flux: flux}
}

// Tophat builds a near-rectangular test bandpass with unit throughput
// over (lo, hi) and 1 Å edge ramps.
func Tophat(name string, lo, hi float64) *bandpass.Curve {
	c, err := bandpass.New(name,
		[]float64{lo, lo + 1, hi - 1, hi},
		[]float64{0, 1, 1, 0})
	if err != nil {
		panic(err)
	}

	return c
}
