package bandpass

import (
	"math"

	"gonum.org/v1/gonum/integrate"
)

// Analysis holds spectral metrics of a bandpass curve.
type Analysis struct {
	EffectiveWavelength float64 // throughput-weighted mean wavelength, Å
	PivotWavelength     float64 // source-independent conversion wavelength, Å
	FWHM                float64 // full width at half of the peak throughput, Å
	EquivalentWidth     float64 // ∫T dλ, Å
	PeakThroughput      float64
}

// Analyze computes spectral metrics from the tabulated curve.
//
// The pivot wavelength follows the energy-integrating convention
// λ_p² = ∫T dλ / ∫T λ⁻² dλ, matching the photometry in this module.
func Analyze(c *Curve) Analysis {
	n := len(c.wav)

	weighted := make([]float64, n)
	inverse := make([]float64, n)

	for i := range c.wav {
		weighted[i] = c.thr[i] * c.wav[i]
		inverse[i] = c.thr[i] / (c.wav[i] * c.wav[i])
	}

	var a Analysis

	a.EquivalentWidth = integrate.Trapezoidal(c.wav, c.thr)
	if a.EquivalentWidth > 0 {
		a.EffectiveWavelength = integrate.Trapezoidal(c.wav, weighted) / a.EquivalentWidth
	}

	if inv := integrate.Trapezoidal(c.wav, inverse); inv > 0 {
		a.PivotWavelength = math.Sqrt(a.EquivalentWidth / inv)
	}

	for _, t := range c.thr {
		if t > a.PeakThroughput {
			a.PeakThroughput = t
		}
	}

	a.FWHM = fwhm(c.wav, c.thr, a.PeakThroughput/2)

	return a
}

// fwhm finds the wavelength span between the first and last crossing of
// the half-peak level, interpolating linearly between samples.
func fwhm(wav, thr []float64, half float64) float64 {
	if half <= 0 {
		return 0
	}

	lo := math.NaN()
	hi := math.NaN()

	for i := 1; i < len(thr); i++ {
		crossesUp := thr[i-1] < half && thr[i] >= half
		crossesDown := thr[i-1] >= half && thr[i] < half

		if !crossesUp && !crossesDown {
			continue
		}

		frac := (half - thr[i-1]) / (thr[i] - thr[i-1])
		x := wav[i-1] + frac*(wav[i]-wav[i-1])

		if math.IsNaN(lo) {
			lo = x
		}

		hi = x
	}

	if math.IsNaN(lo) || hi == lo {
		return 0
	}

	return hi - lo
}
