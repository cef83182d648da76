// Package smooth applies Gaussian broadening to spectra, as used for
// matching template resolution to an instrument or adding velocity
// dispersion.
//
// Kernels short enough to make direct convolution cheap are applied in
// the wavelength domain; longer kernels go through an FFT.
package smooth

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synphot/phot/spectrum"
	"github.com/cwbudde/algo-synphot/phot/units"
)

// Errors returned by smoothing functions.
var (
	ErrInvalidWidth  = errors.New("smooth: width must be positive")
	ErrIrregularGrid = errors.New("smooth: wavelength grid must be uniformly spaced")
)

// directThreshold is the kernel length above which FFT convolution
// beats the direct form.
const directThreshold = 32

// Gaussian convolves the spectrum's flux with a Gaussian of standard
// deviation sigma (in Å). The wavelength grid must be uniform; flux
// outside the sampled range is treated as zero, so the outermost ~4σ
// of the spectrum darkens toward the edges.
func Gaussian(s spectrum.Spectrum, sigma float64) (spectrum.Spectrum, error) {
	if err := s.Validate(); err != nil {
		return spectrum.Spectrum{}, err
	}

	if sigma <= 0 || math.IsNaN(sigma) {
		return spectrum.Spectrum{}, fmt.Errorf("%w: sigma = %g Å", ErrInvalidWidth, sigma)
	}

	step, err := uniformStep(s.Wavelength)
	if err != nil {
		return spectrum.Spectrum{}, err
	}

	kernel := gaussianKernel(sigma, step)
	if len(kernel) == 1 {
		return s.Clone(), nil
	}

	out := s.Clone()

	if len(kernel) < directThreshold {
		convolveSameDirect(out.Flux, s.Flux, kernel)
		return out, nil
	}

	if err := convolveSameFFT(out.Flux, s.Flux, kernel); err != nil {
		return spectrum.Spectrum{}, err
	}

	return out, nil
}

// GaussianVelocity broadens the spectrum by a velocity dispersion
// sigmaKms (km/s). The equivalent wavelength width is taken at the
// center of the sampled range: σ_λ = λ_mid·σ_v/c.
func GaussianVelocity(s spectrum.Spectrum, sigmaKms float64) (spectrum.Spectrum, error) {
	if sigmaKms <= 0 || math.IsNaN(sigmaKms) {
		return spectrum.Spectrum{}, fmt.Errorf("%w: sigma = %g km/s", ErrInvalidWidth, sigmaKms)
	}

	if err := s.Validate(); err != nil {
		return spectrum.Spectrum{}, err
	}

	lo, hi := s.Bounds()
	mid := (lo + hi) / 2

	return Gaussian(s, mid*sigmaKms/units.SpeedOfLightKms)
}

func uniformStep(wav []float64) (float64, error) {
	if len(wav) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 samples", ErrIrregularGrid)
	}

	step := (wav[len(wav)-1] - wav[0]) / float64(len(wav)-1)

	for i := 1; i < len(wav); i++ {
		if math.Abs(wav[i]-wav[i-1]-step) > step*1e-6 {
			return 0, fmt.Errorf("%w: spacing %g at sample %d vs %g",
				ErrIrregularGrid, wav[i]-wav[i-1], i, step)
		}
	}

	return step, nil
}

// gaussianKernel builds a unit-sum Gaussian sampled on the grid step,
// truncated at 4σ.
func gaussianKernel(sigma, step float64) []float64 {
	// Below an eighth of the grid step the kernel degenerates to a
	// single tap.
	if 8*sigma < step {
		return []float64{1}
	}

	half := int(math.Ceil(4 * sigma / step))
	kernel := make([]float64, 2*half+1)

	for i := range kernel {
		d := float64(i-half) * step / sigma
		kernel[i] = math.Exp(-0.5 * d * d)
	}

	vecmath.ScaleBlockInPlace(kernel, 1/vecmath.Sum(kernel))

	return kernel
}

// convolveSameDirect computes the centered convolution with zero
// extension, writing len(src) samples to dst.
func convolveSameDirect(dst, src, kernel []float64) {
	half := len(kernel) / 2

	for i := range dst {
		acc := 0.0

		for j, k := range kernel {
			idx := i + j - half
			if idx < 0 || idx >= len(src) {
				continue
			}

			acc += k * src[idx]
		}

		dst[i] = acc
	}
}

func convolveSameFFT(dst, src, kernel []float64) error {
	half := len(kernel) / 2
	fftSize := nextPowerOf2(len(src) + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return fmt.Errorf("smooth: creating FFT plan: %w", err)
	}

	srcPadded := make([]complex128, fftSize)
	for i, v := range src {
		srcPadded[i] = complex(v, 0)
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	srcFreq := make([]complex128, fftSize)
	if err := plan.Forward(srcFreq, srcPadded); err != nil {
		return fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	kernelFreq := make([]complex128, fftSize)
	if err := plan.Forward(kernelFreq, kernelPadded); err != nil {
		return fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	for i := range srcFreq {
		srcFreq[i] *= kernelFreq[i]
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, srcFreq); err != nil {
		return fmt.Errorf("smooth: inverse FFT failed: %w", err)
	}

	for i := range dst {
		dst[i] = real(resultTime[i+half])
	}

	return nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
