// Package spectrum provides the sampled spectrum value type shared by the
// photometry packages, together with padding, resampling, and scaling
// primitives operating on its wavelength/flux arrays.
package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/interp"
)

// Errors returned by spectrum operations.
var (
	ErrEmptySpectrum  = errors.New("spectrum: empty spectrum")
	ErrLengthMismatch = errors.New("spectrum: wavelength and flux lengths differ")
	ErrUnsorted       = errors.New("spectrum: wavelengths must be strictly increasing")
	ErrInvalidRange   = errors.New("spectrum: invalid wavelength range")
)

// Spectrum is a tabulated flux-density spectrum.
//
// Wavelength is in Å and must be strictly increasing. Flux is the flux
// density f_λ in erg s⁻¹ cm⁻² Å⁻¹. Phase is the epoch of the spectrum in
// days relative to the template's reference epoch and is carried through
// all transformations unchanged.
type Spectrum struct {
	Wavelength []float64
	Flux       []float64
	Phase      float64
}

// Validate checks the structural invariants of the spectrum.
func (s Spectrum) Validate() error {
	if len(s.Wavelength) == 0 {
		return ErrEmptySpectrum
	}

	if len(s.Wavelength) != len(s.Flux) {
		return ErrLengthMismatch
	}

	for i := 1; i < len(s.Wavelength); i++ {
		if s.Wavelength[i] <= s.Wavelength[i-1] {
			return fmt.Errorf("%w: sample %d (%g after %g)",
				ErrUnsorted, i, s.Wavelength[i], s.Wavelength[i-1])
		}
	}

	return nil
}

// Clone returns a deep copy of the spectrum.
func (s Spectrum) Clone() Spectrum {
	out := Spectrum{
		Wavelength: make([]float64, len(s.Wavelength)),
		Flux:       make([]float64, len(s.Flux)),
		Phase:      s.Phase,
	}
	copy(out.Wavelength, s.Wavelength)
	copy(out.Flux, s.Flux)

	return out
}

// Bounds returns the first and last sampled wavelength.
// Both are zero for an empty spectrum.
func (s Spectrum) Bounds() (lo, hi float64) {
	if len(s.Wavelength) == 0 {
		return 0, 0
	}

	return s.Wavelength[0], s.Wavelength[len(s.Wavelength)-1]
}

// IsZero reports whether every flux sample is exactly zero.
func (s Spectrum) IsZero() bool {
	for _, f := range s.Flux {
		if f != 0 {
			return false
		}
	}

	return true
}

// Scale returns a copy of the spectrum with every flux sample multiplied
// by factor. The wavelength axis is shared semantics-wise but copied so
// the result is independent of the receiver.
func (s Spectrum) Scale(factor float64) Spectrum {
	out := s.Clone()
	vecmath.ScaleBlockInPlace(out.Flux, factor)

	return out
}

// Pad extends the spectrum so that its sampled range covers [lo, hi],
// assuming zero flux outside the original range. The flux ramps to zero
// over one native sample spacing at each extended edge, then stays zero
// out to the requested bound. A spectrum already covering the range is
// returned as a copy unchanged.
func (s Spectrum) Pad(lo, hi float64) (Spectrum, error) {
	if err := s.Validate(); err != nil {
		return Spectrum{}, err
	}

	if hi <= lo {
		return Spectrum{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
	}

	first, last := s.Bounds()

	var wav, flux []float64

	if lo < first {
		step := frontStep(s.Wavelength)
		if edge := first - step; edge > lo {
			wav = append(wav, lo, edge)
			flux = append(flux, 0, 0)
		} else {
			wav = append(wav, lo)
			flux = append(flux, 0)
		}
	}

	wav = append(wav, s.Wavelength...)
	flux = append(flux, s.Flux...)

	if hi > last {
		step := backStep(s.Wavelength)
		if edge := last + step; edge < hi {
			wav = append(wav, edge, hi)
			flux = append(flux, 0, 0)
		} else {
			wav = append(wav, hi)
			flux = append(flux, 0)
		}
	}

	return Spectrum{Wavelength: wav, Flux: flux, Phase: s.Phase}, nil
}

func frontStep(wav []float64) float64 {
	if len(wav) < 2 {
		return 1
	}

	return wav[1] - wav[0]
}

func backStep(wav []float64) float64 {
	if len(wav) < 2 {
		return 1
	}

	return wav[len(wav)-1] - wav[len(wav)-2]
}

// Resample evaluates the spectrum on the given wavelength grid by
// piecewise-linear interpolation, with zero flux outside the sampled
// range. The grid must be strictly increasing.
func (s Spectrum) Resample(grid []float64) (Spectrum, error) {
	if err := s.Validate(); err != nil {
		return Spectrum{}, err
	}

	if len(grid) == 0 {
		return Spectrum{}, ErrInvalidRange
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(s.Wavelength, s.Flux); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: fitting interpolant: %w", err)
	}

	first, last := s.Bounds()

	out := Spectrum{
		Wavelength: make([]float64, len(grid)),
		Flux:       make([]float64, len(grid)),
		Phase:      s.Phase,
	}
	copy(out.Wavelength, grid)

	for i, w := range grid {
		if w < first || w > last {
			continue
		}

		out.Flux[i] = pl.Predict(w)
	}

	return out, nil
}
