// Package synphot computes synthetic AB magnitudes of sampled spectra
// through tabulated bandpass curves, and rescales spectra to a target
// magnitude.
//
// The magnitude of a spectrum f_λ through a curve T is the
// energy-weighted mean f_ν referred to the AB zero point:
//
//	⟨f_ν⟩ = ∫ f_λ(λ) T(λ) dλ / ∫ T(λ) (c/λ²) dλ
//	m_AB  = −2.5·log10(⟨f_ν⟩ / 3631 Jy)
//
// Integration is trapezoidal on the union of the spectrum and curve
// grids restricted to the curve's support, with zero flux assumed
// outside the spectrum's sampled range. Refining the grid beyond the
// native resolution moves the result by well under a millimag.
package synphot
