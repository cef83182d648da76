// Package redshift maps rest-frame spectra defined at the 10 pc
// reference distance to the observed frame at a cosmological redshift.
package redshift

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synphot/phot/cosmo"
	"github.com/cwbudde/algo-synphot/phot/spectrum"
	"github.com/cwbudde/algo-synphot/phot/units"
)

// RefDistancePc is the reference distance at which rest-frame template
// flux densities are defined, in parsecs.
const RefDistancePc = 10

// Transform redshifts a rest-frame spectrum to redshift z.
//
// Each flux sample is read as flux at RefDistancePc and promoted to a
// specific luminosity L_λ = 4π·d_ref²·f_λ. The wavelength axis dilates
// by (1+z) and the observed flux density follows
//
//	f_λ,obs = L_λ / (4π·d_L(z)²·(1+z))
//
// where the extra (1+z) accounts for the stretching of the unit
// wavelength interval. z = 0 is the identity transform: the
// cosmological d_L vanishes at z = 0, so the reference distance itself
// serves as the observer distance there. Redshifts at or below -1 fail
// with cosmo.ErrInvalidRedshift.
func Transform(s spectrum.Spectrum, z float64, model cosmo.FlatLCDM) (spectrum.Spectrum, error) {
	if err := s.Validate(); err != nil {
		return spectrum.Spectrum{}, err
	}

	if err := cosmo.CheckRedshift(z); err != nil {
		return spectrum.Spectrum{}, err
	}

	if z == 0 {
		return s.Clone(), nil
	}

	dl, err := model.LuminosityDistance(z)
	if err != nil {
		return spectrum.Spectrum{}, err
	}

	refCm := units.PcToCm(RefDistancePc)
	dlCm := units.MpcToCm(dl)

	// Unit luminosity through the unit helpers keeps the 4π bookkeeping
	// in one place; the per-sample map is then a uniform scale.
	factor := units.FluxDensity(units.LuminosityDensity(1, refCm), dlCm) / (1 + z)

	out := spectrum.Spectrum{
		Wavelength: make([]float64, len(s.Wavelength)),
		Flux:       make([]float64, len(s.Flux)),
		Phase:      s.Phase,
	}

	vecmath.ScaleBlock(out.Wavelength, s.Wavelength, 1+z)
	vecmath.ScaleBlock(out.Flux, s.Flux, factor)

	return out, nil
}
