package spectrum

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"
)

// Stats holds summary statistics of a spectrum.
type Stats struct {
	Samples        int
	MinWavelength  float64 // Å
	MaxWavelength  float64 // Å
	PeakFlux       float64 // erg s⁻¹ cm⁻² Å⁻¹
	PeakWavelength float64 // Å
	MeanFlux       float64 // arithmetic mean of the samples
	IntegratedFlux float64 // trapezoid ∫f_λ dλ, erg s⁻¹ cm⁻²
}

// Analyze computes summary statistics for the spectrum.
func Analyze(s Spectrum) (Stats, error) {
	if err := s.Validate(); err != nil {
		return Stats{}, err
	}

	st := Stats{Samples: len(s.Flux)}
	st.MinWavelength, st.MaxWavelength = s.Bounds()

	st.PeakFlux = s.Flux[0]
	st.PeakWavelength = s.Wavelength[0]

	for i, f := range s.Flux {
		if f > st.PeakFlux {
			st.PeakFlux = f
			st.PeakWavelength = s.Wavelength[i]
		}
	}

	st.MeanFlux = vecmath.Sum(s.Flux) / float64(len(s.Flux))

	if len(s.Flux) > 1 {
		st.IntegratedFlux = integrate.Trapezoidal(s.Wavelength, s.Flux)
	}

	return st, nil
}
