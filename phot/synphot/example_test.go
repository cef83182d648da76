package synphot_test

import (
	"fmt"

	"github.com/cwbudde/algo-synphot/phot/bandpass"
	"github.com/cwbudde/algo-synphot/phot/spectrum"
	"github.com/cwbudde/algo-synphot/phot/synphot"
	"github.com/cwbudde/algo-synphot/phot/units"
)

func ExampleScaleToAB() {
	r, err := bandpass.Lookup("r")
	if err != nil {
		fmt.Println(err)
		return
	}

	// A coarse flat-f_ν spectrum of arbitrary brightness.
	wav := []float64{4000, 5000, 6000, 7000, 8000}
	flux := make([]float64, len(wav))
	for i, w := range wav {
		flux[i] = units.FnuToFlam(1e-25, w)
	}

	s := spectrum.Spectrum{Wavelength: wav, Flux: flux}

	scaled, err := synphot.ScaleToAB(s, r, 17)
	if err != nil {
		fmt.Println(err)
		return
	}

	mag, err := synphot.ABMagnitude(scaled, r)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("m_r = %.3f\n", mag)
	// Output:
	// m_r = 17.000
}
