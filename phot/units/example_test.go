package units_test

import (
	"fmt"

	"github.com/cwbudde/algo-synphot/phot/units"
)

func ExampleFnuToAB() {
	// One hundredth of the AB reference flux is exactly 5 magnitudes.
	fmt.Printf("%.2f\n", units.FnuToAB(units.ABZeroFnu/100))
	// Output:
	// 5.00
}

func ExampleFlamToFnu() {
	fnu := units.FlamToFnu(1e-16, 5500)
	back := units.FnuToFlam(fnu, 5500)
	fmt.Printf("%.1e\n", back)
	// Output:
	// 1.0e-16
}
