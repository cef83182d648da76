// Package units fixes the physical unit conventions used across the
// photometry packages and provides explicit, lossless conversions.
//
// Conventions at every interface boundary:
//
//   - wavelength:            Å (angstrom)
//   - flux density (f_λ):    erg s⁻¹ cm⁻² Å⁻¹
//   - flux density (f_ν):    erg s⁻¹ cm⁻² Hz⁻¹
//   - luminosity density:    erg s⁻¹ Å⁻¹
//   - distance:              parsec / megaparsec / cm as named
package units

import "math"

// Physical constants.
const (
	// SpeedOfLightAA is the speed of light in Å/s.
	SpeedOfLightAA = 2.99792458e18

	// SpeedOfLightKms is the speed of light in km/s.
	SpeedOfLightKms = 299792.458

	// Jansky is 1 Jy expressed in erg s⁻¹ cm⁻² Hz⁻¹.
	Jansky = 1e-23

	// ABZeroFnu is the AB system reference flux density (3631 Jy)
	// in erg s⁻¹ cm⁻² Hz⁻¹.
	ABZeroFnu = 3631 * Jansky

	// ParsecCm is 1 pc in cm.
	ParsecCm = 3.0856775814913673e18

	// MpcCm is 1 Mpc in cm.
	MpcCm = ParsecCm * 1e6
)

// FlamToFnu converts f_λ [erg s⁻¹ cm⁻² Å⁻¹] at wavelength wav [Å]
// to f_ν [erg s⁻¹ cm⁻² Hz⁻¹] via f_ν = f_λ·λ²/c.
func FlamToFnu(flam, wav float64) float64 {
	return flam * wav * wav / SpeedOfLightAA
}

// FnuToFlam converts f_ν [erg s⁻¹ cm⁻² Hz⁻¹] at wavelength wav [Å]
// to f_λ [erg s⁻¹ cm⁻² Å⁻¹].
func FnuToFlam(fnu, wav float64) float64 {
	return fnu * SpeedOfLightAA / (wav * wav)
}

// FnuToAB converts a flux density f_ν [erg s⁻¹ cm⁻² Hz⁻¹] to an AB
// magnitude. Returns +Inf for non-positive flux.
func FnuToAB(fnu float64) float64 {
	if fnu <= 0 {
		return math.Inf(1)
	}

	return -2.5 * math.Log10(fnu/ABZeroFnu)
}

// ABToFnu converts an AB magnitude to f_ν [erg s⁻¹ cm⁻² Hz⁻¹].
func ABToFnu(mag float64) float64 {
	return ABZeroFnu * math.Pow(10, -0.4*mag)
}

// LuminosityDensity converts a flux density measured at distance
// distCm [cm] to a specific luminosity: L_λ = 4π·d²·f_λ.
func LuminosityDensity(flam, distCm float64) float64 {
	return 4 * math.Pi * distCm * distCm * flam
}

// FluxDensity converts a specific luminosity to the flux density an
// observer at distance distCm [cm] would measure under the inverse
// square law: f_λ = L_λ / (4π·d²).
func FluxDensity(lum, distCm float64) float64 {
	return lum / (4 * math.Pi * distCm * distCm)
}

// PcToCm converts parsecs to cm.
func PcToCm(pc float64) float64 { return pc * ParsecCm }

// MpcToCm converts megaparsecs to cm.
func MpcToCm(mpc float64) float64 { return mpc * MpcCm }
