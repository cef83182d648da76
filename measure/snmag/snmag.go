package snmag

import (
	"errors"

	"github.com/cwbudde/algo-synphot/phot/bandpass"
	"github.com/cwbudde/algo-synphot/phot/cosmo"
	"github.com/cwbudde/algo-synphot/phot/redshift"
	"github.com/cwbudde/algo-synphot/phot/synphot"
	"github.com/cwbudde/algo-synphot/template"
)

// Errors returned by the observed-magnitude pipeline.
var (
	ErrNoTemplate = errors.New("snmag: template path not configured")
)

const (
	defaultAbsoluteMag     = -19.3
	defaultReferenceFilter = "r"
)

// Config holds pipeline parameters.
type Config struct {
	// TemplatePath locates the phase/wavelength/flux template table.
	TemplatePath string

	// AbsoluteMag is the target rest-frame absolute magnitude through
	// the reference filter. Zero selects the Type Ia default of -19.3.
	AbsoluteMag float64

	// ReferenceFilter names the bandpass the absolute magnitude is
	// defined in. Empty selects "r".
	ReferenceFilter string

	// Cosmology supplies luminosity distances. The zero value selects
	// the WMAP9-equivalent default.
	Cosmology cosmo.FlatLCDM

	// Store optionally shares a template cache across calculators.
	Store *template.Store

	// Notice receives informational messages, currently only the
	// nearest-phase substitution. May be nil.
	Notice func(string)
}

// Result holds one observed-magnitude evaluation.
type Result struct {
	Magnitude float64 // apparent AB magnitude
	Phase     float64 // phase actually used (after nearest-phase fallback)
	Redshift  float64
	Filter    string  // full bandpass name
	DistMpc   float64 // luminosity distance, 0 at z = 0
}

// Calculator evaluates observed magnitudes for one template.
type Calculator struct {
	cfg Config
}

// New creates a calculator, filling unset Config fields with defaults.
func New(cfg Config) *Calculator {
	cfg = normalizeConfig(cfg)
	return &Calculator{cfg: cfg}
}

// ObservedMagnitude is a one-shot evaluation.
func ObservedMagnitude(cfg Config, phase, z float64, filterChoice string) (Result, error) {
	return New(cfg).ObservedMagnitude(phase, z, filterChoice)
}

// ObservedMagnitude computes the apparent AB magnitude of the template
// at the given phase, observed at redshift z through the named filter.
//
// Filter and redshift validation happen before any file access, so an
// unknown filter choice or z <= -1 never touches the template file.
func (c *Calculator) ObservedMagnitude(phase, z float64, filterChoice string) (Result, error) {
	band, err := bandpass.Lookup(filterChoice)
	if err != nil {
		return Result{}, err
	}

	ref, err := bandpass.Lookup(c.cfg.ReferenceFilter)
	if err != nil {
		return Result{}, err
	}

	if err := cosmo.CheckRedshift(z); err != nil {
		return Result{}, err
	}

	if c.cfg.TemplatePath == "" {
		return Result{}, ErrNoTemplate
	}

	tbl, err := c.cfg.Store.Table(c.cfg.TemplatePath)
	if err != nil {
		return Result{}, err
	}

	rest, err := tbl.Select(phase, c.cfg.Notice)
	if err != nil {
		return Result{}, err
	}

	scaled, err := synphot.ScaleToAB(rest, ref, c.cfg.AbsoluteMag)
	if err != nil {
		return Result{}, err
	}

	observed, err := redshift.Transform(scaled, z, c.cfg.Cosmology)
	if err != nil {
		return Result{}, err
	}

	mag, err := synphot.ABMagnitude(observed, band)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Magnitude: mag,
		Phase:     rest.Phase,
		Redshift:  z,
		Filter:    band.Name(),
	}

	if z != 0 {
		// Validated above, cannot fail here.
		res.DistMpc, _ = c.cfg.Cosmology.LuminosityDistance(z)
	}

	return res, nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.AbsoluteMag == 0 {
		cfg.AbsoluteMag = defaultAbsoluteMag
	}

	if cfg.ReferenceFilter == "" {
		cfg.ReferenceFilter = defaultReferenceFilter
	}

	if cfg.Cosmology == (cosmo.FlatLCDM{}) {
		cfg.Cosmology = cosmo.Default()
	}

	if cfg.Store == nil {
		cfg.Store = template.NewStore()
	}

	return cfg
}
