// Package bandpass provides the photometric filter curves known to this
// module, throughput evaluation on arbitrary wavelengths, and per-curve
// spectral metrics.
//
// Curves are tabulated fractional throughputs over a finite support
// interval; outside the support the throughput is zero. The registry maps
// both full curve names ("sdss-r") and the short choice letters used by
// the observed-magnitude pipeline ("r").
package bandpass

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Errors returned by bandpass functions.
var (
	ErrUnknownBandpass = errors.New("bandpass: unknown bandpass")
	ErrInvalidCurve    = errors.New("bandpass: invalid throughput curve")
)

// Curve is a named photometric bandpass with a tabulated throughput.
// Curves are immutable after construction.
type Curve struct {
	name string
	wav  []float64
	thr  []float64
	pl   interp.PiecewiseLinear
}

// New builds a bandpass curve from tabulated samples. The wavelengths
// must be strictly increasing, at least two samples long, and every
// throughput value must be non-negative.
func New(name string, wav, thr []float64) (*Curve, error) {
	if len(wav) < 2 || len(wav) != len(thr) {
		return nil, fmt.Errorf("%w: need matching wavelength/throughput tables of length >= 2", ErrInvalidCurve)
	}

	for i := range wav {
		if i > 0 && wav[i] <= wav[i-1] {
			return nil, fmt.Errorf("%w: wavelengths not strictly increasing at sample %d", ErrInvalidCurve, i)
		}

		if thr[i] < 0 {
			return nil, fmt.Errorf("%w: negative throughput %g at %g Å", ErrInvalidCurve, thr[i], wav[i])
		}
	}

	c := &Curve{
		name: name,
		wav:  append([]float64(nil), wav...),
		thr:  append([]float64(nil), thr...),
	}

	if err := c.pl.Fit(c.wav, c.thr); err != nil {
		return nil, fmt.Errorf("bandpass: fitting throughput interpolant: %w", err)
	}

	return c, nil
}

// Name returns the full curve name.
func (c *Curve) Name() string { return c.name }

// Support returns the wavelength interval [lo, hi] outside which the
// throughput is zero.
func (c *Curve) Support() (lo, hi float64) {
	return c.wav[0], c.wav[len(c.wav)-1]
}

// At evaluates the throughput at the given wavelength by linear
// interpolation of the tabulated samples. Wavelengths outside the
// support return zero.
func (c *Curve) At(wav float64) float64 {
	lo, hi := c.Support()
	if wav < lo || wav > hi {
		return 0
	}

	return c.pl.Predict(wav)
}

// Grid returns a copy of the native tabulation wavelengths.
func (c *Curve) Grid() []float64 {
	return append([]float64(nil), c.wav...)
}

// registry maps lookup keys to curves. Built once at init from the
// tabulated curves in curves.go.
var registry = map[string]*Curve{}

// choices maps the short letter codes accepted by the pipeline entry
// point to full curve names.
var choices = map[string]string{
	"g": "sdss-g",
	"r": "sdss-r",
	"b": "bessell-b",
}

func register(c *Curve) {
	registry[c.name] = c
}

// Lookup resolves a bandpass by full name or by short choice letter.
// Unknown names return ErrUnknownBandpass.
func Lookup(name string) (*Curve, error) {
	if full, ok := choices[name]; ok {
		name = full
	}

	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBandpass, name)
	}

	return c, nil
}

// Names returns the full names of all registered curves, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// Choices returns the short choice letters accepted by Lookup, sorted.
func Choices() []string {
	out := make([]string, 0, len(choices))
	for k := range choices {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}
