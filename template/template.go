// Package template loads tabulated spectral templates.
//
// A template table is whitespace-delimited text with three numeric
// columns per row — phase [days], wavelength [Å], flux density
// [erg s⁻¹ cm⁻² Å⁻¹ at the 10 pc reference distance] — ordered by phase
// and, within a phase, by increasing wavelength. One optional header row
// and '#' comment lines are tolerated.
package template

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-synphot/phot/spectrum"
)

// Errors returned by template loading.
var (
	ErrNoData = errors.New("template: no usable rows in template table")
)

type row struct {
	phase float64
	wav   float64
	flux  float64
}

// Table is a parsed spectral template covering one or more phases.
type Table struct {
	rows []row

	// phases holds the distinct phase values in file order, which is
	// also the tie-break order for nearest-phase selection.
	phases []float64
}

// ParseFile reads and parses a template table from disk.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Parse parses a template table. Tables with zero data rows, a wrong
// column count, or non-numeric data fields fail with ErrNoData.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	sawHeader := false

	for sc.Scan() {
		lineNo++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d has %d columns, want 3", ErrNoData, lineNo, len(fields))
		}

		rec, err := parseRow(fields)
		if err != nil {
			// Tolerate a single leading header row ("phase wav flux").
			if len(t.rows) == 0 && !sawHeader {
				sawHeader = true
				continue
			}

			return nil, fmt.Errorf("%w: line %d: %v", ErrNoData, lineNo, err)
		}

		t.addRow(rec)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}

	if len(t.rows) == 0 {
		return nil, ErrNoData
	}

	return t, nil
}

func parseRow(fields []string) (row, error) {
	var (
		rec row
		err error
	)

	if rec.phase, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return row{}, fmt.Errorf("bad phase %q", fields[0])
	}

	if rec.wav, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return row{}, fmt.Errorf("bad wavelength %q", fields[1])
	}

	if rec.flux, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return row{}, fmt.Errorf("bad flux %q", fields[2])
	}

	return rec, nil
}

func (t *Table) addRow(rec row) {
	t.rows = append(t.rows, rec)

	for _, p := range t.phases {
		if p == rec.phase {
			return
		}
	}

	t.phases = append(t.phases, rec.phase)
}

// Phases returns the distinct phases in file order.
func (t *Table) Phases() []float64 {
	return append([]float64(nil), t.phases...)
}

// Slice extracts the spectrum at an exactly matching phase. The second
// return reports whether the phase is present.
func (t *Table) Slice(phase float64) (spectrum.Spectrum, bool) {
	s := spectrum.Spectrum{Phase: phase}

	for _, rec := range t.rows {
		if rec.phase != phase {
			continue
		}

		s.Wavelength = append(s.Wavelength, rec.wav)
		s.Flux = append(s.Flux, rec.flux)
	}

	return s, len(s.Wavelength) > 0
}

// Nearest returns the available phase closest to the request. Ties are
// broken toward the phase appearing first in the file.
func (t *Table) Nearest(phase float64) float64 {
	best := t.phases[0]
	bestDiff := math.Abs(phase - best)

	for _, p := range t.phases[1:] {
		if d := math.Abs(phase - p); d < bestDiff {
			best = p
			bestDiff = d
		}
	}

	return best
}

// Select extracts the spectrum at the requested phase, substituting the
// nearest available phase when no exact match exists. A substitution is
// reported through notice (if non-nil); it is an approximation, not an
// error. The returned spectrum's Phase field holds the phase actually
// used.
func (t *Table) Select(phase float64, notice func(string)) (spectrum.Spectrum, error) {
	s, ok := t.Slice(phase)
	if !ok {
		nearest := t.Nearest(phase)
		if notice != nil {
			notice(fmt.Sprintf("template: no spectrum at phase %g, using nearest phase %g", phase, nearest))
		}

		s, _ = t.Slice(nearest)
	}

	if err := s.Validate(); err != nil {
		return spectrum.Spectrum{}, fmt.Errorf("template: phase %g slice: %w", s.Phase, err)
	}

	return s, nil
}
