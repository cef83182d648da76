package spectrum

import (
	"errors"
	"math"
	"testing"
)

func ramp(lo, hi float64, n int) Spectrum {
	wav := make([]float64, n)
	flux := make([]float64, n)
	step := (hi - lo) / float64(n-1)

	for i := range wav {
		wav[i] = lo + float64(i)*step
		flux[i] = float64(i + 1)
	}

	return Spectrum{Wavelength: wav, Flux: flux}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		s    Spectrum
		want error
	}{
		{name: "empty", s: Spectrum{}, want: ErrEmptySpectrum},
		{
			name: "mismatch",
			s:    Spectrum{Wavelength: []float64{1, 2}, Flux: []float64{1}},
			want: ErrLengthMismatch,
		},
		{
			name: "unsorted",
			s:    Spectrum{Wavelength: []float64{1, 3, 2}, Flux: []float64{1, 1, 1}},
			want: ErrUnsorted,
		},
		{
			name: "duplicate",
			s:    Spectrum{Wavelength: []float64{1, 1, 2}, Flux: []float64{1, 1, 1}},
			want: ErrUnsorted,
		},
		{name: "valid", s: ramp(4000, 5000, 11), want: nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	s := ramp(4000, 5000, 5)
	c := s.Clone()
	c.Flux[0] = -99
	c.Wavelength[0] = -99

	if s.Flux[0] == -99 || s.Wavelength[0] == -99 {
		t.Fatal("Clone shares backing arrays")
	}
}

func TestScale(t *testing.T) {
	s := ramp(4000, 5000, 5)
	out := s.Scale(2.5)

	for i := range out.Flux {
		want := s.Flux[i] * 2.5
		if math.Abs(out.Flux[i]-want) > 1e-15 {
			t.Fatalf("sample %d: got %v want %v", i, out.Flux[i], want)
		}
	}

	// Receiver untouched.
	if s.Flux[0] != 1 {
		t.Fatalf("Scale mutated receiver: %v", s.Flux[0])
	}
}

func TestIsZero(t *testing.T) {
	s := Spectrum{Wavelength: []float64{1, 2, 3}, Flux: []float64{0, 0, 0}}
	if !s.IsZero() {
		t.Fatal("all-zero flux not detected")
	}

	s.Flux[1] = 1e-30
	if s.IsZero() {
		t.Fatal("nonzero flux reported as zero")
	}
}

func TestPadExtendsCoverage(t *testing.T) {
	s := ramp(4000, 5000, 11)

	out, err := s.Pad(3500, 5600)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}

	if err := out.Validate(); err != nil {
		t.Fatalf("padded spectrum invalid: %v", err)
	}

	lo, hi := out.Bounds()
	if lo != 3500 || hi != 5600 {
		t.Fatalf("bounds = [%v, %v], want [3500, 5600]", lo, hi)
	}

	// Padding carries zero flux.
	if out.Flux[0] != 0 || out.Flux[len(out.Flux)-1] != 0 {
		t.Fatal("padding flux must be zero")
	}

	// Original samples survive unchanged.
	if out.Flux[2] != s.Flux[0] || out.Wavelength[2] != s.Wavelength[0] {
		t.Fatalf("original first sample displaced: %v @ %v", out.Flux[2], out.Wavelength[2])
	}
}

func TestPadNoOpWithinRange(t *testing.T) {
	s := ramp(4000, 5000, 11)

	out, err := s.Pad(4100, 4900)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}

	if len(out.Wavelength) != len(s.Wavelength) {
		t.Fatalf("covered range grew: %d -> %d samples", len(s.Wavelength), len(out.Wavelength))
	}
}

func TestPadInvalidRange(t *testing.T) {
	s := ramp(4000, 5000, 11)

	if _, err := s.Pad(5000, 4000); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("Pad with inverted range: %v, want ErrInvalidRange", err)
	}
}

func TestResampleLinearExact(t *testing.T) {
	// A linear flux profile is reproduced exactly by linear interpolation.
	s := ramp(4000, 5000, 11)

	grid := []float64{3900, 4050, 4425, 4990, 5100}
	out, err := s.Resample(grid)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	want := []float64{0, 1.5, 5.25, 10.9, 0}
	for i := range grid {
		if math.Abs(out.Flux[i]-want[i]) > 1e-12 {
			t.Fatalf("grid[%d]=%v: got %v want %v", i, grid[i], out.Flux[i], want[i])
		}
	}
}

func TestResamplePreservesPhase(t *testing.T) {
	s := ramp(4000, 5000, 11)
	s.Phase = 3.5

	out, err := s.Resample([]float64{4500})
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	if out.Phase != 3.5 {
		t.Fatalf("Phase = %v, want 3.5", out.Phase)
	}
}

func TestAnalyze(t *testing.T) {
	s := Spectrum{
		Wavelength: []float64{4000, 4100, 4200, 4300},
		Flux:       []float64{1, 4, 2, 1},
	}

	st, err := Analyze(s)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if st.Samples != 4 {
		t.Fatalf("Samples = %d, want 4", st.Samples)
	}

	if st.PeakFlux != 4 || st.PeakWavelength != 4100 {
		t.Fatalf("peak = %v @ %v, want 4 @ 4100", st.PeakFlux, st.PeakWavelength)
	}

	if st.MeanFlux != 2 {
		t.Fatalf("MeanFlux = %v, want 2", st.MeanFlux)
	}

	// Trapezoid: 100*(2.5 + 3 + 1.5) = 700.
	if math.Abs(st.IntegratedFlux-700) > 1e-12 {
		t.Fatalf("IntegratedFlux = %v, want 700", st.IntegratedFlux)
	}
}

func TestAnalyzeInvalid(t *testing.T) {
	if _, err := Analyze(Spectrum{}); !errors.Is(err, ErrEmptySpectrum) {
		t.Fatalf("Analyze(empty) = %v, want ErrEmptySpectrum", err)
	}
}
