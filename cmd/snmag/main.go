// Command snmag prints synthetic observed magnitudes for a supernova
// spectral template.
//
// Usage:
//
//	snmag -template hsiao.dat [flags]
//
// Examples:
//
//	snmag -template hsiao.dat -z 0.05
//	snmag -template hsiao.dat -phase 0 -z 0.05,0.069,0.1 -filter r,g
//	snmag -template hsiao.dat -M -19.1 -ref b -z 0.02
//	snmag -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-synphot/measure/snmag"
	"github.com/cwbudde/algo-synphot/phot/bandpass"
)

func main() {
	templatePath := flag.String("template", "", "path to the phase/wav/flux template table")
	phase := flag.Float64("phase", 0, "template phase in days relative to maximum light")
	zList := flag.String("z", "0.05", "comma-separated redshifts")
	filters := flag.String("filter", "r", "comma-separated filter choices (see -list)")
	absMag := flag.Float64("M", -19.3, "absolute AB magnitude in the reference filter")
	refFilter := flag.String("ref", "r", "reference filter for the absolute magnitude")
	list := flag.Bool("list", false, "list available filters")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: snmag -template FILE [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints synthetic observed AB magnitudes for a supernova template.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  snmag -template hsiao.dat -z 0.05\n")
		fmt.Fprintf(os.Stderr, "  snmag -template hsiao.dat -z 0.05,0.069 -filter r,g\n")
		fmt.Fprintf(os.Stderr, "  snmag -list\n")
	}
	flag.Parse()

	if *list {
		printFilters()
		return
	}

	if *templatePath == "" {
		fmt.Fprintf(os.Stderr, "error: -template is required\n")
		flag.Usage()
		os.Exit(1)
	}

	redshifts, err := parseFloats(*zList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: bad -z value: %v\n", err)
		os.Exit(1)
	}

	choices := splitList(*filters)
	if len(choices) == 0 {
		fmt.Fprintf(os.Stderr, "error: no filters given\n")
		os.Exit(1)
	}

	calc := snmag.New(snmag.Config{
		TemplatePath:    *templatePath,
		AbsoluteMag:     *absMag,
		ReferenceFilter: *refFilter,
		Notice: func(msg string) {
			fmt.Fprintf(os.Stderr, "note: %s\n", msg)
		},
	})

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Filter\tPhase [d]\tz\td_L [Mpc]\tm_AB\n")
	fmt.Fprintf(tw, "------\t---------\t-\t---------\t----\n")

	for _, choice := range choices {
		for _, z := range redshifts {
			res, err := calc.ObservedMagnitude(*phase, z, choice)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			fmt.Fprintf(tw, "%s\t%.1f\t%.4f\t%.2f\t%.4f\n",
				res.Filter, res.Phase, res.Redshift, res.DistMpc, res.Magnitude)
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}
}

func printFilters() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Choice\tBandpass\tSupport [Å]\tEff. λ [Å]\tFWHM [Å]\n")

	for _, choice := range bandpass.Choices() {
		c, err := bandpass.Lookup(choice)
		if err != nil {
			continue
		}

		lo, hi := c.Support()
		a := bandpass.Analyze(c)

		fmt.Fprintf(tw, "%s\t%s\t%.0f-%.0f\t%.0f\t%.0f\n",
			choice, c.Name(), lo, hi, a.EffectiveWavelength, a.FWHM)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func parseFloats(list string) ([]float64, error) {
	parts := splitList(list)
	out := make([]float64, 0, len(parts))

	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", p)
		}

		out = append(out, v)
	}

	return out, nil
}

func splitList(list string) []string {
	var out []string

	for _, p := range strings.Split(list, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
