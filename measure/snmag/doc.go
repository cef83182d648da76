// Package snmag computes the apparent AB magnitude of a supernova
// spectral template observed at a given phase and redshift.
//
// The pipeline runs in four steps: load the template spectrum at the
// requested phase, rescale it so its rest-frame magnitude through the
// reference filter equals the configured absolute magnitude, redshift
// it to the observer frame, and synthesize the magnitude through the
// requested filter.
//
//	calc := snmag.New(snmag.Config{TemplatePath: "hsiao.dat"})
//	res, err := calc.ObservedMagnitude(0, 0.05, "r")
package snmag
