package bandpass

// Tabulated throughput curves. The SDSS curves are the reference 1.3
// airmass responses including atmospheric extinction, resampled to a 50 Å
// (g: 100 Å) grid; bessell-b is the standard Bessell (1990) B response
// normalized to unit peak.

func mustCurve(name string, wav, thr []float64) *Curve {
	c, err := New(name, wav, thr)
	if err != nil {
		panic(err)
	}

	return c
}

func init() {
	register(mustCurve("sdss-r", sdssRWav, sdssRThr))
	register(mustCurve("sdss-g", sdssGWav, sdssGThr))
	register(mustCurve("bessell-b", bessellBWav, bessellBThr))
}

var sdssRWav = []float64{
	5380, 5430, 5480, 5530, 5580, 5630, 5680, 5730, 5780, 5830,
	5880, 5930, 5980, 6030, 6080, 6130, 6180, 6230, 6280, 6330,
	6380, 6430, 6480, 6530, 6580, 6630, 6680, 6730, 6780, 6830,
	6880, 6930, 6980, 7030, 7080, 7130, 7180, 7230,
}

var sdssRThr = []float64{
	0.000, 0.005, 0.027, 0.096, 0.250, 0.415, 0.505, 0.540, 0.552, 0.555,
	0.554, 0.551, 0.547, 0.543, 0.539, 0.535, 0.531, 0.527, 0.523, 0.519,
	0.515, 0.511, 0.507, 0.503, 0.499, 0.495, 0.490, 0.481, 0.460, 0.421,
	0.361, 0.283, 0.198, 0.121, 0.064, 0.029, 0.011, 0.000,
}

var sdssGWav = []float64{
	3630, 3730, 3830, 3930, 4030, 4130, 4230, 4330, 4430, 4530,
	4630, 4730, 4830, 4930, 5030, 5130, 5230, 5330, 5430, 5530,
	5630, 5730, 5830,
}

var sdssGThr = []float64{
	0.000, 0.013, 0.077, 0.193, 0.290, 0.367, 0.425, 0.467, 0.497, 0.518,
	0.531, 0.538, 0.539, 0.535, 0.527, 0.516, 0.502, 0.483, 0.409, 0.234,
	0.093, 0.025, 0.000,
}

var bessellBWav = []float64{
	3600, 3700, 3800, 3900, 4000, 4100, 4200, 4300, 4400, 4500,
	4600, 4700, 4800, 4900, 5000, 5100, 5200, 5300, 5400, 5500,
	5600,
}

var bessellBThr = []float64{
	0.000, 0.030, 0.134, 0.567, 0.920, 0.978, 1.000, 0.978, 0.935, 0.853,
	0.740, 0.640, 0.536, 0.424, 0.325, 0.235, 0.150, 0.095, 0.043, 0.009,
	0.000,
}
