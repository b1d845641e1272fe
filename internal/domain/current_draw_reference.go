package domain

// referenceDrawAmps holds the bench-measured current draw indexed by remaining
// payload units, 0 through 200.
var referenceDrawAmps = [...]float64{
	15.23, 15.29, 15.34, 15.4, 15.46, 15.52, 15.58, 15.63, 15.69, 15.75,
	15.81, 15.87, 15.92, 15.98, 16.04, 16.1, 16.16, 16.21, 16.27, 16.33,
	16.39, 16.45, 16.5, 16.56, 16.62, 16.68, 16.74, 16.79, 16.85, 16.91,
	16.97, 17.03, 17.08, 17.14, 17.2, 17.26, 17.32, 17.37, 17.43, 17.49,
	17.55, 17.61, 17.66, 17.72, 17.78, 17.84, 17.9, 17.95, 18.01, 18.07,
	18.13, 18.19, 18.24, 18.3, 18.36, 18.42, 18.48, 18.53, 18.59, 18.65,
	18.71, 18.77, 18.82, 18.88, 18.95, 19.02, 19.09, 19.15, 19.22, 19.29,
	19.36, 19.42, 19.49, 19.56, 19.63, 19.69, 19.76, 19.83, 19.9, 19.96,
	20.03, 20.1, 20.17, 20.23, 20.3, 20.37, 20.44, 20.51, 20.57, 20.64,
	20.71, 20.78, 20.84, 20.91, 20.98, 21.05, 21.11, 21.18, 21.25, 21.32,
	21.38, 21.45, 21.52, 21.59, 21.65, 21.72, 21.79, 21.86, 21.92, 21.99,
	22.06, 22.13, 22.2, 22.26, 22.33, 22.4, 22.47, 22.53, 22.6, 22.67,
	22.74, 22.8, 22.87, 22.94, 23.01, 23.07, 23.14, 23.21, 23.28, 23.34,
	23.41, 23.48, 23.55, 23.61, 23.68, 23.75, 23.82, 23.89, 23.95, 24.02,
	24.09, 24.16, 24.22, 24.3, 24.37, 24.44, 24.52, 24.59, 24.66, 24.74,
	24.81, 24.89, 24.96, 25.03, 25.11, 25.18, 25.25, 25.33, 25.4, 25.48,
	25.55, 25.62, 25.7, 25.77, 25.84, 25.92, 25.99, 26.07, 26.14, 26.21,
	26.29, 26.36, 26.44, 26.51, 26.58, 26.66, 26.73, 26.8, 26.88, 26.95,
	27.03, 27.1, 27.17, 27.25, 27.32, 27.39, 27.47, 27.54, 27.62, 27.69,
	27.76, 27.84, 27.91, 27.98, 28.06, 28.13, 28.21, 28.28, 28.34, 28.41,
	28.48,
}

// ReferenceCurrentDrawTable returns a fresh copy of the measured table covering
// payload levels 0..200, answering misses with zero draw.
func ReferenceCurrentDrawTable() CurrentDrawTable {
	entries := make(map[int]float64, len(referenceDrawAmps))
	for units, amps := range referenceDrawAmps {
		entries[units] = amps
	}
	return NewCurrentDrawTable(entries)
}
