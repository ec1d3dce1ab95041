package compliance

import "math"

// Bands of the free-chlorine CT table.
var (
	PHBands          = [...]float64{6.5, 7.0, 7.5, 8.0, 8.5, 9.0}
	TemperatureBands = [...]float64{5, 10, 15, 20, 25}
)

// ctTable[i][j] is the required CT (min·mg/L) for PHBands[i] and
// TemperatureBands[j].
var ctTable = [len(PHBands)][len(TemperatureBands)]float64{
	{46, 35, 23, 16, 12},
	{55, 41, 28, 19, 14},
	{65, 48, 32, 22, 16},
	{78, 58, 39, 26, 19},
	{92, 69, 46, 31, 23},
	{110, 82, 55, 37, 27},
}

// CTLookup is a table hit: the bands the inputs were snapped to and the value.
type CTLookup struct {
	PH           float64 `json:"ph"`
	TemperatureC float64 `json:"temperature_c"`
	PHBand       float64 `json:"ph_band"`
	TempBand     float64 `json:"temperature_band_c"`
	Required     float64 `json:"ct_required"`
	Snapped      bool    `json:"snapped"`
}

// RequiredCT returns the tabulated CT for the band nearest to pH and
// temperature. Values are not interpolated; inputs outside the table take the
// edge band and a tie between two bands resolves to the more demanding one.
func RequiredCT(ph, temperatureC float64) float64 {
	return LookupCT(ph, temperatureC).Required
}

func LookupCT(ph, temperatureC float64) CTLookup {
	i := nearest(PHBands[:], ph, true)
	j := nearest(TemperatureBands[:], temperatureC, false)
	return CTLookup{
		PH:           ph,
		TemperatureC: temperatureC,
		PHBand:       PHBands[i],
		TempBand:     TemperatureBands[j],
		Required:     ctTable[i][j],
		Snapped:      PHBands[i] != ph || TemperatureBands[j] != temperatureC,
	}
}

// nearest picks the index of the band closest to v. CT grows with pH and
// falls with temperature, so ties go up for pH and down for temperature.
func nearest(bands []float64, v float64, preferHigher bool) int {
	if math.IsNaN(v) {
		if preferHigher {
			return len(bands) - 1
		}
		return 0
	}
	best := 0
	bestDist := math.Inf(1)
	for i, b := range bands {
		d := math.Abs(v - b)
		switch {
		case d < bestDist:
			best, bestDist = i, d
		case d == bestDist && preferHigher:
			best = i
		}
	}
	return best
}
