package solarad

import "math"

//--------------------------------------
// Relative humidity estimation
//--------------------------------------

// Relative humidity (0-1) estimated from the daily air temperature extremes
// (Rotz 2014). The estimate grows with the temperature range and is clamped
// at 1; a negative range yields a negative value which is passed through
// unclamped.
func RelativeHumidity(Tmin float64, Tmax float64) float64 {
	return math.Min(1, 1-math.Exp(-0.2*(Tmax-Tmin)))
}
