package solarad

import "math"

//--------------------------------------
// Daily radiation estimation
//--------------------------------------

// Extraterrestrial radiation Ra for daily periods (FAO-56 eq.21).
//
// invDist, ws and declRad come from the solar geometry functions, latDeg is
// the site latitude in decimal degrees. The result is in MJ/m2/day; with
// unit "mm" it is converted to the evaporation equivalent (FAO-56 eq.20).
// Any other unit value selects the MJ form.
func ExtraterrestrialRadiation(invDist float64, ws float64, latDeg float64, declRad float64, unit string) float64 {
	lat := degreeToRad(latDeg)
	Ra := 1440 / math.Pi * 0.0820 * invDist *
		(ws*math.Sin(lat)*math.Sin(declRad) + math.Cos(lat)*math.Cos(declRad)*math.Sin(ws))
	if unit == "mm" {
		return 0.408 * Ra
	}
	return Ra
}

// Maximum daylight duration N [h] from the sunset hour angle (FAO-56 eq.34).
func DaylightHours(ws float64) float64 {
	return 24 / math.Pi * ws
}

// Shortwave radiation Rs [MJ/m2/day] estimated from extraterrestrial
// radiation and the daily air temperature range (Samani 2000).
// The result is NaN when Tmax < Tmin; callers must keep the extremes ordered.
func ShortwaveRadiation(Ra float64, Tmin float64, Tmax float64) float64 {
	TD := Tmax - Tmin

	// empirical adjustment coefficient (Samani 2000)
	KT := 0.00185*TD*TD - 0.0433*TD + 0.4023

	return KT * Ra * math.Sqrt(TD)
}

// Photosynthetically active radiation [MJ/m2/day] from shortwave radiation.
// The conversion factor is reported between 0.45 and 0.5 (Supit 2003).
func PAR(Rs float64) float64 {
	return 0.5 * Rs
}

// Photosynthetic photon flux [umol photons/m2/day] from PAR in J/m2/day.
// Converting PAR from MJ to J (x1e6) is the caller's responsibility.
func PPF(parJ float64) float64 {
	return parJ / 0.218
}

// Fraction of shortwave radiation arriving as direct beam (Spitters, per
// Johnson 2013). The diffuse fraction follows a four-piece rule on the
// atmospheric transmissivity Rs/Ra; the upper bound of each bracket is
// inclusive.
func DirectFraction(Rs float64, Ra float64) float64 {
	T := Rs / Ra

	var fd float64
	switch {
	case T <= 0.07:
		fd = 1
	case T <= 0.35:
		fd = 1 - 2.3*(T-0.07)*(T-0.07)
	case T <= 0.75:
		fd = 1.33 - 1.46*T
	default:
		fd = 0.23
	}

	return 1 - fd
}

// Reports whether the daily temperature extremes are ordered such that
// ShortwaveRadiation yields a real number.
func TemperatureRangeValid(Tmin float64, Tmax float64) bool {
	return Tmax >= Tmin
}
