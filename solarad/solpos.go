package solarad

import "math"

//--------------------------------------
// Solar geometry (Allen 1998, FAO-56)
//--------------------------------------

// Inverse relative Earth-Sun distance d_r (dimensionless) for the 1-based
// day of the year.
//
// Note:
//
//	The divisor 356 is carried over verbatim from the reference
//	implementation (Johnson 2013). FAO-56 eq.23 uses 365; see
//	InverseRelativeDistanceFAO56 for the textbook form.
func InverseRelativeDistance(doy int) float64 {
	return 1 + 0.033*math.Cos(2*math.Pi/356*float64(doy))
}

// Inverse relative Earth-Sun distance with the FAO-56 eq.23 divisor of 365.
func InverseRelativeDistanceFAO56(doy int) float64 {
	return 1 + 0.033*math.Cos(2*math.Pi/365*float64(doy))
}

// Solar declination [rad] for the 1-based day of the year (FAO-56 eq.24).
func SolarDeclination(doy int) float64 {
	return 0.409 * math.Sin(2*math.Pi/365*float64(doy)-1.39)
}

// Sunset hour angle ws [rad] (FAO-56 eq.25).
// During polar day or polar night the argument to the inverse cosine leaves
// [-1, 1] and the result is NaN, which is propagated as-is.
func SunsetHourAngle(latDeg float64, declRad float64) float64 {
	return math.Acos(-math.Tan(degreeToRad(latDeg)) * math.Tan(declRad))
}

// Reports whether SunsetHourAngle yields a real number for the latitude and
// declination, i.e. whether the site sees both a sunrise and a sunset that day.
func SunsetHourAngleDefined(latDeg float64, declRad float64) bool {
	x := -math.Tan(degreeToRad(latDeg)) * math.Tan(declRad)
	return -1 <= x && x <= 1
}

func radToDegree(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
