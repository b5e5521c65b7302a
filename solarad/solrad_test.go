package solarad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Extraterrestrial radiation test
// Reference case of FAO-56 example 8 (20 deg S, 3 September) with the
// legacy distance factor.
func Test_ExtraterrestrialRadiation(t *testing.T) {
	decl := SolarDeclination(246)
	ws := SunsetHourAngle(-20, decl)
	dr := InverseRelativeDistance(246)

	Ra := ExtraterrestrialRadiation(dr, ws, -20, decl, "")
	assert.True(t, math.Abs(Ra-32.299200761) < 1.0e-8)

	// evaporation equivalent
	RaMM := ExtraterrestrialRadiation(dr, ws, -20, decl, "mm")
	assert.True(t, math.Abs(RaMM-13.178073910) < 1.0e-8)
	assert.True(t, math.Abs(RaMM-0.408*Ra) < 1.0e-12)

	// unrecognized unit strings select the MJ form
	assert.Equal(t, Ra, ExtraterrestrialRadiation(dr, ws, -20, decl, "W/m2"))
}

func Test_DaylightHours(t *testing.T) {
	// ~June 21 at 45 deg N is close to the annual maximum
	N := DaylightHours(SunsetHourAngle(45, SolarDeclination(172)))
	assert.True(t, math.Abs(N-15.424833221) < 1.0e-8)
	assert.True(t, N > 15)

	// ~December 21 is close to the annual minimum
	N = DaylightHours(SunsetHourAngle(45, SolarDeclination(355)))
	assert.True(t, math.Abs(N-8.575321003) < 1.0e-8)
	assert.True(t, N < 9)
}

func Test_ShortwaveRadiation(t *testing.T) {
	// TD = 10 => KT = 0.1543
	Rs := ShortwaveRadiation(30, 10, 20)
	assert.True(t, math.Abs(Rs-14.638183289) < 1.0e-8)

	// zero range estimates zero radiation
	assert.Equal(t, 0.0, ShortwaveRadiation(30, 15, 15))
}

// An inverted temperature range takes the square root of a negative number;
// the NaN is propagated, not caught.
func Test_ShortwaveRadiation_InvertedRange(t *testing.T) {
	assert.True(t, math.IsNaN(ShortwaveRadiation(30, 20, 10)))

	assert.False(t, TemperatureRangeValid(20, 10))
	assert.True(t, TemperatureRangeValid(10, 20))
	assert.True(t, TemperatureRangeValid(15, 15))
}

func Test_PAR_PPF(t *testing.T) {
	assert.Equal(t, 5.0, PAR(10.0))

	// 5 MJ of PAR in J
	assert.True(t, math.Abs(PPF(5.0e6)-22935779.816514) < 1.0e-6)
}

// Direct fraction test
// One case per piece of the diffuse-fraction rule.
func Test_DirectFraction(t *testing.T) {
	assert.Equal(t, 0.0, DirectFraction(0.05, 1))
	assert.True(t, math.Abs(DirectFraction(0.20, 1)-0.038870000) < 1.0e-8)
	assert.True(t, math.Abs(DirectFraction(0.50, 1)-0.400000000) < 1.0e-8)
	assert.True(t, math.Abs(DirectFraction(0.80, 1)-0.770000000) < 1.0e-8)
}

// A transmissivity sitting exactly on a bracket edge belongs to the bracket
// whose upper bound it equals.
func Test_DirectFraction_BracketEdges(t *testing.T) {
	// 0.07: first and second piece agree exactly
	assert.True(t, math.Abs(DirectFraction(0.07, 1)-0.0) < 1.0e-9)

	// 0.35 evaluates the quadratic piece
	want := 2.3 * (0.35 - 0.07) * (0.35 - 0.07)
	assert.True(t, math.Abs(DirectFraction(0.35, 1)-want) < 1.0e-9)

	// 0.75 evaluates the linear piece
	want = 1 - (1.33 - 1.46*0.75)
	assert.True(t, math.Abs(DirectFraction(0.75, 1)-want) < 1.0e-9)

	// the empirical pieces join within ~1e-2 of each other
	assert.True(t, math.Abs(DirectFraction(0.35, 1)-DirectFraction(0.35+1e-12, 1)) < 1.0e-2)
	assert.True(t, math.Abs(DirectFraction(0.75, 1)-DirectFraction(0.75+1e-12, 1)) < 1.0e-2)
}
