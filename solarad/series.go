package solarad

import (
	"fmt"
	"math"
	"time"

	"github.com/hhkbp2/go-logging"
)

// Estimated daily series
//
// All slices are index aligned with one entry per day of the requested
// range. Date and Doy are only filled by Estimate; EstimateYears produces
// the six numeric series alone.
type SolarSeries struct {
	N    []float64 // maximum daylight duration (h)
	Ra   []float64 // extraterrestrial radiation (MJ/m2/day)
	Rs   []float64 // shortwave radiation (MJ/m2/day)
	PAR  []float64 // photosynthetically active radiation (MJ/m2/day)
	PPF  []float64 // photosynthetic photon flux (umol photons/m2/day)
	Fs   []float64 // direct beam fraction of Rs (0-1)
	Date []string  // date (YYYY-MM-DD)
	Doy  []int     // 1-based day of year
}

// Returned by EstimateYears when the temperature series do not cover the
// requested year range exactly.
type LengthMismatchError struct {
	Expected int // calendar day count of [FirstYear, LastYear]
	Tmn      int // supplied minimum temperature values
	Tmx      int // supplied maximum temperature values
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("temperature series length mismatch: expected %d days, got Tmn=%d Tmx=%d",
		e.Expected, e.Tmn, e.Tmx)
}

// Estimates the daily radiation series for len(Tmn) days starting at
// startDate, advancing one calendar day per index.
//
// Args:
//
//	lat: latitude of the site in decimal degrees (not validated)
//	Tmn, Tmx: daily minimum and maximum air temperature (C), index aligned
//	startDate: first day of the series
//	modeDist: Earth-Sun distance formula, "legacy" or "FAO56"
//	          (anything else falls back to "legacy")
//
// Alongside the six estimated series, Date and Doy record the day each
// entry belongs to. Polar latitudes and days with Tmax < Tmin produce NaN
// entries; see ContainsNaN.
func Estimate(lat float64, Tmn []float64, Tmx []float64, startDate time.Time, modeDist string) *SolarSeries {
	s := &SolarSeries{}

	date := startDate
	for i := 0; i < len(Tmn); i++ {
		doy := DayOfYear(date)
		s.appendDay(lat, doy, Tmn[i], Tmx[i], modeDist)
		s.Date = append(s.Date, date.Format("2006-01-02"))
		s.Doy = append(s.Doy, doy)
		date = nextDay(date)
	}

	return s
}

// Estimates the daily radiation series for the full calendar years
// firstYear through lastYear (inclusive).
//
// The temperature series must hold exactly one value per day of the range,
// accounting for leap years; otherwise a *LengthMismatchError is returned
// and a diagnostic is logged. Date and Doy are not filled in this mode.
func EstimateYears(lat float64, Tmn []float64, Tmx []float64, firstYear int, lastYear int, modeDist string) (*SolarSeries, error) {
	total := 0
	for y := firstYear; y <= lastYear; y++ {
		total += DaysInYear(y)
	}

	if len(Tmn) != total || len(Tmx) != total {
		err := &LengthMismatchError{Expected: total, Tmn: len(Tmn), Tmx: len(Tmx)}
		logger := logging.GetLogger("solarad")
		logger.Warnf("years %d-%d: %s", firstYear, lastYear, err.Error())
		return nil, err
	}

	s := &SolarSeries{}

	i := 0
	for y := firstYear; y <= lastYear; y++ {
		days := DaysInYear(y)
		for doy := 1; doy <= days; doy++ {
			s.appendDay(lat, doy, Tmn[i], Tmx[i], modeDist)
			i++
		}
	}

	return s, nil
}

// Runs the per-day estimation chain and appends one entry to each numeric
// series.
func (s *SolarSeries) appendDay(lat float64, doy int, Tmn float64, Tmx float64, modeDist string) {
	var dr float64
	if modeDist == "FAO56" {
		dr = InverseRelativeDistanceFAO56(doy)
	} else {
		dr = InverseRelativeDistance(doy)
	}

	decl := SolarDeclination(doy)
	ws := SunsetHourAngle(lat, decl)
	Ra := ExtraterrestrialRadiation(dr, ws, lat, decl, "")
	Rs := ShortwaveRadiation(Ra, Tmn, Tmx)
	par := PAR(Rs)

	s.N = append(s.N, DaylightHours(ws))
	s.Ra = append(s.Ra, Ra)
	s.Rs = append(s.Rs, Rs)
	s.PAR = append(s.PAR, par)
	s.PPF = append(s.PPF, PPF(par*1.0e6))
	s.Fs = append(s.Fs, DirectFraction(Rs, Ra))
}

// Reports whether any estimated value is NaN. NaN entires appear for polar
// latitudes on days without a sunset and for days where Tmax < Tmin.
func (s *SolarSeries) ContainsNaN() bool {
	for _, col := range [][]float64{s.N, s.Ra, s.Rs, s.PAR, s.PPF, s.Fs} {
		for _, v := range col {
			if math.IsNaN(v) {
				return true
			}
		}
	}
	return false
}
