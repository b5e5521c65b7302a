package solarad

import "time"

// 1-based day of the year of d, counted from January 1 of d's own year.
func DayOfYear(d time.Time) int {
	return d.YearDay()
}

// Number of days in the calendar year (365, or 366 in leap years), computed
// as the distance between January 1 of year+1 and January 1 of year.
func DaysInYear(year int) int {
	jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(year+1, 1, 1, 0, 0, 0, 0, time.UTC)
	return int(next.Sub(jan1).Hours() / 24)
}

// The calendar day after d. d itself is not modified; month, year and leap
// day boundaries roll over.
func nextDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}
