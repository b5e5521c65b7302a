package solarad

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Aggregate statistics of a single output series.
type SeriesStats struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// Aggregate statistics of the six estimated series, e.g. for annual
// radiation summaries fed into pasture growth models.
type SeriesSummary struct {
	N   SeriesStats
	Ra  SeriesStats
	Rs  SeriesStats
	PAR SeriesStats
	PPF SeriesStats
	Fs  SeriesStats
}

func (s *SolarSeries) Summary() SeriesSummary {
	return SeriesSummary{
		N:   summarize(s.N),
		Ra:  summarize(s.Ra),
		Rs:  summarize(s.Rs),
		PAR: summarize(s.PAR),
		PPF: summarize(s.PPF),
		Fs:  summarize(s.Fs),
	}
}

func summarize(xs []float64) SeriesStats {
	if len(xs) == 0 {
		return SeriesStats{}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return SeriesStats{
		Mean: mean,
		Std:  std,
		Min:  floats.Min(xs),
		Max:  floats.Max(xs),
	}
}
