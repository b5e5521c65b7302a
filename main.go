// SolaRad
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"

	"github.com/pasturemod/solarad-go/solarad"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	parser := argparse.NewParser("SolaRad", "Estimates daily solar radiation and day length from latitude and air temperature extremes")

	lat := parser.FloatPositional(&argparse.Options{
		Default: 35.658,
		Help:    "Latitude of the site (decimal degrees)"})

	input := parser.String("i", "input", &argparse.Options{
		Required: true,
		Help:     "CSV file with one Tmn,Tmx record per day"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path (stdout when empty)"})

	mode := parser.Selector("", "mode", []string{"date", "years"}, &argparse.Options{
		Default: "date",
		Help:    "Series mode: explicit start date=date (default), full year range=years"})

	startDate := parser.String("", "start_date", &argparse.Options{
		Default: "2021-01-01",
		Help:    "First day of the series, YYYY-MM-DD (date mode)"})

	firstYear := parser.Int("", "first_year", &argparse.Options{
		Default: 2011,
		Help:    "First year of the series (years mode)"})

	lastYear := parser.Int("", "last_year", &argparse.Options{
		Default: 2020,
		Help:    "Last year of the series, inclusive (years mode)"})

	modeDist := parser.Selector("", "mode_dist", []string{"legacy", "FAO56"}, &argparse.Options{
		Default: "legacy",
		Help:    "Earth-Sun distance formula: reference implementation=legacy (default), textbook=FAO56"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
	}

	// log level
	logger := logging.GetLogger("solarad")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// temperature series
	Tmn, Tmx, err := solarad.LoadTemperatureCSV(*input)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("temperature series loaded: %d days", len(Tmn))

	// estimation
	var res *solarad.SolarSeries
	if *mode == "years" {
		res, err = solarad.EstimateYears(*lat, Tmn, Tmx, *firstYear, *lastYear, *modeDist)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	} else {
		start, perr := time.Parse("2006-01-02", *startDate)
		if perr != nil {
			fmt.Fprintln(os.Stderr, "Error: invalid --start_date:", perr)
			os.Exit(1)
		}
		res = solarad.Estimate(*lat, Tmn, Tmx, start, *modeDist)
	}

	// save
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	res.ToCSV(buf)

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("CSV saved: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}

	log.Printf("calculation finished")
}
