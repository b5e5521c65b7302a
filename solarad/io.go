package solarad

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Reads daily air temperature extremes from a CSV file with one "Tmn,Tmx"
// record per day. A non-numeric first record is treated as a header and
// skipped. Both returned slices have one entry per remaining record.
func LoadTemperatureCSV(path string) (Tmn []float64, Tmx []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	csvReader := csv.NewReader(f)
	csvReader.ReuseRecord = true

	line := 0
	for {
		row, cerr := csvReader.Read()
		if cerr == io.EOF {
			break
		}
		if cerr != nil {
			return nil, nil, cerr
		}
		line++

		if len(row) < 2 {
			return nil, nil, fmt.Errorf("%s line %d: expected Tmn,Tmx", path, line)
		}

		mn, mnerr := strconv.ParseFloat(row[0], 64)
		mx, mxerr := strconv.ParseFloat(row[1], 64)
		if mnerr != nil || mxerr != nil {
			// header row
			if line == 1 {
				continue
			}
			return nil, nil, fmt.Errorf("%s line %d: expected Tmn,Tmx", path, line)
		}

		Tmn = append(Tmn, mn)
		Tmx = append(Tmx, mx)
	}

	return Tmn, Tmx, nil
}
