package solarad

import (
	"bytes"
	"strconv"
)

// CSV format
func (s *SolarSeries) ToCSV(buf *bytes.Buffer) {
	if s.Date != nil {
		buf.WriteString("date")
		buf.WriteString(",doy")
		buf.WriteString(",N")
	} else {
		buf.WriteString("N")
	}
	buf.WriteString(",Ra")
	buf.WriteString(",Rs")
	buf.WriteString(",PAR")
	buf.WriteString(",PPF")
	buf.WriteString(",Fs")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(s.N); i++ {
		if s.Date != nil {
			buf.WriteString(s.Date[i])
			buf.WriteString(",")
			buf.WriteString(strconv.Itoa(s.Doy[i]))
			writeFloat(s.N[i])
		} else {
			buf.WriteString(strconv.FormatFloat(s.N[i], 'f', -1, 64))
		}
		writeFloat(s.Ra[i])
		writeFloat(s.Rs[i])
		writeFloat(s.PAR[i])
		writeFloat(s.PPF[i])
		writeFloat(s.Fs[i])
		buf.WriteString("\n")
	}
}
