package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/quantself/step-report/internal/domain"
)

// missingMarker is the sentinel the monitor writes for an unrecorded slot.
const missingMarker = "NA"

var wantHeader = [3]string{"steps", "date", "interval"}

// parseObservations decodes the record file. The schema is fixed: a header
// row of steps,date,interval followed by one row per 5-minute slot. File
// order is preserved. Any schema or value violation is ErrParse.
func parseObservations(data []byte) ([]domain.Observation, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 3

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", domain.ErrParse, err)
	}
	if [3]string{header[0], header[1], header[2]} != wantHeader {
		return nil, fmt.Errorf("%w: header %v, want steps,date,interval", domain.ErrParse, header)
	}

	var observations []domain.Observation
	for row := 2; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrParse, row, err)
		}

		o, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrParse, row, err)
		}
		observations = append(observations, o)
	}
	return observations, nil
}

func parseRecord(record []string) (domain.Observation, error) {
	var o domain.Observation

	if record[0] != missingMarker && record[0] != "" {
		n, err := strconv.Atoi(record[0])
		if err != nil {
			return o, fmt.Errorf("steps %q: %v", record[0], err)
		}
		if n < 0 {
			return o, fmt.Errorf("steps %d is negative", n)
		}
		o.Steps = &n
	}

	date, err := time.ParseInLocation("2006-01-02", record[1], time.UTC)
	if err != nil {
		return o, fmt.Errorf("date %q: %v", record[1], err)
	}
	o.Date = date

	interval, err := strconv.Atoi(record[2])
	if err != nil {
		return o, fmt.Errorf("interval %q: %v", record[2], err)
	}
	if !domain.ValidInterval(interval) {
		return o, fmt.Errorf("interval %d is not a 5-minute HHMM code", interval)
	}
	o.Interval = interval

	return o, nil
}
