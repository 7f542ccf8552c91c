package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errNoFeatures = errors.New("record needs at least one feature and a label")

// Parse reads instances from comma-separated text. The last field of every
// record is the label, kept as read (leading spaces of unquoted fields are
// dropped); all preceding fields must be numbers. Blank lines are
// skipped. Every record must have the same number of fields as the first one.
// Parsing stops at the first malformed record.
func Parse(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var out Dataset
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &ParseError{Line: perr.Line, Err: perr.Err}
			}
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		if len(record) < 2 {
			return nil, &ParseError{Line: line, Err: errNoFeatures}
		}
		features, err := parseFields(record[:len(record)-1], line)
		if err != nil {
			return nil, err
		}
		out = append(out, Instance{
			Features: features,
			Label:    record[len(record)-1],
		})
	}
}

// ParseFeatures parses a single comma-separated line of numeric fields, as
// typed at the console for a single prediction.
func ParseFeatures(line string) ([]float64, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, &ParseError{Line: 1, Err: errors.New("empty observation")}
	}
	return parseFields(strings.Split(line, ","), 1)
}

func parseFields(fields []string, line int) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, raw := range fields {
		value := strings.TrimSpace(raw)
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return nil, &ParseError{Line: line, Field: i + 1, Value: value, Err: fmt.Errorf("invalid number: %w", err)}
		}
		out[i] = f
	}
	return out, nil
}
