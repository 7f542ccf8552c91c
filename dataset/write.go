package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Write serializes instances in the format read by Parse. Feature values use
// the shortest representation that parses back to the same float64.
func Write(w io.Writer, ds Dataset) error {
	writer := csv.NewWriter(w)
	for _, inst := range ds {
		record := make([]string, 0, len(inst.Features)+1)
		for _, f := range inst.Features {
			record = append(record, strconv.FormatFloat(f, 'g', -1, 64))
		}
		record = append(record, inst.Label)
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
