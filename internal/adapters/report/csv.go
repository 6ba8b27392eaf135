package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/hailam/bytesize/internal/ports"
)

// header is shared by the tabular writers.
var header = []string{"literal", "unit", "magnitude", "bytes", "human"}

type CSVWriter struct{}

func NewCSV() ports.ReportWriter {
	return &CSVWriter{}
}

func (w *CSVWriter) Write(outPath string, rows []ports.Row) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", outPath, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Literal,
			r.Unit,
			strconv.FormatUint(r.Magnitude, 10),
			strconv.FormatUint(r.Bytes, 10),
			r.Human,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write csv %s: %w", outPath, err)
	}
	return f.Close()
}
