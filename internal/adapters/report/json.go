package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hailam/bytesize/internal/ports"
)

type JSONWriter struct{}

func NewJSON() ports.ReportWriter {
	return &JSONWriter{}
}

func (w *JSONWriter) Write(outPath string, rows []ports.Row) error {
	if rows == nil {
		rows = []ports.Row{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
