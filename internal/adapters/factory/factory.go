package factory

import (
	"fmt"

	"github.com/hailam/bytesize/internal/adapters/random"
	"github.com/hailam/bytesize/internal/adapters/report"
	"github.com/hailam/bytesize/internal/adapters/txt"
	"github.com/hailam/bytesize/internal/adapters/zero"
	"github.com/hailam/bytesize/internal/ports"
)

// StaticFillerFactory provides concrete implementations for Fillers.
type StaticFillerFactory struct {
	fillers map[ports.FillKind]ports.Filler
}

// NewStaticFillerFactory creates a new factory with pre-initialized fillers.
func NewStaticFillerFactory() ports.FillerFactory {
	return &StaticFillerFactory{
		fillers: map[ports.FillKind]ports.Filler{
			ports.FillRandom: random.New(),
			ports.FillText:   txt.New(),
			ports.FillZero:   zero.New(),
		},
	}
}

// For returns the appropriate Filler for the given kind.
func (f *StaticFillerFactory) For(k ports.FillKind) (ports.Filler, error) {
	filler, ok := f.fillers[k]
	if !ok {
		return nil, fmt.Errorf("unsupported fill kind: %s", k)
	}
	return filler, nil
}

// StaticReportFactory provides concrete implementations for ReportWriters.
type StaticReportFactory struct {
	writers map[ports.ReportFormat]ports.ReportWriter
}

// NewStaticReportFactory creates a new factory with pre-initialized writers.
func NewStaticReportFactory() ports.ReportFactory {
	return &StaticReportFactory{
		writers: map[ports.ReportFormat]ports.ReportWriter{
			ports.ReportCSV:  report.NewCSV(),
			ports.ReportJSON: report.NewJSON(),
			ports.ReportXLSX: report.NewXLSX(),
		},
	}
}

// For returns the ReportWriter for the given format.
func (f *StaticReportFactory) For(rf ports.ReportFormat) (ports.ReportWriter, error) {
	w, ok := f.writers[rf]
	if !ok {
		return nil, fmt.Errorf("unsupported report format: %s", rf)
	}
	return w, nil
}
