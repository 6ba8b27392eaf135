package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/hailam/bytesize/internal/ports"
	"github.com/hailam/bytesize/pkg/size"
)

// SizeService orchestrates the CLI use cases: converting literals,
// checking sizes against limits, filling files and writing reports.
type SizeService struct {
	parser  ports.SizeParser
	fillers ports.FillerFactory
	reports ports.ReportFactory
	log     logrus.FieldLogger
}

// NewSizeService constructs a SizeService. A nil log discards output.
func NewSizeService(parser ports.SizeParser, fillers ports.FillerFactory, reports ports.ReportFactory, log logrus.FieldLogger) *SizeService {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &SizeService{parser: parser, fillers: fillers, reports: reports, log: log}
}

// Convert parses every spec into a report row. It stops at the first
// invalid spec.
func (s *SizeService) Convert(specs []string) ([]ports.Row, error) {
	rows := make([]ports.Row, 0, len(specs))
	for _, spec := range specs {
		v, err := s.parse(spec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, newRow(spec, v))
	}
	return rows, nil
}

// newRow describes v, parsed from literal, as a report row.
func newRow(literal string, v size.Size) ports.Row {
	return ports.Row{
		Literal:   literal,
		Unit:      v.Unit().String(),
		Magnitude: v.Magnitude(),
		Bytes:     v.Bytes(),
		Human:     humanize.IBytes(v.Bytes()),
	}
}

// CheckResult is the outcome of comparing one named size with its limit.
type CheckResult struct {
	Name     string `json:"name"`
	Limit    uint64 `json:"limit"`
	Actual   uint64 `json:"actual"`
	Exceeded bool   `json:"exceeded"`
}

// Check compares each named actual spec with the limit of the same name.
// Results are sorted by name. A name with no limit is an error.
func (s *SizeService) Check(limits map[string]size.Size, actual map[string]string) ([]CheckResult, error) {
	names := make([]string, 0, len(actual))
	for name := range actual {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]CheckResult, 0, len(names))
	for _, name := range names {
		limit, ok := limits[name]
		if !ok {
			return nil, fmt.Errorf("no limit named '%s'", name)
		}
		v, err := s.parse(actual[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		r := CheckResult{
			Name:     name,
			Limit:    limit.Bytes(),
			Actual:   v.Bytes(),
			Exceeded: v.Bytes() > limit.Bytes(),
		}
		s.log.WithFields(logrus.Fields{"name": name, "limit": r.Limit, "actual": r.Actual}).Debug("checked size")
		results = append(results, r)
	}
	return results, nil
}

// Fill creates outPath holding exactly n bytes produced by the filler of the
// given kind and returns the byte count written. On failure the partial file
// is removed.
func (s *SizeService) Fill(ctx context.Context, outPath string, n uint64, kind ports.FillKind) (uint64, error) {
	// 1. Retrieve the filler for this kind
	filler, err := s.fillers.For(kind)
	if err != nil {
		return 0, fmt.Errorf("no filler for kind '%s': %w", kind, err)
	}

	// 2. Stream the content
	f, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	s.log.WithFields(logrus.Fields{"path": outPath, "bytes": n, "kind": kind}).Info("filling file")
	if err := filler.Fill(ctx, f, n); err != nil {
		f.Close()
		os.Remove(outPath)
		return 0, fmt.Errorf("failed to fill %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(outPath)
		return 0, fmt.Errorf("failed to close %s: %w", outPath, err)
	}
	return n, nil
}

// Report converts specs and writes them to outPath in the format implied by
// its extension.
func (s *SizeService) Report(outPath string, specs []string) error {
	format, err := mapExtensionToReportFormat(strings.ToLower(strings.TrimPrefix(filepath.Ext(outPath), ".")))
	if err != nil {
		return err
	}
	w, err := s.reports.For(format)
	if err != nil {
		return fmt.Errorf("no writer for format '%s': %w", format, err)
	}
	rows, err := s.Convert(specs)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"path": outPath, "rows": len(rows), "format": format}).Info("writing report")
	if err := w.Write(outPath, rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

func (s *SizeService) parse(spec string) (size.Size, error) {
	v, err := s.parser.Parse(spec)
	if err != nil {
		return size.Size{}, fmt.Errorf("invalid size '%s': %w", spec, err)
	}
	return v, nil
}

// mapExtensionToReportFormat maps file extensions to ReportFormat constants.
func mapExtensionToReportFormat(ext string) (ports.ReportFormat, error) {
	switch ext {
	case "csv":
		return ports.ReportCSV, nil
	case "json":
		return ports.ReportJSON, nil
	case "xlsx":
		return ports.ReportXLSX, nil
	default:
		return "", fmt.Errorf("unsupported report extension: %s", ext)
	}
}
