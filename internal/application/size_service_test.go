package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hailam/bytesize/internal/ports"
	"github.com/hailam/bytesize/pkg/size"
)

// --- Mock Implementations ---

// MockSizeParser is a mock for ports.SizeParser
type MockSizeParser struct {
	ParseFunc func(spec string) (size.Size, error)
}

func (m *MockSizeParser) Parse(spec string) (size.Size, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(spec)
	}
	// Default behavior: defer to the real grammar
	return size.Parse(spec)
}

// MockFiller is a mock for ports.Filler
type MockFiller struct {
	FillFunc    func(ctx context.Context, w io.Writer, n uint64) error
	FillCalled  bool
	CalledWithN uint64
}

func (m *MockFiller) Fill(ctx context.Context, w io.Writer, n uint64) error {
	m.FillCalled = true
	m.CalledWithN = n
	if m.FillFunc != nil {
		return m.FillFunc(ctx, w, n)
	}
	// Default behavior: write n 'x' bytes
	_, err := io.WriteString(w, strings.Repeat("x", int(n)))
	return err
}

// MockFillerFactory is a mock for ports.FillerFactory
type MockFillerFactory struct {
	MockFiller *MockFiller
}

func (m *MockFillerFactory) For(k ports.FillKind) (ports.Filler, error) {
	if k == ports.FillZero {
		return m.MockFiller, nil
	}
	return nil, fmt.Errorf("mock factory error: unsupported kind %s", k)
}

// MockReportWriter is a mock for ports.ReportWriter
type MockReportWriter struct {
	Err  error
	Path string
	Rows []ports.Row
}

func (m *MockReportWriter) Write(outPath string, rows []ports.Row) error {
	m.Path = outPath
	m.Rows = rows
	return m.Err
}

// MockReportFactory is a mock for ports.ReportFactory
type MockReportFactory struct {
	Writer *MockReportWriter
}

func (m *MockReportFactory) For(f ports.ReportFormat) (ports.ReportWriter, error) {
	if f == ports.ReportCSV {
		return m.Writer, nil
	}
	return nil, fmt.Errorf("mock factory error: unsupported format %s", f)
}

func newTestService(parser ports.SizeParser, filler *MockFiller, writer *MockReportWriter) *SizeService {
	return NewSizeService(parser, &MockFillerFactory{MockFiller: filler}, &MockReportFactory{Writer: writer}, nil)
}

// --- Test Cases ---

func TestSizeService_Convert(t *testing.T) {
	svc := newTestService(&MockSizeParser{}, &MockFiller{}, &MockReportWriter{})

	rows, err := svc.Convert([]string{"5", "100k", "2T"})
	if err != nil {
		t.Fatalf("Convert() unexpected error = %v", err)
	}
	want := []ports.Row{
		{Literal: "5", Unit: "Byte", Magnitude: 5, Bytes: 5, Human: "5 B"},
		{Literal: "100k", Unit: "Kilobyte", Magnitude: 100, Bytes: 102400, Human: "100 KiB"},
		{Literal: "2T", Unit: "Terabyte", Magnitude: 2, Bytes: 2 << 40, Human: "2.0 TiB"},
	}
	if len(rows) != len(want) {
		t.Fatalf("Convert() returned %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("Convert() row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}

	_, err = svc.Convert([]string{"5", "5bb"})
	if err == nil || err.Error() != "invalid size '5bb': size: unexpected character after unit" {
		t.Errorf("Convert() error = %v", err)
	}
	if !errors.Is(err, size.ErrMultiChar) {
		t.Errorf("Convert() error does not wrap ErrMultiChar: %v", err)
	}
}

func TestSizeService_Check(t *testing.T) {
	svc := newTestService(&MockSizeParser{}, &MockFiller{}, &MockReportWriter{})
	limits := map[string]size.Size{
		"upload": size.MustParse("5M"),
		"cache":  size.MustParse("1g"),
	}

	tests := []struct {
		name           string
		actual         map[string]string
		want           []CheckResult
		expectedErrMsg string
	}{
		{
			name:   "Within limits",
			actual: map[string]string{"upload": "5120k", "cache": "1m"},
			want: []CheckResult{
				{Name: "cache", Limit: 1 << 30, Actual: 1 << 20},
				{Name: "upload", Limit: 5 << 20, Actual: 5 << 20},
			},
		},
		{
			name:   "Exceeded",
			actual: map[string]string{"upload": "5121k"},
			want:   []CheckResult{{Name: "upload", Limit: 5 << 20, Actual: 5121 << 10, Exceeded: true}},
		},
		{
			name:           "Unknown name",
			actual:         map[string]string{"logs": "1k"},
			expectedErrMsg: "no limit named 'logs'",
		},
		{
			name:           "Invalid actual",
			actual:         map[string]string{"cache": "-1"},
			expectedErrMsg: "cache: invalid size '-1': size: invalid byte '-' (0x2d)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Check(limits, tc.actual)
			if tc.expectedErrMsg != "" {
				if err == nil || err.Error() != tc.expectedErrMsg {
					t.Fatalf("Check() error = %v, want %q", err, tc.expectedErrMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Check() unexpected error = %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Check() = %+v, want %+v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("Check()[%d] = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestSizeService_Fill(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name           string
		outputPath     string
		n              uint64
		kind           ports.FillKind
		setupFiller    func(*MockFiller)
		expectedErrMsg string // Substring of expected error message, empty for success
		wantBytes      uint64
		wantFillCalled bool
	}{
		{
			name:           "Success",
			outputPath:     filepath.Join(tempDir, "ok.bin"),
			n:              2048,
			kind:           ports.FillZero,
			wantBytes:      2048,
			wantFillCalled: true,
		},
		{
			name:           "Empty File",
			outputPath:     filepath.Join(tempDir, "empty.bin"),
			n:              0,
			kind:           ports.FillZero,
			wantBytes:      0,
			wantFillCalled: true,
		},
		{
			name:           "Error Unknown Kind",
			outputPath:     filepath.Join(tempDir, "kind.bin"),
			n:              1024,
			kind:           ports.FillKind("sparse"),
			expectedErrMsg: "no filler for kind 'sparse': mock factory error: unsupported kind sparse",
		},
		{
			name:           "Error Invalid Path",
			outputPath:     filepath.Join(tempDir, "missing", "x.bin"),
			n:              1024,
			kind:           ports.FillZero,
			expectedErrMsg: "failed to create",
		},
		{
			name:       "Error During Fill",
			outputPath: filepath.Join(tempDir, "broken.bin"),
			n:          1024,
			kind:       ports.FillZero,
			setupFiller: func(f *MockFiller) {
				f.FillFunc = func(ctx context.Context, w io.Writer, n uint64) error {
					return errors.New("mock fill error")
				}
			},
			expectedErrMsg: "mock fill error",
			wantFillCalled: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filler := &MockFiller{}
			if tc.setupFiller != nil {
				tc.setupFiller(filler)
			}
			svc := newTestService(&MockSizeParser{}, filler, &MockReportWriter{})

			n, err := svc.Fill(context.Background(), tc.outputPath, tc.n, tc.kind)

			if filler.FillCalled != tc.wantFillCalled {
				t.Errorf("Fill called = %v, want %v", filler.FillCalled, tc.wantFillCalled)
			}
			if tc.expectedErrMsg != "" {
				if err == nil {
					t.Fatalf("Fill() expected an error containing %q, but got nil", tc.expectedErrMsg)
				}
				if !strings.Contains(err.Error(), tc.expectedErrMsg) {
					t.Errorf("Fill() error = %q, expected error containing %q", err.Error(), tc.expectedErrMsg)
				}
				if _, statErr := os.Stat(tc.outputPath); !os.IsNotExist(statErr) {
					t.Errorf("Fill() left %s behind after failure", tc.outputPath)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fill() unexpected error = %v", err)
			}
			if n != tc.wantBytes || filler.CalledWithN != tc.wantBytes {
				t.Errorf("Fill() = %d (filler got %d), want %d", n, filler.CalledWithN, tc.wantBytes)
			}
			info, err := os.Stat(tc.outputPath)
			if err != nil {
				t.Fatalf("os.Stat(%s) error = %v", tc.outputPath, err)
			}
			if uint64(info.Size()) != tc.wantBytes {
				t.Errorf("file size = %d, want %d", info.Size(), tc.wantBytes)
			}
		})
	}
}

func TestSizeService_Report(t *testing.T) {
	tests := []struct {
		name           string
		outputPath     string
		specs          []string
		writerErr      error
		expectedErrMsg string
		wantRows       int
	}{
		{"Success CSV", "sizes.csv", []string{"1k", "2m"}, nil, "", 2},
		{"Success CSV uppercase", "SIZES.CSV", []string{"1"}, nil, "", 1},
		{"Error Unsupported Extension", "sizes.pdf", []string{"1k"}, nil, "unsupported report extension: pdf", 0},
		{"Error No Writer", "sizes.json", []string{"1k"}, nil, "no writer for format 'json': mock factory error: unsupported format json", 0},
		{"Error Invalid Spec", "sizes.csv", []string{"1k", "5j"}, nil, "invalid size '5j': size: invalid unit 'j'", 0},
		{"Error Writer", "sizes.csv", []string{"1k"}, errors.New("mock write error"), "failed to write sizes.csv: mock write error", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			writer := &MockReportWriter{Err: tc.writerErr}
			svc := newTestService(&MockSizeParser{}, &MockFiller{}, writer)

			err := svc.Report(tc.outputPath, tc.specs)
			if tc.expectedErrMsg != "" {
				if err == nil || err.Error() != tc.expectedErrMsg {
					t.Fatalf("Report() error = %v, want %q", err, tc.expectedErrMsg)
				}
			} else if err != nil {
				t.Fatalf("Report() unexpected error = %v", err)
			}
			if len(writer.Rows) != tc.wantRows {
				t.Errorf("writer received %d rows, want %d", len(writer.Rows), tc.wantRows)
			}
			if tc.wantRows > 0 && writer.Path != tc.outputPath {
				t.Errorf("writer path = %q, want %q", writer.Path, tc.outputPath)
			}
		})
	}
}
