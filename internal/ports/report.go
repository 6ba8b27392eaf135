package ports

// Row is one line of a conversion report.
type Row struct {
	Literal   string `json:"literal"`
	Unit      string `json:"unit"`
	Magnitude uint64 `json:"magnitude"`
	Bytes     uint64 `json:"bytes"`
	Human     string `json:"human"`
}

// ReportFormat is the identifier for each report encoding.
type ReportFormat string

const (
	ReportCSV  ReportFormat = "csv"
	ReportJSON ReportFormat = "json"
	ReportXLSX ReportFormat = "xlsx"
)

// ReportWriter is the port for anything that can persist report rows.
type ReportWriter interface {
	// Write stores rows at outPath, replacing any existing file.
	Write(outPath string, rows []Row) error
}

// ReportFactory is the port for looking up report writers by format.
type ReportFactory interface {
	For(f ReportFormat) (ReportWriter, error)
}
