package ports

import (
	"context"
	"io"
)

// FillKind identifies the content written by a Filler.
type FillKind string

const (
	FillRandom FillKind = "random"
	FillText   FillKind = "text"
	FillZero   FillKind = "zero"
)

// Filler is the port for anything that can stream a fixed number of bytes.
type Filler interface {
	// Fill writes exactly n bytes to w, stopping early if ctx is done.
	Fill(ctx context.Context, w io.Writer, n uint64) error
}

// FillerFactory is the port for looking up fillers by FillKind.
type FillerFactory interface {
	// For returns a Filler for the given kind, or an error if unsupported.
	For(k FillKind) (Filler, error)
}
