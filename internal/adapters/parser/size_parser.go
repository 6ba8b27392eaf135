package parser

import (
	"github.com/dustin/go-humanize"

	"github.com/hailam/bytesize/internal/ports"
	"github.com/hailam/bytesize/pkg/size"
)

// StrictSizeParser adapts size.Parse to the ports.SizeParser interface.
type StrictSizeParser struct{}

// NewStrictSizeParser creates the default size parser adapter.
func NewStrictSizeParser() ports.SizeParser {
	return &StrictSizeParser{}
}

// Parse accepts only the strict literal grammar: digits plus an optional
// b/k/m/g/t unit, binary scaling.
func (p *StrictSizeParser) Parse(spec string) (size.Size, error) {
	return size.Parse(spec)
}

// LenientSizeParser adapts humanize.ParseBytes to the ports.SizeParser
// interface. It accepts whitespace, fractions and both SI ("MB", base 1000)
// and IEC ("MiB", base 1024) suffixes. The result is always a byte count.
type LenientSizeParser struct{}

// NewLenientSizeParser creates a size parser for free-form input.
func NewLenientSizeParser() ports.SizeParser {
	return &LenientSizeParser{}
}

func (p *LenientSizeParser) Parse(spec string) (size.Size, error) {
	n, err := humanize.ParseBytes(spec)
	if err != nil {
		return size.Size{}, err
	}
	return size.New(size.Byte, n), nil
}
