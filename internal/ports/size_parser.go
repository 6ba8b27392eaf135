package ports

import "github.com/hailam/bytesize/pkg/size"

// SizeParser parses human-readable size specs (like "10M") into a Size.
type SizeParser interface {
	Parse(spec string) (size.Size, error)
}
