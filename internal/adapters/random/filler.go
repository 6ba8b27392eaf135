package random

import (
	"context"
	"io"

	"github.com/hailam/bytesize/internal/ports"
	"github.com/hailam/bytesize/internal/utils"
)

// RandomFiller writes incompressible pseudo-random bytes.
type RandomFiller struct{}

func New() ports.Filler {
	return &RandomFiller{}
}

func (f *RandomFiller) Fill(ctx context.Context, w io.Writer, n uint64) error {
	return utils.WriteRandomBytes(ctx, w, n)
}
