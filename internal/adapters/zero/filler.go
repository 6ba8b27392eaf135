package zero

import (
	"context"
	"io"

	"github.com/hailam/bytesize/internal/ports"
	"github.com/hailam/bytesize/internal/utils"
)

// ZeroFiller writes NUL bytes. The chunk buffer starts zeroed and is never
// modified, so no fill function is needed.
type ZeroFiller struct{}

func New() ports.Filler {
	return &ZeroFiller{}
}

func (f *ZeroFiller) Fill(ctx context.Context, w io.Writer, n uint64) error {
	return utils.WriteChunks(ctx, w, n, nil)
}
