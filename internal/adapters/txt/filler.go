package txt

import (
	"context"
	"io"
	"math/rand"

	"github.com/hailam/bytesize/internal/ports"
	"github.com/hailam/bytesize/internal/utils"
)

// Random printable ASCII characters (space 0x20 to '~' 0x7E), with a
// newline every lineLength bytes so the output stays viewable.
const (
	printableStart = 0x20
	printableEnd   = 0x7E
	lineLength     = 80
)

type TxtFiller struct{}

func New() ports.Filler {
	return &TxtFiller{}
}

func (f *TxtFiller) Fill(ctx context.Context, w io.Writer, n uint64) error {
	var col int
	return utils.WriteChunks(ctx, w, n, func(buf []byte) {
		for i := range buf {
			col++
			if col == lineLength {
				buf[i] = '\n'
				col = 0
				continue
			}
			buf[i] = byte(printableStart + rand.Intn(printableEnd-printableStart+1))
		}
	})
}
