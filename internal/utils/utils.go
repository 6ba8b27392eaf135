package utils

import (
	"context"
	"io"
	"math/rand"
)

// ChunkSize is the buffer size used when streaming generated bytes.
const ChunkSize = 64 * 1024

// WriteChunks writes n bytes to w in ChunkSize pieces. fill is called to
// populate each chunk before it is written. ctx is checked between chunks.
func WriteChunks(ctx context.Context, w io.Writer, n uint64, fill func(buf []byte)) error {
	buf := make([]byte, ChunkSize)
	var written uint64
	for written < n {
		if err := ctx.Err(); err != nil {
			return err
		}
		toWrite := uint64(len(buf))
		if n-written < toWrite {
			toWrite = n - written
		}
		chunk := buf[:toWrite]
		if fill != nil {
			fill(chunk)
		}
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		written += toWrite
	}
	return nil
}

// WriteRandomBytes writes n pseudo-random bytes to w.
// math/rand is used for speed; cryptographic quality is not needed for noise.
func WriteRandomBytes(ctx context.Context, w io.Writer, n uint64) error {
	return WriteChunks(ctx, w, n, func(buf []byte) {
		for i := range buf {
			buf[i] = byte(rand.Intn(256))
		}
	})
}
