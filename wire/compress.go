package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Compressor deflates/inflates frame bodies once the compression threshold
// negotiated in Login is non-negative. It uses klauspost/compress's
// zlib-compatible implementation rather than the standard library's, for
// the same reason nishisan-dev-n-backup reaches for it over its own wire:
// a drop-in faster deflate/inflate under the same package shape.
type Compressor struct{}

// NewCompressor returns a Compressor; it carries no state of its own, each
// call constructs a fresh zlib reader/writer.
func NewCompressor() *Compressor { return &Compressor{} }

// Deflate compresses data at best-speed, matching spec.md §4.4's
// "standard deflate/inflate with best-speed suffices; no custom windowing".
func (c *Compressor) Deflate(data []byte) ([]byte, error) {
	var out bytes.Buffer
	w, err := zlib.NewWriterLevel(&out, zlib.BestSpeed)
	if err != nil {
		return nil, fmt.Errorf("wire: new zlib writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("wire: zlib write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("wire: zlib close: %w", err)
	}
	return out.Bytes(), nil
}

// Inflate decompresses data, verifying the result is exactly expectedLen
// bytes. A mismatch surfaces as ErrDecompressionMismatch per spec.md §4.3.
func (c *Compressor) Inflate(data []byte, expectedLen int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("wire: new zlib reader: %w", err)
	}
	defer r.Close()

	out := make([]byte, expectedLen)
	n, err := io.ReadFull(r, out)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("wire: zlib read: %w", err)
	}

	// Confirm there is no leftover data beyond expectedLen.
	var extra [1]byte
	if m, _ := r.Read(extra[:]); m > 0 || n != expectedLen {
		return nil, ErrDecompressionMismatch
	}

	return out, nil
}
