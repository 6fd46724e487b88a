package wire

import "errors"

// Frame-level errors: fatal to the connection per spec.md §7.
var (
	ErrDecompressionMismatch = errors.New("wire: decompressed size mismatch")
	ErrInvalidPacketLayout   = errors.New("wire: invalid packet layout")
)
