package wire

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Lemiort/mclib/databuffer"
)

// cryptoReader decrypts bytes as they arrive from the socket, when a
// Cipher has been installed. Installing the cipher only ever happens
// between frame reads (spec.md §5), so there is no mid-frame switch.
type cryptoReader struct {
	r      io.Reader
	cipher *Cipher
}

func (c *cryptoReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 && c.cipher != nil {
		c.cipher.Decrypt(p[:n], p[:n])
	}
	return n, err
}

// FrameReader reads length-prefixed, optionally compressed, optionally
// encrypted frames off a byte stream (spec.md §4.3, read path).
type FrameReader struct {
	src                  *cryptoReader
	br                   *bufio.Reader
	compressionThreshold int32 // < 0 means no compression layer
	compressor           *Compressor
}

// NewFrameReader wraps r (typically a buffered net.Conn) with no
// encryption and no compression; both are enabled later via SetCipher /
// SetCompressionThreshold as the login handshake progresses.
func NewFrameReader(r io.Reader) *FrameReader {
	src := &cryptoReader{r: r}
	return &FrameReader{
		src:                  src,
		br:                   bufio.NewReader(src),
		compressionThreshold: -1,
		compressor:           NewCompressor(),
	}
}

// SetCipher installs (or replaces) the read-direction cipher. Takes effect
// on the next frame.
func (fr *FrameReader) SetCipher(c *Cipher) { fr.src.cipher = c }

// SetCompressionThreshold changes the compression policy. Takes effect on
// the next frame.
func (fr *FrameReader) SetCompressionThreshold(threshold int32) {
	fr.compressionThreshold = threshold
}

// ReadFrame blocks until one full frame has arrived, then returns its
// packet id and decoded payload.
func (fr *FrameReader) ReadFrame() (id int32, payload []byte, err error) {
	totalLength, _, err := readVarIntFrom(fr.br)
	if err != nil {
		return 0, nil, fmt.Errorf("wire: read frame length: %w", err)
	}
	if totalLength < 0 {
		return 0, nil, ErrInvalidPacketLayout
	}

	body := make([]byte, totalLength)
	if _, err := io.ReadFull(fr.br, body); err != nil {
		return 0, nil, fmt.Errorf("wire: read frame body: %w", err)
	}
	bodyBuf := databuffer.Wrap(body)

	if fr.compressionThreshold < 0 {
		id, err = bodyBuf.ReadVarInt()
		if err != nil {
			return 0, nil, fmt.Errorf("wire: read packet id: %w", err)
		}
		return id, bodyBuf.Remaining(), nil
	}

	dataLength, err := bodyBuf.ReadVarInt()
	if err != nil {
		return 0, nil, fmt.Errorf("wire: read data length: %w", err)
	}

	var inner *databuffer.DataBuffer
	if dataLength == 0 {
		inner = databuffer.Wrap(bodyBuf.Remaining())
	} else {
		compressed := bodyBuf.Remaining()
		plain, err := fr.compressor.Inflate(compressed, int(dataLength))
		if err != nil {
			return 0, nil, err
		}
		inner = databuffer.Wrap(plain)
	}

	id, err = inner.ReadVarInt()
	if err != nil {
		return 0, nil, fmt.Errorf("wire: read packet id: %w", err)
	}
	return id, inner.Remaining(), nil
}

// readVarIntFrom decodes a 32-bit VarInt directly off a bufio.Reader, for
// the length prefix that precedes every frame.
func readVarIntFrom(br *bufio.Reader) (int32, int, error) {
	var result int32
	var numRead int
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, numRead, err
		}
		result |= int32(b&0x7F) << (7 * numRead)
		numRead++
		if b&0x80 == 0 {
			break
		}
		if numRead >= 5 {
			return 0, numRead, fmt.Errorf("wire: frame length varint too big")
		}
	}
	return result, numRead, nil
}

// cryptoWriter encrypts a fully-built frame before it reaches the socket.
type cryptoWriter struct {
	w      io.Writer
	cipher *Cipher
}

func (c *cryptoWriter) Write(p []byte) (int, error) {
	if c.cipher == nil {
		return c.w.Write(p)
	}
	out := make([]byte, len(p))
	c.cipher.Encrypt(out, p)
	return c.w.Write(out)
}

// FrameWriter builds and writes length-prefixed, optionally compressed,
// optionally encrypted frames (spec.md §4.3, write path).
type FrameWriter struct {
	dst                  *cryptoWriter
	compressionThreshold int32
	compressor           *Compressor
}

// NewFrameWriter wraps w with no encryption and no compression.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{
		dst:                  &cryptoWriter{w: w},
		compressionThreshold: -1,
		compressor:           NewCompressor(),
	}
}

// SetCipher installs (or replaces) the write-direction cipher.
func (fw *FrameWriter) SetCipher(c *Cipher) { fw.dst.cipher = c }

// SetCompressionThreshold changes the compression policy.
func (fw *FrameWriter) SetCompressionThreshold(threshold int32) {
	fw.compressionThreshold = threshold
}

// WriteFrame serialises id and payload into one frame and writes it.
func (fw *FrameWriter) WriteFrame(id int32, payload []byte) error {
	scratch := databuffer.New()
	scratch.WriteVarInt(id)
	scratch.WriteBytes(payload)
	scratchBytes := scratch.Bytes()

	frame := databuffer.New()

	switch {
	case fw.compressionThreshold < 0:
		frame.WriteVarInt(int32(len(scratchBytes)))
		frame.WriteBytes(scratchBytes)

	case len(scratchBytes) < int(fw.compressionThreshold):
		frame.WriteVarInt(int32(len(scratchBytes) + 1))
		frame.WriteVarInt(0)
		frame.WriteBytes(scratchBytes)

	default:
		compressed, err := fw.compressor.Deflate(scratchBytes)
		if err != nil {
			return err
		}
		dataLenVarint := databuffer.New()
		dataLenVarint.WriteVarInt(int32(len(scratchBytes)))
		frame.WriteVarInt(int32(len(dataLenVarint.Bytes()) + len(compressed)))
		frame.WriteBytes(dataLenVarint.Bytes())
		frame.WriteBytes(compressed)
	}

	_, err := fw.dst.Write(frame.Bytes())
	return err
}
