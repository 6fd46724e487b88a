package nbt

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/Lemiort/mclib/databuffer"
)

// writeModifiedUTF8 encodes s (an ordinary Go UTF-8 string) as Java's
// modified UTF-8 with a 16-bit length prefix: NUL is encoded as the two
// bytes 0xC0 0x80 and characters outside the BMP are written as a
// surrogate pair, each half encoded as an ordinary 3-byte UTF-8 sequence.
// This is the one place mclib transcodes at the wire boundary per
// spec.md §9 ("specify all text as UTF-8 end-to-end, transcoding only at
// the socket boundary").
func writeModifiedUTF8(buf *databuffer.DataBuffer, s string) {
	encoded := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r == 0:
			encoded = append(encoded, 0xC0, 0x80)
		case r < 0x80:
			encoded = append(encoded, byte(r))
		case r <= 0x7FF:
			encoded = append(encoded,
				0xC0|byte(r>>6),
				0x80|byte(r&0x3F),
			)
		case r <= 0xFFFF:
			encoded = append(encoded,
				0xE0|byte(r>>12),
				0x80|byte((r>>6)&0x3F),
				0x80|byte(r&0x3F),
			)
		default:
			hi, lo := utf16.EncodeRune(r)
			encoded = appendSurrogate(encoded, hi)
			encoded = appendSurrogate(encoded, lo)
		}
	}
	buf.WriteUShort(uint16(len(encoded)))
	buf.WriteBytes(encoded)
}

func appendSurrogate(dst []byte, r rune) []byte {
	return append(dst,
		0xE0|byte(r>>12),
		0x80|byte((r>>6)&0x3F),
		0x80|byte(r&0x3F),
	)
}

// readModifiedUTF8 decodes a 16-bit-length-prefixed modified UTF-8 string
// back into an ordinary Go string, re-pairing surrogate halves and
// collapsing the 0xC0 0x80 NUL escape.
func readModifiedUTF8(buf *databuffer.DataBuffer) (string, error) {
	length, err := buf.ReadUShort()
	if err != nil {
		return "", err
	}
	raw, err := buf.ReadByteArray(int(length))
	if err != nil {
		return "", err
	}

	var runes []rune
	i := 0
	for i < len(raw) {
		b0 := raw[i]
		switch {
		case b0&0x80 == 0:
			runes = append(runes, rune(b0))
			i++
		case b0&0xE0 == 0xC0 && i+1 < len(raw):
			b1 := raw[i+1]
			if b0 == 0xC0 && b1 == 0x80 {
				runes = append(runes, 0)
			} else {
				runes = append(runes, rune(b0&0x1F)<<6|rune(b1&0x3F))
			}
			i += 2
		case b0&0xF0 == 0xE0 && i+2 < len(raw):
			b1, b2 := raw[i+1], raw[i+2]
			runes = append(runes, rune(b0&0x0F)<<12|rune(b1&0x3F)<<6|rune(b2&0x3F))
			i += 3
		default:
			runes = append(runes, utf8.RuneError)
			i++
		}
	}

	return string(utf16.Decode(runesToUTF16(runes))), nil
}

// runesToUTF16 reinterprets a rune slice where 3-byte modified-UTF8
// surrogate halves were decoded as standalone BMP code points back into a
// UTF-16 stream, so utf16.Decode can re-pair them into astral runes.
func runesToUTF16(rs []rune) []uint16 {
	out := make([]uint16, len(rs))
	for i, r := range rs {
		out[i] = uint16(r)
	}
	return out
}
