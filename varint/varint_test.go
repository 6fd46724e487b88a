package varint

import (
	"bytes"
	"testing"
)

type byteReader struct {
	b *bytes.Buffer
}

func (r byteReader) ReadByte() (byte, error) { return r.b.ReadByte() }

func TestEncodeInt32KnownValues(t *testing.T) {
	cases := []struct {
		value int32
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{2, []byte{0x02}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xff, 0x01}},
		{300, []byte{0xac, 0x02}},
		{2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}
	for _, tc := range cases {
		got := EncodeInt32(tc.value)
		if !bytes.Equal(got, tc.want) {
			t.Errorf("EncodeInt32(%d) = % x, want % x", tc.value, got, tc.want)
		}
		if n := SizeInt32(tc.value); n != len(tc.want) {
			t.Errorf("SizeInt32(%d) = %d, want %d", tc.value, n, len(tc.want))
		}
	}
}

func TestDecodeInt32RoundTrip(t *testing.T) {
	for _, value := range []int32{0, 1, -1, 300, 127, 128, 2147483647, -2147483648} {
		encoded := EncodeInt32(value)
		got, n, err := DecodeInt32(byteReader{bytes.NewBuffer(encoded)})
		if err != nil {
			t.Fatalf("DecodeInt32(%d): %v", value, err)
		}
		if got != value {
			t.Errorf("DecodeInt32 round trip = %d, want %d", got, value)
		}
		if n != len(encoded) {
			t.Errorf("DecodeInt32 consumed %d bytes, want %d", n, len(encoded))
		}
	}
}

func TestDecodeInt32TooBig(t *testing.T) {
	// Five bytes, all with the continuation bit set: never terminates
	// within MaxBytes32.
	malformed := []byte{0xff, 0xff, 0xff, 0xff, 0xff}
	_, _, err := DecodeInt32(byteReader{bytes.NewBuffer(malformed)})
	if err != ErrTooBig {
		t.Fatalf("got %v, want ErrTooBig", err)
	}
}

func TestDecodeInt32ShortBuffer(t *testing.T) {
	truncated := []byte{0x80}
	_, _, err := DecodeInt32(byteReader{bytes.NewBuffer(truncated)})
	if err != ErrShortBuffer {
		t.Fatalf("got %v, want ErrShortBuffer", err)
	}
}

func TestEncodeInt64RoundTrip(t *testing.T) {
	for _, value := range []int64{0, 1, -1, 9223372036854775807, -9223372036854775808} {
		encoded := EncodeInt64(value)
		got, n, err := DecodeInt64(byteReader{bytes.NewBuffer(encoded)})
		if err != nil {
			t.Fatalf("DecodeInt64(%d): %v", value, err)
		}
		if got != value {
			t.Errorf("DecodeInt64 round trip = %d, want %d", got, value)
		}
		if n != SizeInt64(value) {
			t.Errorf("DecodeInt64 consumed %d bytes, want %d", n, SizeInt64(value))
		}
	}
}
