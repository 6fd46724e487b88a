package databuffer

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestBoolRoundTrip(t *testing.T) {
	for _, want := range []bool{true, false} {
		d := New()
		d.WriteBool(want)
		got, err := Wrap(d.Bytes()).ReadBool()
		if err != nil {
			t.Fatalf("ReadBool: %v", err)
		}
		if got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestUByteRoundTrip(t *testing.T) {
	for _, want := range []uint8{0, 1, 127, 255} {
		d := New()
		d.WriteUByte(want)
		got, err := Wrap(d.Bytes()).ReadUByte()
		if err != nil {
			t.Fatalf("ReadUByte: %v", err)
		}
		if got != want {
			t.Fatalf("got %d, want %d", got, want)
		}
	}
}

func TestInt8RoundTrip(t *testing.T) {
	for _, want := range []int8{0, -1, 127, -128} {
		d := New()
		d.WriteInt8(want)
		got, err := Wrap(d.Bytes()).ReadInt8()
		if err != nil {
			t.Fatalf("ReadInt8: %v", err)
		}
		if got != want {
			t.Fatalf("got %d, want %d", got, want)
		}
	}
}

func TestShortRoundTrip(t *testing.T) {
	for _, want := range []int16{0, -1, 32767, -32768} {
		d := New()
		d.WriteShort(want)
		got, err := Wrap(d.Bytes()).ReadShort()
		if err != nil {
			t.Fatalf("ReadShort: %v", err)
		}
		if got != want {
			t.Fatalf("got %d, want %d", got, want)
		}
	}
}

func TestUShortRoundTrip(t *testing.T) {
	for _, want := range []uint16{0, 1, 65535} {
		d := New()
		d.WriteUShort(want)
		got, err := Wrap(d.Bytes()).ReadUShort()
		if err != nil {
			t.Fatalf("ReadUShort: %v", err)
		}
		if got != want {
			t.Fatalf("got %d, want %d", got, want)
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	for _, want := range []int32{0, -1, 2147483647, -2147483648} {
		d := New()
		d.WriteInt(want)
		got, err := Wrap(d.Bytes()).ReadInt()
		if err != nil {
			t.Fatalf("ReadInt: %v", err)
		}
		if got != want {
			t.Fatalf("got %d, want %d", got, want)
		}
	}
}

func TestLongRoundTrip(t *testing.T) {
	for _, want := range []int64{0, -1, 9223372036854775807, -9223372036854775808} {
		d := New()
		d.WriteLong(want)
		got, err := Wrap(d.Bytes()).ReadLong()
		if err != nil {
			t.Fatalf("ReadLong: %v", err)
		}
		if got != want {
			t.Fatalf("got %d, want %d", got, want)
		}
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, want := range []float32{0, 1.5, -1.5, 3.14159} {
		d := New()
		d.WriteFloat(want)
		got, err := Wrap(d.Bytes()).ReadFloat()
		if err != nil {
			t.Fatalf("ReadFloat: %v", err)
		}
		if got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDoubleRoundTrip(t *testing.T) {
	for _, want := range []float64{0, 1.5, -1.5, 3.14159265358979} {
		d := New()
		d.WriteDouble(want)
		got, err := Wrap(d.Bytes()).ReadDouble()
		if err != nil {
			t.Fatalf("ReadDouble: %v", err)
		}
		if got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	for _, want := range []int32{0, 1, -1, 300, 2147483647, -2147483648} {
		d := New()
		d.WriteVarInt(want)
		got, err := Wrap(d.Bytes()).ReadVarInt()
		if err != nil {
			t.Fatalf("ReadVarInt: %v", err)
		}
		if got != want {
			t.Fatalf("got %d, want %d", got, want)
		}
	}
}

func TestVarLongRoundTrip(t *testing.T) {
	for _, want := range []int64{0, 1, -1, 9223372036854775807, -9223372036854775808} {
		d := New()
		d.WriteVarLong(want)
		got, err := Wrap(d.Bytes()).ReadVarLong()
		if err != nil {
			t.Fatalf("ReadVarLong: %v", err)
		}
		if got != want {
			t.Fatalf("got %d, want %d", got, want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, want := range []string{"", "hello", "héllo wörld", "minecraft:overworld"} {
		d := New()
		d.WriteString(want)
		got, err := Wrap(d.Bytes()).ReadString()
		if err != nil {
			t.Fatalf("ReadString: %v", err)
		}
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

func TestStringTooLongFails(t *testing.T) {
	d := New()
	d.WriteVarInt(MaxStringLength + 1)
	_, err := Wrap(d.Bytes()).ReadString()
	if err != ErrStringTooLong {
		t.Fatalf("got %v, want ErrStringTooLong", err)
	}
}

func TestByteArrayRoundTrip(t *testing.T) {
	want := []byte{1, 2, 3, 4, 5, 255, 0}
	d := New()
	d.WriteBytes(want)
	got, err := Wrap(d.Bytes()).ReadByteArray(len(want))
	if err != nil {
		t.Fatalf("ReadByteArray: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	want := uuid.New()
	d := New()
	d.WriteUUID(want)
	got, err := Wrap(d.Bytes()).ReadUUID()
	if err != nil {
		t.Fatalf("ReadUUID: %v", err)
	}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	tests := []struct {
		x, y, z int32
	}{
		{0, 0, 0},
		{1, 2, 3},
		{-1, -1, -1},
		{33554431, 2047, 33554431},   // max positive 26/12/26-bit values
		{-33554432, -2048, -33554432}, // min negative 26/12/26-bit values
	}
	for _, tt := range tests {
		d := New()
		d.WritePosition(tt.x, tt.y, tt.z)
		x, y, z, err := Wrap(d.Bytes()).ReadPosition()
		if err != nil {
			t.Fatalf("ReadPosition: %v", err)
		}
		if x != tt.x || y != tt.y || z != tt.z {
			t.Fatalf("got (%d, %d, %d), want (%d, %d, %d)", x, y, z, tt.x, tt.y, tt.z)
		}
	}
}

func TestReadUnderflow(t *testing.T) {
	d := Wrap([]byte{0x01})
	if _, err := d.ReadLong(); err != ErrReadUnderflow {
		t.Fatalf("got %v, want ErrReadUnderflow", err)
	}
}

func TestReadOffsetTracksConsumedBytes(t *testing.T) {
	d := New()
	d.WriteInt(1)
	d.WriteInt(2)
	r := Wrap(d.Bytes())
	if _, err := r.ReadInt(); err != nil {
		t.Fatalf("ReadInt: %v", err)
	}
	if r.ReadOffset() != 4 {
		t.Fatalf("ReadOffset() = %d, want 4", r.ReadOffset())
	}
	if len(r.Remaining()) != 4 {
		t.Fatalf("len(Remaining()) = %d, want 4", len(r.Remaining()))
	}
	if r.IsFinished() {
		t.Fatalf("IsFinished() = true, want false")
	}
	if _, err := r.ReadInt(); err != nil {
		t.Fatalf("ReadInt: %v", err)
	}
	if !r.IsFinished() {
		t.Fatalf("IsFinished() = false, want true")
	}
}
