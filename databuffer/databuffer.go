// Package databuffer implements a growable byte buffer with big-endian
// primitive (de)serialisation and a read cursor, the vocabulary every packet
// type in mclib is built from.
package databuffer

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/Lemiort/mclib/varint"
)

// ErrReadUnderflow is returned whenever a read would run past the end of
// the buffer.
var ErrReadUnderflow = errors.New("databuffer: read underflow")

// ErrStringTooLong guards against a hostile or malformed length prefix
// inflating an allocation.
var ErrStringTooLong = errors.New("databuffer: string too long")

// MaxStringLength bounds incoming string payloads; matches the Notchian
// server's own limit on chat/identifier-sized strings.
const MaxStringLength = 32767 * 4

// DataBuffer owns a byte sequence and a read offset. Writes always append;
// reads advance the offset and fail with ErrReadUnderflow if short, except
// VarInt/VarLong reads, which fail with varint.ErrShortBuffer.
type DataBuffer struct {
	data   []byte
	offset int
}

// New returns an empty DataBuffer.
func New() *DataBuffer {
	return &DataBuffer{}
}

// Wrap returns a DataBuffer reading from (and able to append to) b.
func Wrap(b []byte) *DataBuffer {
	return &DataBuffer{data: b}
}

// Bytes returns the full backing slice, regardless of read offset.
func (d *DataBuffer) Bytes() []byte { return d.data }

// Remaining returns the unread tail of the buffer.
func (d *DataBuffer) Remaining() []byte { return d.data[d.offset:] }

// Size returns the total number of bytes ever written/wrapped.
func (d *DataBuffer) Size() int { return len(d.data) }

// ReadOffset returns the current read cursor.
func (d *DataBuffer) ReadOffset() int { return d.offset }

// SetReadOffset repositions the read cursor.
func (d *DataBuffer) SetReadOffset(offset int) { d.offset = offset }

// IsFinished reports whether every byte has been read.
func (d *DataBuffer) IsFinished() bool { return d.offset >= len(d.data) }

func (d *DataBuffer) need(n int) error {
	if len(d.data)-d.offset < n {
		return ErrReadUnderflow
	}
	return nil
}

// ReadByte implements io.ByteReader, satisfying varint's decode source.
func (d *DataBuffer) ReadByte() (byte, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	b := d.data[d.offset]
	d.offset++
	return b, nil
}

// --- writes ---

// WriteBytes appends raw bytes verbatim.
func (d *DataBuffer) WriteBytes(b []byte) { d.data = append(d.data, b...) }

// WriteBool appends a single boolean byte.
func (d *DataBuffer) WriteBool(v bool) {
	if v {
		d.data = append(d.data, 1)
	} else {
		d.data = append(d.data, 0)
	}
}

// WriteUByte appends an unsigned byte.
func (d *DataBuffer) WriteUByte(v uint8) { d.data = append(d.data, v) }

// WriteByte appends a signed byte, satisfying io.ByteWriter too.
func (d *DataBuffer) WriteByte(v byte) error {
	d.data = append(d.data, v)
	return nil
}

// WriteInt8 appends a signed byte.
func (d *DataBuffer) WriteInt8(v int8) { d.data = append(d.data, byte(v)) }

// WriteShort appends a big-endian int16.
func (d *DataBuffer) WriteShort(v int16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	d.data = append(d.data, b[:]...)
}

// WriteUShort appends a big-endian uint16.
func (d *DataBuffer) WriteUShort(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	d.data = append(d.data, b[:]...)
}

// WriteInt appends a big-endian int32.
func (d *DataBuffer) WriteInt(v int32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	d.data = append(d.data, b[:]...)
}

// WriteLong appends a big-endian int64.
func (d *DataBuffer) WriteLong(v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	d.data = append(d.data, b[:]...)
}

// WriteFloat appends a big-endian float32.
func (d *DataBuffer) WriteFloat(v float32) {
	d.WriteInt(int32(math.Float32bits(v)))
}

// WriteDouble appends a big-endian float64.
func (d *DataBuffer) WriteDouble(v float64) {
	d.WriteLong(int64(math.Float64bits(v)))
}

// WriteVarInt appends a 32-bit VarInt.
func (d *DataBuffer) WriteVarInt(v int32) {
	d.data = append(d.data, varint.EncodeInt32(v)...)
}

// WriteVarLong appends a 64-bit VarLong.
func (d *DataBuffer) WriteVarLong(v int64) {
	d.data = append(d.data, varint.EncodeInt64(v)...)
}

// WriteString appends a VarInt length prefix followed by the UTF-8 bytes.
func (d *DataBuffer) WriteString(s string) {
	d.WriteVarInt(int32(len(s)))
	d.data = append(d.data, s...)
}

// WriteUUID appends a UUID as two big-endian 64-bit halves.
func (d *DataBuffer) WriteUUID(id uuid.UUID) {
	d.WriteLong(int64(binary.BigEndian.Uint64(id[0:8])))
	d.WriteLong(int64(binary.BigEndian.Uint64(id[8:16])))
}

// WritePosition appends the packed Position encoding of spec.md §4.2.
func (d *DataBuffer) WritePosition(x, y, z int32) {
	d.WriteLong(EncodePosition(x, y, z))
}

// --- reads ---

// ReadBool reads a single boolean byte.
func (d *DataBuffer) ReadBool() (bool, error) {
	b, err := d.ReadByte()
	return b != 0, err
}

// ReadUByte reads an unsigned byte.
func (d *DataBuffer) ReadUByte() (uint8, error) {
	return d.ReadByte()
}

// ReadInt8 reads a signed byte.
func (d *DataBuffer) ReadInt8() (int8, error) {
	b, err := d.ReadByte()
	return int8(b), err
}

// ReadShort reads a big-endian int16.
func (d *DataBuffer) ReadShort() (int16, error) {
	if err := d.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(d.data[d.offset:])
	d.offset += 2
	return int16(v), nil
}

// ReadUShort reads a big-endian uint16.
func (d *DataBuffer) ReadUShort() (uint16, error) {
	if err := d.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(d.data[d.offset:])
	d.offset += 2
	return v, nil
}

// ReadInt reads a big-endian int32.
func (d *DataBuffer) ReadInt() (int32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(d.data[d.offset:])
	d.offset += 4
	return int32(v), nil
}

// ReadLong reads a big-endian int64.
func (d *DataBuffer) ReadLong() (int64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(d.data[d.offset:])
	d.offset += 8
	return int64(v), nil
}

// ReadFloat reads a big-endian float32.
func (d *DataBuffer) ReadFloat() (float32, error) {
	v, err := d.ReadInt()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v)), nil
}

// ReadDouble reads a big-endian float64.
func (d *DataBuffer) ReadDouble() (float64, error) {
	v, err := d.ReadLong()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(v)), nil
}

// ReadVarInt reads a 32-bit VarInt.
func (d *DataBuffer) ReadVarInt() (int32, error) {
	v, n, err := varint.DecodeInt32(d)
	_ = n
	return v, err
}

// ReadVarLong reads a 64-bit VarLong.
func (d *DataBuffer) ReadVarLong() (int64, error) {
	v, n, err := varint.DecodeInt64(d)
	_ = n
	return v, err
}

// ReadString reads a VarInt length prefix followed by that many UTF-8
// bytes.
func (d *DataBuffer) ReadString() (string, error) {
	length, err := d.ReadVarInt()
	if err != nil {
		return "", err
	}
	if length < 0 || int(length) > MaxStringLength {
		return "", ErrStringTooLong
	}
	if err := d.need(int(length)); err != nil {
		return "", err
	}
	s := string(d.data[d.offset : d.offset+int(length)])
	d.offset += int(length)
	return s, nil
}

// ReadByteArray reads n raw bytes.
func (d *DataBuffer) ReadByteArray(n int) ([]byte, error) {
	if err := d.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, d.data[d.offset:d.offset+n])
	d.offset += n
	return out, nil
}

// ReadUUID reads a UUID as two big-endian 64-bit halves.
func (d *DataBuffer) ReadUUID() (uuid.UUID, error) {
	hi, err := d.ReadLong()
	if err != nil {
		return uuid.UUID{}, err
	}
	lo, err := d.ReadLong()
	if err != nil {
		return uuid.UUID{}, err
	}
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[0:8], uint64(hi))
	binary.BigEndian.PutUint64(id[8:16], uint64(lo))
	return id, nil
}

// ReadPosition reads the packed Position encoding of spec.md §4.2.
func (d *DataBuffer) ReadPosition() (x, y, z int32, err error) {
	v, err := d.ReadLong()
	if err != nil {
		return 0, 0, 0, err
	}
	x, y, z = DecodePosition(v)
	return x, y, z, nil
}

// EncodePosition packs (x, y, z) into the single 64-bit value spec.md §4.2
// describes: bits 63..38 = x (26 signed), 37..26 = y (12 signed),
// 25..0 = z (26 signed).
func EncodePosition(x, y, z int32) int64 {
	ux := uint64(x) & 0x3FFFFFF
	uy := uint64(y) & 0xFFF
	uz := uint64(z) & 0x3FFFFFF
	return int64(ux<<38 | uy<<26 | uz)
}

// DecodePosition unpacks the Position encoding, sign-extending each field.
func DecodePosition(v int64) (x, y, z int32) {
	uv := uint64(v)
	x = signExtend(uv>>38, 26)
	y = signExtend(uv>>26, 12)
	z = signExtend(uv, 26)
	return x, y, z
}

func signExtend(v uint64, bits uint) int32 {
	v &= (1 << bits) - 1
	if v >= 1<<(bits-1) {
		return int32(v - (1 << bits))
	}
	return int32(v)
}
