// Package nbt implements the Named Binary Tag format: the recursive,
// named, typed tree used by several packets and by inventory Slot payloads.
//
// Tags are read from and written to a *databuffer.DataBuffer the way the
// rest of mclib's composite wire types are, rather than a bare io.Reader, so
// NBT trees compose with VarInt/Position/UUID the way spec.md describes.
package nbt

import (
	"fmt"

	"github.com/Lemiort/mclib/databuffer"
)

// TagType is the header byte identifying the type of a tag.
type TagType byte

const (
	TagEnd       TagType = 0
	TagByte      TagType = 1
	TagShort     TagType = 2
	TagInt       TagType = 3
	TagLong      TagType = 4
	TagFloat     TagType = 5
	TagDouble    TagType = 6
	TagByteArray TagType = 7
	TagString    TagType = 8
	TagList      TagType = 9
	TagCompound  TagType = 10
	TagIntArray  TagType = 11
	TagLongArray TagType = 12
)

// Tag is the interface every NBT node implements.
type Tag interface {
	Type() TagType
	writePayload(buf *databuffer.DataBuffer)
	readPayload(buf *databuffer.DataBuffer) error
}

func newTag(t TagType) (Tag, error) {
	switch t {
	case TagByte:
		return new(Byte), nil
	case TagShort:
		return new(Short), nil
	case TagInt:
		return new(Int), nil
	case TagLong:
		return new(Long), nil
	case TagFloat:
		return new(Float), nil
	case TagDouble:
		return new(Double), nil
	case TagByteArray:
		return new(ByteArray), nil
	case TagString:
		return new(String), nil
	case TagList:
		return new(List), nil
	case TagCompound:
		return make(Compound), nil
	case TagIntArray:
		return new(IntArray), nil
	case TagLongArray:
		return new(LongArray), nil
	default:
		return nil, fmt.Errorf("nbt: invalid tag type %#x", t)
	}
}

// NBT wraps an optional root Compound, the shape carried by inventory Slot's
// "tag" field: present or absent, never any other tag type at the root.
type NBT struct {
	root Compound
	has  bool
}

// HasData reports whether a root compound was ever set.
func (n NBT) HasData() bool { return n.has }

// Root returns the root compound (nil-safe: empty Compound if unset).
func (n NBT) Root() Compound {
	if n.root == nil {
		return Compound{}
	}
	return n.root
}

// SetRoot replaces the root compound.
func (n *NBT) SetRoot(c Compound) {
	n.root = c
	n.has = true
}

// WriteTo serialises a named root-compound NBT tree: type byte, empty root
// name, payload. An empty/unset NBT writes a bare TagEnd.
func (n NBT) WriteTo(buf *databuffer.DataBuffer) {
	if !n.has {
		buf.WriteUByte(byte(TagEnd))
		return
	}
	buf.WriteUByte(byte(TagCompound))
	writeModifiedUTF8(buf, "")
	n.root.writePayload(buf)
}

// ReadFrom parses a named root-compound NBT tree off buf.
func (n *NBT) ReadFrom(buf *databuffer.DataBuffer) error {
	typeByte, err := buf.ReadUByte()
	if err != nil {
		return err
	}
	if TagType(typeByte) == TagEnd {
		n.has = false
		n.root = nil
		return nil
	}
	if TagType(typeByte) != TagCompound {
		return fmt.Errorf("nbt: root tag must be compound or end, got %#x", typeByte)
	}
	if _, err := readModifiedUTF8(buf); err != nil {
		return err
	}
	c := make(Compound)
	if err := c.readPayload(buf); err != nil {
		return err
	}
	n.root = c
	n.has = true
	return nil
}

// --- scalar tags ---

type Byte struct{ Value int8 }

func (*Byte) Type() TagType { return TagByte }
func (t *Byte) writePayload(buf *databuffer.DataBuffer) { buf.WriteInt8(t.Value) }
func (t *Byte) readPayload(buf *databuffer.DataBuffer) (err error) {
	t.Value, err = buf.ReadInt8()
	return
}

type Short struct{ Value int16 }

func (*Short) Type() TagType { return TagShort }
func (t *Short) writePayload(buf *databuffer.DataBuffer) { buf.WriteShort(t.Value) }
func (t *Short) readPayload(buf *databuffer.DataBuffer) (err error) {
	t.Value, err = buf.ReadShort()
	return
}

type Int struct{ Value int32 }

func (*Int) Type() TagType { return TagInt }
func (t *Int) writePayload(buf *databuffer.DataBuffer) { buf.WriteInt(t.Value) }
func (t *Int) readPayload(buf *databuffer.DataBuffer) (err error) {
	t.Value, err = buf.ReadInt()
	return
}

type Long struct{ Value int64 }

func (*Long) Type() TagType { return TagLong }
func (t *Long) writePayload(buf *databuffer.DataBuffer) { buf.WriteLong(t.Value) }
func (t *Long) readPayload(buf *databuffer.DataBuffer) (err error) {
	t.Value, err = buf.ReadLong()
	return
}

type Float struct{ Value float32 }

func (*Float) Type() TagType { return TagFloat }
func (t *Float) writePayload(buf *databuffer.DataBuffer) { buf.WriteFloat(t.Value) }
func (t *Float) readPayload(buf *databuffer.DataBuffer) (err error) {
	t.Value, err = buf.ReadFloat()
	return
}

type Double struct{ Value float64 }

func (*Double) Type() TagType { return TagDouble }
func (t *Double) writePayload(buf *databuffer.DataBuffer) { buf.WriteDouble(t.Value) }
func (t *Double) readPayload(buf *databuffer.DataBuffer) (err error) {
	t.Value, err = buf.ReadDouble()
	return
}

type ByteArray struct{ Value []int8 }

func (*ByteArray) Type() TagType { return TagByteArray }
func (t *ByteArray) writePayload(buf *databuffer.DataBuffer) {
	buf.WriteInt(int32(len(t.Value)))
	for _, v := range t.Value {
		buf.WriteInt8(v)
	}
}
func (t *ByteArray) readPayload(buf *databuffer.DataBuffer) error {
	n, err := buf.ReadInt()
	if err != nil {
		return err
	}
	t.Value = make([]int8, n)
	for i := range t.Value {
		v, err := buf.ReadInt8()
		if err != nil {
			return err
		}
		t.Value[i] = v
	}
	return nil
}

type IntArray struct{ Value []int32 }

func (*IntArray) Type() TagType { return TagIntArray }
func (t *IntArray) writePayload(buf *databuffer.DataBuffer) {
	buf.WriteInt(int32(len(t.Value)))
	for _, v := range t.Value {
		buf.WriteInt(v)
	}
}
func (t *IntArray) readPayload(buf *databuffer.DataBuffer) error {
	n, err := buf.ReadInt()
	if err != nil {
		return err
	}
	t.Value = make([]int32, n)
	for i := range t.Value {
		v, err := buf.ReadInt()
		if err != nil {
			return err
		}
		t.Value[i] = v
	}
	return nil
}

type LongArray struct{ Value []int64 }

func (*LongArray) Type() TagType { return TagLongArray }
func (t *LongArray) writePayload(buf *databuffer.DataBuffer) {
	buf.WriteInt(int32(len(t.Value)))
	for _, v := range t.Value {
		buf.WriteLong(v)
	}
}
func (t *LongArray) readPayload(buf *databuffer.DataBuffer) error {
	n, err := buf.ReadInt()
	if err != nil {
		return err
	}
	t.Value = make([]int64, n)
	for i := range t.Value {
		v, err := buf.ReadLong()
		if err != nil {
			return err
		}
		t.Value[i] = v
	}
	return nil
}

type String struct{ Value string }

func (*String) Type() TagType { return TagString }
func (t *String) writePayload(buf *databuffer.DataBuffer) { writeModifiedUTF8(buf, t.Value) }
func (t *String) readPayload(buf *databuffer.DataBuffer) (err error) {
	t.Value, err = readModifiedUTF8(buf)
	return
}

// List holds a homogeneous sequence of tags sharing ElemType.
type List struct {
	ElemType TagType
	Items    []Tag
}

func (*List) Type() TagType { return TagList }
func (t *List) writePayload(buf *databuffer.DataBuffer) {
	buf.WriteUByte(byte(t.ElemType))
	buf.WriteInt(int32(len(t.Items)))
	for _, item := range t.Items {
		item.writePayload(buf)
	}
}
func (t *List) readPayload(buf *databuffer.DataBuffer) error {
	elemByte, err := buf.ReadUByte()
	if err != nil {
		return err
	}
	t.ElemType = TagType(elemByte)

	n, err := buf.ReadInt()
	if err != nil {
		return err
	}
	t.Items = make([]Tag, 0, n)
	for i := int32(0); i < n; i++ {
		item, err := newTag(t.ElemType)
		if err != nil {
			return err
		}
		if err := item.readPayload(buf); err != nil {
			return err
		}
		t.Items = append(t.Items, item)
	}
	return nil
}

// Compound is a sequence of typed named tags terminated by TagEnd. Field
// order is not preserved across a read/write round-trip; none of mclib's
// NBT consumers look up fields positionally.
type Compound map[string]Tag

func (Compound) Type() TagType { return TagCompound }

func (c Compound) writePayload(buf *databuffer.DataBuffer) {
	for name, tag := range c {
		buf.WriteUByte(byte(tag.Type()))
		writeModifiedUTF8(buf, name)
		tag.writePayload(buf)
	}
	buf.WriteUByte(byte(TagEnd))
}

func (c Compound) readPayload(buf *databuffer.DataBuffer) error {
	for {
		typeByte, err := buf.ReadUByte()
		if err != nil {
			return err
		}
		if TagType(typeByte) == TagEnd {
			return nil
		}
		name, err := readModifiedUTF8(buf)
		if err != nil {
			return err
		}
		tag, err := newTag(TagType(typeByte))
		if err != nil {
			return err
		}
		if err := tag.readPayload(buf); err != nil {
			return err
		}
		c[name] = tag
	}
}
