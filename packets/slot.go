package packets

import (
	"github.com/Lemiort/mclib/nbt"
	"github.com/Lemiort/mclib/protocol"
)

// Slot is a serialised inventory item: {itemId: i32 | -1 empty, count: u8,
// damage: i16, nbt: NBT?}. Serialisation form differs between legacy
// (pre-1.13) and post-1.13 versions (spec.md §3, grounded on
// original_source/mclib/inventory/Slot.{h,cpp}).
type Slot struct {
	ItemID int32
	Count  uint8
	Damage int16
	Tag    nbt.NBT
}

// EmptySlot is the canonical empty slot value (ItemID -1, nothing else
// set), matching the C++ default constructor.
func EmptySlot() Slot { return Slot{ItemID: -1} }

// Empty reports whether this slot holds no item.
func (s Slot) Empty() bool { return s.ItemID < 0 }

// Serialize writes the slot in the form appropriate to version.
func (s Slot) Serialize(buf Writer, version protocol.Version) {
	if version.SlotHasPresenceFlag() {
		if s.Empty() {
			buf.WriteBool(false)
			return
		}
		buf.WriteBool(true)
		buf.WriteVarInt(s.ItemID)
		buf.WriteUByte(s.Count)
		s.Tag.WriteTo(buf)
		return
	}

	buf.WriteShort(int16(s.ItemID))
	if s.Empty() {
		return
	}
	buf.WriteUByte(s.Count)
	buf.WriteShort(s.Damage)
	s.Tag.WriteTo(buf)
}

// Deserialize reads a slot in the form appropriate to version.
func (s *Slot) Deserialize(buf Reader, version protocol.Version) error {
	*s = EmptySlot()

	if version.SlotHasPresenceFlag() {
		present, err := buf.ReadBool()
		if err != nil {
			return err
		}
		if !present {
			return nil
		}
		id, err := buf.ReadVarInt()
		if err != nil {
			return err
		}
		s.ItemID = id
		if s.Count, err = buf.ReadUByte(); err != nil {
			return err
		}
		return s.Tag.ReadFrom(buf)
	}

	id, err := buf.ReadShort()
	if err != nil {
		return err
	}
	s.ItemID = int32(id)
	if s.Empty() {
		return nil
	}
	if s.Count, err = buf.ReadUByte(); err != nil {
		return err
	}
	if s.Damage, err = buf.ReadShort(); err != nil {
		return err
	}
	return s.Tag.ReadFrom(buf)
}
