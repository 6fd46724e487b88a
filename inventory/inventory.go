// Package inventory implements the window/cursor model of spec.md §4.8,
// grounded on original_source/mclib/inventory/Inventory.{h,cpp}'s
// PickUp/Place/transaction-confirmation logic, re-expressed as plain Go
// methods consuming packets handed to it by the dispatcher rather than as
// a class hanging off a shared Connection pointer.
package inventory

import (
	"errors"

	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/packets/out"
)

// ErrCursorOccupied is returned by PickUp when the cursor already holds
// an item.
var ErrCursorOccupied = errors.New("inventory: cursor already holds an item")

// ErrSlotEmpty is returned by PickUp when the target slot holds nothing.
var ErrSlotEmpty = errors.New("inventory: target slot is empty")

// ErrCursorEmpty is returned by Place when the cursor holds nothing to
// place.
var ErrCursorEmpty = errors.New("inventory: cursor is empty")

// Sender is the subset of Connection an Inventory needs to emit outbound
// packets; handlers hold a non-owning reference per spec.md §3.
type Sender interface {
	Send(p packets.Outbound) error
}

// Inventory is one open window: {windowId, items, cursor, nextActionId}
// (spec.md §3).
type Inventory struct {
	WindowID     int32
	items        map[int32]packets.Slot
	cursor       packets.Slot
	nextActionID int16

	sender Sender
}

// New returns an empty inventory for windowID, bound to sender for
// emitting PickUp/Place outbound traffic.
func New(windowID int32, sender Sender) *Inventory {
	return &Inventory{
		WindowID: windowID,
		items:    make(map[int32]packets.Slot),
		cursor:   packets.EmptySlot(),
		sender:   sender,
	}
}

// Slot returns the item at index, or an empty slot if unset.
func (inv *Inventory) Slot(index int32) packets.Slot {
	if s, ok := inv.items[index]; ok {
		return s
	}
	return packets.EmptySlot()
}

// Cursor returns the item currently held by the cursor.
func (inv *Inventory) Cursor() packets.Slot { return inv.cursor }

// SetSlot sets the slot at index (spec.md §4.8: WindowItems/SetSlot
// consumption). index == -1 is the cursor.
func (inv *Inventory) SetSlot(index int32, s packets.Slot) {
	if index == -1 {
		inv.cursor = s
		return
	}
	inv.items[index] = s
}

// ReplaceAll overwrites slot indices [0, len(slots)) per WindowItems
// (spec.md §4.8).
func (inv *Inventory) ReplaceAll(slots []packets.Slot) {
	inv.items = make(map[int32]packets.Slot, len(slots))
	for i, s := range slots {
		inv.items[int32(i)] = s
	}
}

// PickUp implements spec.md §4.8's PickUp(index): fails if the cursor is
// occupied or the target slot is empty; otherwise emits a ClickWindow
// click (button=0, mode=0) carrying the current slot contents and
// advances nextActionId. windowId 0 (player inventory) with index < 36
// is remapped to windowId -2 per spec.md.
func (inv *Inventory) PickUp(index int32) error {
	if !inv.cursor.Empty() {
		return ErrCursorOccupied
	}
	target := inv.Slot(index)
	if target.Empty() {
		return ErrSlotEmpty
	}

	windowID := inv.WindowID
	if windowID == 0 && index < 36 {
		windowID = -2
	}

	actionID := inv.nextActionID
	inv.nextActionID++

	return inv.sender.Send(&out.ClickWindow{
		WindowID:    windowID,
		SlotIndex:   index,
		Button:      0,
		ActionID:    actionID,
		Mode:        0,
		ClickedItem: target,
	})
}

// Place implements spec.md §4.8's Place(index): fails if the cursor is
// empty; otherwise emits a ClickWindow click carrying an empty slot. The
// server's reply (via SetSlot) is what actually updates cursor/slot
// state; Place does not mutate local state itself.
func (inv *Inventory) Place(index int32) error {
	if inv.cursor.Empty() {
		return ErrCursorEmpty
	}

	actionID := inv.nextActionID
	inv.nextActionID++

	return inv.sender.Send(&out.ClickWindow{
		WindowID:    inv.WindowID,
		SlotIndex:   index,
		Button:      0,
		ActionID:    actionID,
		Mode:        0,
		ClickedItem: packets.EmptySlot(),
	})
}
