package inventory

import (
	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/packets/out"
)

// Manager owns every open Inventory, keyed by windowId, and is the
// dispatcher-facing surface that consumes SetSlot/WindowItems/
// OpenWindow/ConfirmTransaction (spec.md §4.8).
type Manager struct {
	windows map[int32]*Inventory
	sender  Sender
}

// NewManager returns a Manager with window 0 (the player inventory)
// already open, matching the server's own assumption that it always
// exists.
func NewManager(sender Sender) *Manager {
	m := &Manager{windows: make(map[int32]*Inventory), sender: sender}
	m.windows[0] = New(0, sender)
	return m
}

// Window returns the inventory for windowID, or nil if none is open.
func (m *Manager) Window(windowID int32) *Inventory {
	return m.windows[windowID]
}

// Player returns the player's own inventory (window 0).
func (m *Manager) Player() *Inventory { return m.windows[0] }

// HandleOpenWindow replaces any existing inventory at windowID (spec.md
// §4.8).
func (m *Manager) HandleOpenWindow(windowID int32) {
	m.windows[windowID] = New(windowID, m.sender)
}

// HandleWindowItems overwrites slot indices [0, len(slots)) in windowID.
func (m *Manager) HandleWindowItems(windowID int32, slots []packets.Slot) {
	inv := m.windows[windowID]
	if inv == nil {
		inv = New(windowID, m.sender)
		m.windows[windowID] = inv
	}
	inv.ReplaceAll(slots)
}

// HandleSetSlot sets a single slot. windowID -1 addresses the player
// inventory's cursor regardless of slotIndex (spec.md §4.8).
func (m *Manager) HandleSetSlot(windowID int32, slotIndex int32, s packets.Slot) {
	target := windowID
	if windowID == -1 {
		target = 0
	}
	inv := m.windows[target]
	if inv == nil {
		inv = New(target, m.sender)
		m.windows[target] = inv
	}
	if windowID == -1 {
		inv.SetSlot(-1, s)
		return
	}
	inv.SetSlot(slotIndex, s)
}

// HandleConfirmTransaction implements spec.md §4.8: an unaccepted
// transaction is immediately echoed back with accepted=false to
// re-synchronise the server's pending action counter.
func (m *Manager) HandleConfirmTransaction(windowID int8, actionID int16, accepted bool) error {
	if accepted {
		return nil
	}
	return m.sender.Send(&out.ConfirmTransaction{
		WindowID: windowID,
		ActionID: actionID,
		Accepted: false,
	})
}

// CloseWindow drops the local record of windowID (the player inventory,
// window 0, is never dropped).
func (m *Manager) CloseWindow(windowID int32) {
	if windowID == 0 {
		return
	}
	delete(m.windows, windowID)
}
