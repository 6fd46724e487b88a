package inventory

import (
	"testing"

	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/packets/out"
)

type fakeSender struct {
	sent []packets.Outbound
}

func (f *fakeSender) Send(p packets.Outbound) error {
	f.sent = append(f.sent, p)
	return nil
}

func TestPickUpFailsOnOccupiedCursor(t *testing.T) {
	s := &fakeSender{}
	inv := New(0, s)
	inv.SetSlot(-1, packets.Slot{ItemID: 1, Count: 1})

	if err := inv.PickUp(5); err != ErrCursorOccupied {
		t.Fatalf("got %v, want ErrCursorOccupied", err)
	}
}

func TestPickUpFailsOnEmptySlot(t *testing.T) {
	s := &fakeSender{}
	inv := New(0, s)

	if err := inv.PickUp(5); err != ErrSlotEmpty {
		t.Fatalf("got %v, want ErrSlotEmpty", err)
	}
}

func TestPickUpRemapsMainInventoryToWindowMinus2(t *testing.T) {
	s := &fakeSender{}
	inv := New(0, s)
	inv.SetSlot(10, packets.Slot{ItemID: 5, Count: 1})

	if err := inv.PickUp(10); err != nil {
		t.Fatalf("PickUp: %v", err)
	}
	if len(s.sent) != 1 {
		t.Fatalf("expected 1 outbound packet, got %d", len(s.sent))
	}
	click := s.sent[0].(*out.ClickWindow)
	if click.WindowID != -2 {
		t.Fatalf("got windowId %d, want -2", click.WindowID)
	}
}

func TestPlaceFailsOnEmptyCursor(t *testing.T) {
	s := &fakeSender{}
	inv := New(0, s)

	if err := inv.Place(5); err != ErrCursorEmpty {
		t.Fatalf("got %v, want ErrCursorEmpty", err)
	}
}

func TestManagerConfirmTransactionEchoesRejection(t *testing.T) {
	s := &fakeSender{}
	m := NewManager(s)

	if err := m.HandleConfirmTransaction(0, 3, true); err != nil {
		t.Fatalf("accepted transaction should not error: %v", err)
	}
	if len(s.sent) != 0 {
		t.Fatalf("accepted transaction should not emit a reply, got %d", len(s.sent))
	}

	if err := m.HandleConfirmTransaction(0, 3, false); err != nil {
		t.Fatalf("HandleConfirmTransaction: %v", err)
	}
	if len(s.sent) != 1 {
		t.Fatalf("expected 1 outbound packet, got %d", len(s.sent))
	}
	confirm := s.sent[0].(*out.ConfirmTransaction)
	if confirm.Accepted {
		t.Fatalf("echoed confirmation must carry accepted=false")
	}
}

func TestManagerWindowItemsReplacesSlots(t *testing.T) {
	s := &fakeSender{}
	m := NewManager(s)
	m.HandleWindowItems(0, []packets.Slot{
		{ItemID: 1, Count: 1},
		{ItemID: 2, Count: 1},
	})

	if got := m.Player().Slot(1).ItemID; got != 2 {
		t.Fatalf("got slot 1 itemId %d, want 2", got)
	}
}
