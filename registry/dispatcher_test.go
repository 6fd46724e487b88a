package registry

import (
	"testing"

	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/protocol"
)

type fakePacket struct{ kind string }

func (p *fakePacket) Kind() string { return p.kind }
func (p *fakePacket) Deserialize(packets.Reader, protocol.Version) error { return nil }

func TestDispatchRunsHandlersInRegistrationOrder(t *testing.T) {
	d := NewDispatcher(nil)
	var order []string
	d.On(protocol.Play, "KeepAlive", func(packets.Inbound) { order = append(order, "first") })
	d.On(protocol.Play, "KeepAlive", func(packets.Inbound) { order = append(order, "second") })

	d.Dispatch(protocol.Play, &fakePacket{kind: "KeepAlive"})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("got %v, want [first second]", order)
	}
}

func TestDispatchOnlyRunsMatchingStateAndKind(t *testing.T) {
	d := NewDispatcher(nil)
	calls := 0
	d.On(protocol.Play, "KeepAlive", func(packets.Inbound) { calls++ })

	d.Dispatch(protocol.Login, &fakePacket{kind: "KeepAlive"})
	d.Dispatch(protocol.Play, &fakePacket{kind: "JoinGame"})
	if calls != 0 {
		t.Fatalf("got %d calls, want 0 for mismatched state/kind", calls)
	}

	d.Dispatch(protocol.Play, &fakePacket{kind: "KeepAlive"})
	if calls != 1 {
		t.Fatalf("got %d calls, want 1", calls)
	}
}

func TestDispatchWithNoHandlerDoesNotPanic(t *testing.T) {
	d := NewDispatcher(nil)
	d.Dispatch(protocol.Play, &fakePacket{kind: "Unregistered"})
}

func TestDispatchPreservesArrivalOrderAcrossPackets(t *testing.T) {
	d := NewDispatcher(nil)
	var seen []string
	d.On(protocol.Play, "A", func(packets.Inbound) { seen = append(seen, "A") })
	d.On(protocol.Play, "B", func(packets.Inbound) { seen = append(seen, "B") })

	d.Dispatch(protocol.Play, &fakePacket{kind: "A"})
	d.Dispatch(protocol.Play, &fakePacket{kind: "B"})
	d.Dispatch(protocol.Play, &fakePacket{kind: "A"})

	want := []string{"A", "B", "A"}
	if len(seen) != len(want) {
		t.Fatalf("got %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("got %v, want %v", seen, want)
		}
	}
}
