package registry

import (
	"errors"
	"testing"

	"github.com/Lemiort/mclib/protocol"
)

func TestForFallsBackToKnownVersion(t *testing.T) {
	got := For(protocol.Version(9999))
	want := Tables[protocol.Minecraft_1_12_2]
	if got != want {
		t.Fatalf("For(unknown version) did not fall back to 1.12.2 table")
	}
}

func TestLookupUnknownWireIDFails(t *testing.T) {
	tbl := For(protocol.Minecraft_1_12_2)
	_, _, err := tbl.Lookup(protocol.Play, 0x7F7F)
	if !errors.Is(err, ErrUnknownInboundPacket) {
		t.Fatalf("got %v, want ErrUnknownInboundPacket", err)
	}
}

func TestWireIDUnsupportedOutboundFails(t *testing.T) {
	tbl := For(protocol.Minecraft_1_12_2)
	_, err := tbl.WireID(protocol.Play, "NotARealPacket")
	if !errors.Is(err, ErrUnsupportedOutboundPacket) {
		t.Fatalf("got %v, want ErrUnsupportedOutboundPacket", err)
	}
}

func TestKnownInboundAndOutboundResolve(t *testing.T) {
	tbl := For(protocol.Minecraft_1_12_2)

	p, agnosticID, err := tbl.Lookup(protocol.Play, 0x22)
	if err != nil {
		t.Fatalf("Lookup(JoinGame) failed: %v", err)
	}
	if agnosticID != "JoinGame" || p.Kind() != "JoinGame" {
		t.Fatalf("got agnosticID=%q kind=%q, want JoinGame", agnosticID, p.Kind())
	}

	id, err := tbl.WireID(protocol.Play, "ChatMessage")
	if err != nil || id != 0x02 {
		t.Fatalf("WireID(ChatMessage) = (%d, %v), want (0x02, nil)", id, err)
	}
}

func TestEveryRegisteredVersionHasPlayTable(t *testing.T) {
	for _, v := range []protocol.Version{
		protocol.Minecraft_1_8_9, protocol.Minecraft_1_11, protocol.Minecraft_1_12,
		protocol.Minecraft_1_12_1, protocol.Minecraft_1_12_2, protocol.Minecraft_1_13_2,
		protocol.Minecraft_1_14, protocol.Minecraft_1_14_4,
	} {
		tbl := For(v)
		if _, _, err := tbl.Lookup(protocol.Play, 0x22); err != nil {
			t.Fatalf("version %s: Lookup(JoinGame) failed: %v", v, err)
		}
	}
}
