// Package registry holds the per-version, per-state packet id tables of
// spec.md §4.5 and the Dispatcher that routes decoded inbound packets to
// handlers. It is kept separate from package protocol (which stays free
// of any packet-type dependency) and from package packets (which stays
// free of any version/state dependency) precisely so that this package
// can import both without creating a cycle.
package registry

import (
	"errors"
	"fmt"

	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/protocol"
)

// ErrUnknownInboundPacket is returned by Lookup when no entry exists for
// a (state, wireId) pair (spec.md §4.5, §7).
var ErrUnknownInboundPacket = errors.New("registry: unknown inbound packet")

// ErrUnsupportedOutboundPacket is returned by WireID when the negotiated
// version's table has no entry for an outbound packet kind (spec.md §4.5,
// §7: "fails the call rather than emitting zero-byte garbage").
var ErrUnsupportedOutboundPacket = errors.New("registry: unsupported outbound packet for this version")

// inboundEntry pairs a blank-packet constructor with the version-
// independent identifier used for handler registration.
type inboundEntry struct {
	construct  func() packets.Inbound
	agnosticID string
}

// Table is one protocol version's complete packet registry: inbound
// wireId -> constructor+agnosticId, and outbound agnosticId -> wireId,
// both keyed first by state.
type Table struct {
	version  protocol.Version
	inbound  map[protocol.State]map[int32]inboundEntry
	outbound map[protocol.State]map[string]int32
}

func newTable(version protocol.Version) *Table {
	return &Table{
		version:  version,
		inbound:  make(map[protocol.State]map[int32]inboundEntry),
		outbound: make(map[protocol.State]map[string]int32),
	}
}

func (t *Table) addInbound(state protocol.State, wireID int32, agnosticID string, construct func() packets.Inbound) {
	if t.inbound[state] == nil {
		t.inbound[state] = make(map[int32]inboundEntry)
	}
	t.inbound[state][wireID] = inboundEntry{construct: construct, agnosticID: agnosticID}
}

func (t *Table) addOutbound(state protocol.State, agnosticID string, wireID int32) {
	if t.outbound[state] == nil {
		t.outbound[state] = make(map[string]int32)
	}
	t.outbound[state][agnosticID] = wireID
}

// Lookup resolves a wireId read off the wire to a blank inbound packet
// and its agnostic id, for the given state.
func (t *Table) Lookup(state protocol.State, wireID int32) (packets.Inbound, string, error) {
	entry, ok := t.inbound[state][wireID]
	if !ok {
		return nil, "", fmt.Errorf("%w: state=%s wireId=%#x", ErrUnknownInboundPacket, state, wireID)
	}
	return entry.construct(), entry.agnosticID, nil
}

// WireID resolves an outbound packet's agnosticId (its Kind()) to the
// wire id this version uses for it, in the given state.
func (t *Table) WireID(state protocol.State, agnosticID string) (int32, error) {
	id, ok := t.outbound[state][agnosticID]
	if !ok {
		return 0, fmt.Errorf("%w: version=%s state=%s kind=%s", ErrUnsupportedOutboundPacket, t.version, state, agnosticID)
	}
	return id, nil
}
