// Package packets defines the typed inbound and outbound packet records
// of spec.md §4.5-§4.6: the Play-state inbound breadth plus Handshake/
// Status/Login (package in), and the outbound records (package out),
// each self-serialising against a *databuffer.DataBuffer. Three
// Play-state inbound kinds — OpenBook and the two advancement variants —
// stay generic stubs per spec.md §9; every other inbound kind mclib
// tracks has a real typed record.
package packets

import (
	"github.com/Lemiort/mclib/databuffer"
	"github.com/Lemiort/mclib/protocol"
)

// Reader and Writer name the concrete buffer type every packet
// (de)serialises against. mclib has exactly one implementation
// (*databuffer.DataBuffer); these aliases exist so packet signatures read
// as "a buffer to read/write", matching spec.md's DataBuffer vocabulary,
// without every file in packets/in and packets/out importing databuffer
// directly.
type Reader = *databuffer.DataBuffer
type Writer = *databuffer.DataBuffer

// Inbound is implemented by every packet the server can send. Deserialize
// is driven by the frame layer against a bounded view of the frame
// payload (spec.md §4.5).
type Inbound interface {
	// Kind is the version-independent identifier used for handler
	// registration (spec.md §4.5's "agnosticId").
	Kind() string
	Deserialize(buf Reader, version protocol.Version) error
}

// Outbound is implemented by every packet the client can send. It knows
// its own wire id through the version table; it does not look it up
// itself.
type Outbound interface {
	Kind() string
	Serialize(buf Writer, version protocol.Version) error
}
