package in

import (
	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/protocol"
)

// stub packets parse nothing and discard their payload. Only the three
// spec.md §9 exceptions use it: OpenBook and the two advancement
// variants, where the original implementation itself leaves the field
// layout unimplemented ("not implemented" throws). Every other
// Play-state inbound kind has a real typed record in play_core.go or
// play_events.go. A stub still satisfies packets.Inbound so the
// registry can route it to handlers that only care that the packet
// arrived.
type stub struct {
	kind    string
	Payload []byte
}

func (s *stub) Kind() string { return s.kind }
func (s *stub) Deserialize(buf packets.Reader, _ protocol.Version) error {
	s.Payload = buf.Remaining()
	buf.SetReadOffset(buf.ReadOffset() + len(s.Payload))
	return nil
}

func newStub(kind string) func() packets.Inbound {
	return func() packets.Inbound { return &stub{kind: kind} }
}

// StubConstructors lists the spec.md §9-exempted Play-state inbound
// kinds mclib tracks by name but never decodes field-by-field.
var StubConstructors = map[string]func() packets.Inbound{
	"OpenBook":            newStub("OpenBook"),
	"AdvancementProgress": newStub("AdvancementProgress"),
	"Advancements":        newStub("Advancements"),
}
