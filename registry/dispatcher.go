package registry

import (
	"io"
	"sync"

	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/protocol"

	"github.com/sirupsen/logrus"
)

// Handler receives one decoded inbound packet. Handlers run synchronously
// on the Pump goroutine (spec.md §5's single-threaded cooperative model)
// and must not block; anything that needs to wait should hand off to its
// own goroutine or channel.
type Handler func(packets.Inbound)

// Dispatcher routes decoded inbound packets to the handlers registered
// for their (state, agnosticId), preserving arrival order both across
// packets and across handlers within one packet. This generalises the
// teacher's switch-on-(state,packetId) routing in handler.go's
// processPacket into a registration-based multimap so callers outside
// this package can subscribe without editing a central switch.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[protocol.State]map[string][]Handler
	log      *logrus.Entry
}

// NewDispatcher builds an empty Dispatcher. log may be nil, in which
// case a disabled logger is used.
func NewDispatcher(log *logrus.Entry) *Dispatcher {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Dispatcher{
		handlers: make(map[protocol.State]map[string][]Handler),
		log:      log,
	}
}

// On registers fn to run whenever a packet with the given state and
// agnosticId (its Kind()) is dispatched. Multiple handlers for the same
// pair run in registration order.
func (d *Dispatcher) On(state protocol.State, agnosticID string, fn Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.handlers[state] == nil {
		d.handlers[state] = make(map[string][]Handler)
	}
	d.handlers[state][agnosticID] = append(d.handlers[state][agnosticID], fn)
}

// Dispatch runs every handler registered for (state, p.Kind()), in
// registration order. A packet with no registered handler is silently
// dropped: the caller already decoded it via Table.Lookup, so an empty
// handler list just means nothing in this Client cares about it.
func (d *Dispatcher) Dispatch(state protocol.State, p packets.Inbound) {
	d.mu.RLock()
	fns := append([]Handler(nil), d.handlers[state][p.Kind()]...)
	d.mu.RUnlock()

	for _, fn := range fns {
		fn(p)
	}
	if len(fns) == 0 {
		d.log.WithFields(logrus.Fields{
			"state":  state,
			"packet": p.Kind(),
		}).Debug("dispatch: no handler registered")
	}
}
