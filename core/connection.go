package core

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Lemiort/mclib/databuffer"
	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/packets/out"
	"github.com/Lemiort/mclib/protocol"
	"github.com/Lemiort/mclib/registry"
	"github.com/Lemiort/mclib/wire"
)

// UnknownPacketPolicy controls what receive does when the negotiated
// version's table has no registered record for an inbound wire id
// (spec.md §7: "discarded with a warning (configurable)"). This is the
// safety net for registry/versions.go's per-version Play tables, which
// are all cloned from the same 1.12.2-shaped table today and so may
// carry real wire-id drift for 1.13.2/1.14/1.14.4 that mclib cannot yet
// detect any other way.
type UnknownPacketPolicy int

const (
	// SkipUnknownPackets discards the frame and logs a warning, letting
	// the connection continue. Default.
	SkipUnknownPackets UnknownPacketPolicy = iota
	// FailOnUnknownPackets surfaces ErrUnknownInboundPacket to the
	// caller, terminating the connection.
	FailOnUnknownPackets
)

// Connection owns one TCP socket, its frame layer, and its FSM state
// (spec.md §4.6). The socket is exclusively owned here, per spec.md §5's
// "shared resources" note: cipher/compression transitions only ever
// happen between frame reads/writes.
type Connection struct {
	conn    net.Conn
	reader  *wire.FrameReader
	writer  *wire.FrameWriter
	state   protocol.State
	version protocol.Version
	table   *registry.Table
	log     *logrus.Entry

	unknownPolicy UnknownPacketPolicy
}

// Dial opens a TCP connection to addr and wraps it with an unencrypted,
// uncompressed frame layer in the Handshake state.
func Dial(addr string, version protocol.Version, log *logrus.Entry) (*Connection, error) {
	conn, err := net.DialTimeout("tcp", addr, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("core: dial %s: %w", addr, err)
	}
	return newConnection(conn, version, log), nil
}

func newConnection(conn net.Conn, version protocol.Version, log *logrus.Entry) *Connection {
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}
	return &Connection{
		conn:    conn,
		reader:  wire.NewFrameReader(conn),
		writer:  wire.NewFrameWriter(conn),
		state:   protocol.Handshake,
		version: version,
		table:   registry.For(version),
		log:     log.WithField("remote", conn.RemoteAddr()),
	}
}

// State reports the FSM's current state.
func (c *Connection) State() protocol.State { return c.state }

// Version reports the negotiated protocol version.
func (c *Connection) Version() protocol.Version { return c.version }

// Close closes the underlying socket.
func (c *Connection) Close() error { return c.conn.Close() }

// setState transitions the FSM. The packet table is fixed per version and
// is not re-resolved; Send and receive pass the current state to it.
func (c *Connection) setState(s protocol.State) {
	c.log.WithFields(logrus.Fields{"from": c.state, "to": s}).Debug("state transition")
	c.state = s
}

// SetCipher installs the AES/CFB8 cipher on both directions
// (spec.md §4.6 step 3: "immediately enable ... for the next read and
// write").
func (c *Connection) SetCipher(cipher *wire.Cipher) {
	c.reader.SetCipher(cipher)
	c.writer.SetCipher(cipher)
}

// SetCompressionThreshold applies a compression policy change to both
// directions (spec.md §4.6 step 4).
func (c *Connection) SetCompressionThreshold(threshold int32) {
	c.reader.SetCompressionThreshold(threshold)
	c.writer.SetCompressionThreshold(threshold)
}

// SetUnknownPacketPolicy changes how receive treats an inbound wire id
// the current state's table does not recognise.
func (c *Connection) SetUnknownPacketPolicy(policy UnknownPacketPolicy) {
	c.unknownPolicy = policy
}

// Send serialises p and writes it as one frame, resolving its wire id
// from the negotiated version's table for the current state
// (spec.md §4.5).
func (c *Connection) Send(p packets.Outbound) error {
	wireID, err := c.table.WireID(c.state, p.Kind())
	if err != nil {
		return err
	}
	buf := databuffer.New()
	if err := p.Serialize(buf, c.version); err != nil {
		return fmt.Errorf("core: serialize %s: %w", p.Kind(), err)
	}
	c.log.WithFields(logrus.Fields{"state": c.state, "packet": p.Kind(), "wireId": wireID}).Trace("send")
	return c.writer.WriteFrame(wireID, buf.Bytes())
}

// receive blocks for the next frame, looks up its inbound type in the
// current state's table, and deserialises it. An unrecognised wire id is
// handled per c.unknownPolicy (spec.md §7: "policy-controlled (skip vs
// fail)"): SkipUnknownPackets logs a warning and reads the next frame;
// FailOnUnknownPackets returns ErrUnknownInboundPacket to the caller
// unwrapped.
func (c *Connection) receive() (packets.Inbound, error) {
	for {
		wireID, payload, err := c.reader.ReadFrame()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnectionLost, err)
		}
		p, agnosticID, err := c.table.Lookup(c.state, wireID)
		if err != nil {
			if c.unknownPolicy == SkipUnknownPackets && errors.Is(err, registry.ErrUnknownInboundPacket) {
				c.log.WithFields(logrus.Fields{"state": c.state, "wireId": wireID}).Warn("discarding unknown inbound packet")
				continue
			}
			return nil, err
		}
		buf := databuffer.Wrap(payload)
		if err := p.Deserialize(buf, c.version); err != nil {
			return nil, fmt.Errorf("core: deserialize %s: %w", agnosticID, err)
		}
		c.log.WithFields(logrus.Fields{"state": c.state, "packet": agnosticID, "wireId": wireID}).Trace("receive")
		return p, nil
	}
}

// handshake sends the initial Handshake packet and moves the FSM to
// nextState (spec.md §4.6 step 1).
func (c *Connection) handshake(host string, port uint16, nextState protocol.State) error {
	err := c.Send(&out.Handshake{
		ProtocolVersion: int32(c.version),
		ServerHost:      host,
		ServerPort:      port,
		NextState:       nextState,
	})
	if err != nil {
		return err
	}
	c.setState(nextState)
	return nil
}
