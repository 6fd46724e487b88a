// Package core implements the Connection FSM (spec.md §4.6), the Login
// key-exchange sequence, the Play loop's automatic replies, and the
// Client façade that single-threaded callers drive via Pump or Block
// (spec.md §5).
package core

import "errors"

// Error taxonomy, per spec.md §7.
var (
	// ErrUnknownInboundPacket and ErrUnsupportedOutboundPacket are
	// defined in package registry and are not re-exported here; core
	// defines the errors that are specific to the connection lifecycle.

	// ErrAuthenticationFailed is terminal during Login: the account
	// service rejected the session join.
	ErrAuthenticationFailed = errors.New("core: authentication failed")

	// ErrConnectionLost is terminal: the socket closed or a frame-level
	// error occurred outside of a clean Disconnect.
	ErrConnectionLost = errors.New("core: connection lost")

	// ErrUnexpectedPacket is returned by the Login sequence when a
	// packet arrives that the canonical path (spec.md §4.6) does not
	// expect in the current step.
	ErrUnexpectedPacket = errors.New("core: unexpected packet for this step")
)

// Disconnected describes a terminal Disconnect packet received during
// Login or Play (spec.md §7).
type Disconnected struct {
	Reason string
}

func (d *Disconnected) Error() string { return "core: disconnected: " + d.Reason }
