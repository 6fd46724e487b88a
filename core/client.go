package core

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Lemiort/mclib/entity"
	"github.com/Lemiort/mclib/inventory"
	"github.com/Lemiort/mclib/packets/in"
	"github.com/Lemiort/mclib/packets/out"
	"github.com/Lemiort/mclib/protocol"
	"github.com/Lemiort/mclib/registry"
	"github.com/Lemiort/mclib/world"
)

// Status is the terminal state a Client's Pump/Block loop finishes in.
type Status int

const (
	// Running means the connection is still alive; only Pump returns
	// this (Block only returns once the connection terminates).
	Running Status = iota
	StatusDisconnected
	ConnectionLost
	AuthFailed
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case StatusDisconnected:
		return "Disconnected"
	case ConnectionLost:
		return "ConnectionLost"
	case AuthFailed:
		return "AuthFailed"
	default:
		return "Unknown"
	}
}

// Client composes a Connection with the world/inventory/entity state
// SPEC_FULL.md's data model tracks, plus the Dispatcher user code
// subscribes to. It is the single-threaded cooperative façade of
// spec.md §5: every method here must be called from one goroutine.
type Client struct {
	conn       *Connection
	dispatcher *registry.Dispatcher
	inventory  *inventory.Manager
	entities   *entity.Manager
	world      map[[2]int32]*world.ChunkColumn
	settings   ClientSettings
	log        *logrus.Entry

	done   bool
	reason error
}

// NewClient wraps an already-logged-in Connection.
func NewClient(conn *Connection, log *logrus.Entry) *Client {
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}
	c := &Client{
		conn:     conn,
		world:    make(map[[2]int32]*world.ChunkColumn),
		settings: NewClientSettings(),
		log:      log,
	}
	c.dispatcher = registry.NewDispatcher(log)
	c.inventory = inventory.NewManager(conn)
	c.entities = entity.NewManager()
	return c
}

// Connection exposes the underlying Connection (state, version, Send).
func (c *Client) Connection() *Connection { return c.conn }

// SetUnknownPacketPolicy controls whether Pump fails or discards-with-
// warning when it receives a wire id the negotiated version's table
// does not recognise (spec.md §7).
func (c *Client) SetUnknownPacketPolicy(policy UnknownPacketPolicy) {
	c.conn.SetUnknownPacketPolicy(policy)
}

// Inventory exposes the inventory manager built from inbound
// SetSlot/WindowItems/OpenWindow/ConfirmTransaction packets (spec.md §4.8).
func (c *Client) Inventory() *inventory.Manager { return c.inventory }

// Entities exposes the tracked entity set (spec.md §3's Entity model).
func (c *Client) Entities() *entity.Manager { return c.entities }

// On registers a handler for inbound packets of the given agnostic kind
// during Play, forwarding to the Client's Dispatcher.
func (c *Client) On(agnosticID string, fn registry.Handler) {
	c.dispatcher.On(protocol.Play, agnosticID, fn)
}

// SendSettings transmits the client's current ClientSettings; call once
// after Play begins, and again whenever settings change.
func (c *Client) SendSettings(settings ClientSettings) error {
	c.settings = settings
	return c.conn.Send(&out.ClientSettings{
		Locale:             settings.Locale(),
		ViewDistance:       int8(settings.ViewDistance()),
		ChatMode:           int32(settings.ChatMode()),
		ChatColors:         settings.ChatColors(),
		DisplayedSkinParts: uint8(settings.SkinParts()),
		MainHand:           int32(settings.MainHand()),
	})
}

// Pump performs one iteration: block for the next frame, dispatch it
// (running the mandatory automatic replies first), and return. It
// returns Running as long as the connection is healthy; any other
// Status means the caller should stop calling Pump.
func (c *Client) Pump() Status {
	if c.done {
		return c.status()
	}

	p, err := c.conn.receive()
	if err != nil {
		return c.fail(err)
	}

	if disc, ok := p.(*in.Disconnect); ok {
		return c.fail(&Disconnected{Reason: disc.Reason})
	}

	if err := c.handleAutomaticReply(p); err != nil {
		return c.fail(err)
	}
	c.applyToState(p)
	c.dispatcher.Dispatch(protocol.Play, p)
	return Running
}

// Block runs Pump in a loop until the connection terminates, returning
// the terminal Status.
func (c *Client) Block() Status {
	for {
		if s := c.Pump(); s != Running {
			return s
		}
	}
}

func (c *Client) status() Status {
	var disc *Disconnected
	switch {
	case errors.As(c.reason, &disc):
		return StatusDisconnected
	case errors.Is(c.reason, ErrAuthenticationFailed):
		return AuthFailed
	default:
		return ConnectionLost
	}
}

func (c *Client) fail(err error) Status {
	c.done = true
	c.reason = err
	c.log.WithError(err).Warn("connection terminated")
	return c.status()
}

// Err returns the reason Pump/Block most recently terminated with, or
// nil while the connection is still running.
func (c *Client) Err() error { return c.reason }

// handleAutomaticReply implements spec.md §4.6's two mandatory
// automatic replies, independent of any user-registered handler.
func (c *Client) handleAutomaticReply(p interface{ Kind() string }) error {
	switch pkt := p.(type) {
	case *in.KeepAlive:
		return c.conn.Send(&out.KeepAlive{Payload: pkt.Payload})

	case *in.PlayerPositionAndLook:
		if err := c.conn.Send(&out.TeleportConfirm{TeleportID: pkt.TeleportID}); err != nil {
			return err
		}
		return c.conn.Send(&out.PlayerPositionAndLook{
			X: pkt.X, Y: pkt.Y, Z: pkt.Z,
			Yaw: pkt.Yaw, Pitch: pkt.Pitch,
			OnGround: true,
		})
	}
	return nil
}

// applyToState folds an inbound packet into the world/inventory/entity
// state Client owns, ahead of user dispatch (spec.md §3's data model:
// ChunkColumn, Inventory, Entity all live here).
func (c *Client) applyToState(p interface{ Kind() string }) {
	switch pkt := p.(type) {
	case *in.ChunkData:
		key := [2]int32{pkt.ChunkX, pkt.ChunkZ}
		c.world[key] = pkt.Column

	case *in.SetSlot:
		c.inventory.HandleSetSlot(int32(pkt.WindowID), int32(pkt.SlotIndex), pkt.Item)

	case *in.WindowItems:
		c.inventory.HandleWindowItems(int32(pkt.WindowID), pkt.Items)

	case *in.OpenWindow:
		c.inventory.HandleOpenWindow(int32(pkt.WindowID))

	case *in.ConfirmTransaction:
		if err := c.inventory.HandleConfirmTransaction(pkt.WindowID, pkt.ActionID, pkt.Accepted); err != nil {
			c.log.WithError(err).Warn("confirm transaction")
		}

	case *in.SpawnObject:
		c.entities.Spawn(entity.NewEntity(pkt.EntityID, entity.KindObject, int32(pkt.Type), pkt.X, pkt.Y, pkt.Z))

	case *in.SpawnMob:
		c.entities.Spawn(entity.NewEntity(pkt.EntityID, entity.KindMob, pkt.Type, pkt.X, pkt.Y, pkt.Z))

	case *in.SpawnPlayer:
		c.entities.Spawn(entity.NewEntity(pkt.EntityID, entity.KindPlayer, 0, pkt.X, pkt.Y, pkt.Z))

	case *in.SpawnExperienceOrb:
		c.entities.Spawn(entity.NewEntity(pkt.EntityID, entity.KindExperienceOrb, 0, pkt.X, pkt.Y, pkt.Z))

	case *in.DestroyEntities:
		c.entities.Destroy(pkt.EntityIDs...)

	case *in.EntityRelativeMove:
		if e := c.entities.Get(pkt.EntityID); e != nil {
			dx, dy, dz := pkt.DeltaBlocks()
			e.ApplyRelativeMove(dx, dy, dz)
		}

	case *in.EntityLookAndRelativeMove:
		if e := c.entities.Get(pkt.EntityID); e != nil {
			dx, dy, dz := pkt.DeltaBlocks()
			e.ApplyRelativeMove(dx, dy, dz)
			e.Yaw, e.Pitch = pkt.Yaw, pkt.Pitch
		}

	case *in.EntityTeleport:
		if e := c.entities.Get(pkt.EntityID); e != nil {
			e.X, e.Y, e.Z = pkt.X, pkt.Y, pkt.Z
			e.Yaw, e.Pitch = pkt.Yaw, pkt.Pitch
		}

	case *in.EntityVelocity:
		if e := c.entities.Get(pkt.EntityID); e != nil {
			e.VX, e.VY, e.VZ = pkt.VelocityX, pkt.VelocityY, pkt.VelocityZ
		}

	case *in.EntityMetadata:
		if e := c.entities.Get(pkt.EntityID); e != nil {
			for index, value := range pkt.Entries {
				e.Metadata[index] = value
			}
		}
	}
}
