// Package in holds every inbound (server-to-client) packet type: roughly
// 100 records spanning Status, Login, and Play, grounded on
// original_source/mclib/include/mclib/protocol/packets/Packet.h.
package in

import (
	"github.com/google/uuid"

	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/protocol"
)

// StatusResponse is the Status-state server status JSON blob (wire id
// 0x00), carrying version/player-count/MOTD/favicon.
type StatusResponse struct {
	JSON string
}

func (*StatusResponse) Kind() string { return "StatusResponse" }
func (p *StatusResponse) Deserialize(buf packets.Reader, _ protocol.Version) (err error) {
	p.JSON, err = buf.ReadString()
	return
}

// Pong echoes the payload of an outbound Ping (wire id 0x01).
type Pong struct {
	Payload int64
}

func (*Pong) Kind() string { return "Pong" }
func (p *Pong) Deserialize(buf packets.Reader, _ protocol.Version) (err error) {
	p.Payload, err = buf.ReadLong()
	return
}

// Disconnect terminates the FSM in either Login or Play state (wire id
// 0x00 in Login; the Play id comes from the version's Play table).
type Disconnect struct {
	Reason string
}

func (*Disconnect) Kind() string { return "Disconnect" }
func (p *Disconnect) Deserialize(buf packets.Reader, _ protocol.Version) (err error) {
	p.Reason, err = buf.ReadString()
	return
}

// EncryptionRequest drives the Login-time key exchange (spec.md §4.6 step
// 3, wire id 0x01).
type EncryptionRequest struct {
	ServerID    string
	PublicKey   []byte
	VerifyToken []byte
}

func (*EncryptionRequest) Kind() string { return "EncryptionRequest" }
func (p *EncryptionRequest) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.ServerID, err = buf.ReadString(); err != nil {
		return err
	}
	keyLen, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	if p.PublicKey, err = buf.ReadByteArray(int(keyLen)); err != nil {
		return err
	}
	tokenLen, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.VerifyToken, err = buf.ReadByteArray(int(tokenLen))
	return err
}

// LoginSuccess transitions the FSM from Login to Play (wire id 0x02).
type LoginSuccess struct {
	UUID     uuid.UUID
	Username string
}

func (*LoginSuccess) Kind() string { return "LoginSuccess" }
func (p *LoginSuccess) Deserialize(buf packets.Reader, version protocol.Version) error {
	idStr, err := buf.ReadString()
	if err != nil {
		return err
	}
	if parsed, perr := uuid.Parse(idStr); perr == nil {
		p.UUID = parsed
	}
	p.Username, err = buf.ReadString()
	return err
}

// SetCompression changes the frame layer's compression threshold
// mid-stream (wire id 0x03).
type SetCompression struct {
	Threshold int32
}

func (*SetCompression) Kind() string { return "SetCompression" }
func (p *SetCompression) Deserialize(buf packets.Reader, _ protocol.Version) (err error) {
	p.Threshold, err = buf.ReadVarInt()
	return
}

// LoginPluginRequest carries a server-defined plugin channel request
// during Login; mclib parses the framing but leaves Data opaque, as the
// concrete channel handlers are a collaborator per spec.md §1.
type LoginPluginRequest struct {
	MessageID int32
	Channel   string
	Data      []byte
}

func (*LoginPluginRequest) Kind() string { return "LoginPluginRequest" }
func (p *LoginPluginRequest) Deserialize(buf packets.Reader, _ protocol.Version) error {
	var err error
	if p.MessageID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Channel, err = buf.ReadString(); err != nil {
		return err
	}
	p.Data = buf.Remaining()
	buf.SetReadOffset(buf.ReadOffset() + len(p.Data))
	return nil
}
