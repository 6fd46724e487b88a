package core

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Lemiort/mclib/packets"
	"github.com/Lemiort/mclib/packets/in"
	"github.com/Lemiort/mclib/packets/out"
	"github.com/Lemiort/mclib/protocol"
	"github.com/Lemiort/mclib/wire"
)

// Credentials carries the identity mclib logs in with. AccessToken may be
// empty for an offline-mode server, in which case the encryption/session-
// join steps are skipped entirely if the server never sends an
// EncryptionRequest (spec.md §4.6: "Offline-mode servers skip steps 3-4").
type Credentials struct {
	Username        string
	AccessToken     string
	SelectedProfile string
}

// LoginResult is what a successful Login sequence produces.
type LoginResult struct {
	UUID     uuid.UUID
	Username string
}

// Login drives the canonical Login sequence of spec.md §4.6: Handshake,
// LoginStart, an optional encryption/session-join round trip, an
// optional SetCompression, and LoginSuccess. On return the Connection is
// in the Play state (or an error describes why it isn't).
func (c *Connection) Login(host string, port uint16, creds Credentials) (*LoginResult, error) {
	if err := c.handshake(host, port, protocol.Login); err != nil {
		return nil, err
	}
	if err := c.Send(&out.LoginStart{Username: creds.Username}); err != nil {
		return nil, err
	}

	for {
		p, err := c.receive()
		if err != nil {
			return nil, err
		}

		switch pkt := p.(type) {
		case *in.Disconnect:
			return nil, &Disconnected{Reason: pkt.Reason}

		case *in.EncryptionRequest:
			if err := c.handleEncryptionRequest(pkt, creds); err != nil {
				return nil, err
			}

		case *in.SetCompression:
			c.SetCompressionThreshold(pkt.Threshold)

		case *in.LoginPluginRequest:
			// mclib recognises no plugin channels at Login time; reply
			// with an unsuccessful response so the server doesn't stall
			// waiting for one (real clients do the same for unknown
			// channels).
			if err := c.Send(&loginPluginResponse{MessageID: pkt.MessageID}); err != nil {
				return nil, err
			}

		case *in.LoginSuccess:
			c.setState(protocol.Play)
			return &LoginResult{UUID: pkt.UUID, Username: pkt.Username}, nil

		default:
			return nil, fmt.Errorf("%w: %s during Login", ErrUnexpectedPacket, p.Kind())
		}
	}
}

func (c *Connection) handleEncryptionRequest(req *in.EncryptionRequest, creds Credentials) error {
	sharedSecret, err := generateSharedSecret()
	if err != nil {
		return err
	}

	if creds.AccessToken != "" {
		hash := serverHash(req.ServerID, sharedSecret, req.PublicKey)
		if err := joinSession(creds.AccessToken, creds.SelectedProfile, hash); err != nil {
			return err
		}
	}

	encSecret, err := encryptForServer(req.PublicKey, sharedSecret)
	if err != nil {
		return err
	}
	encToken, err := encryptForServer(req.PublicKey, req.VerifyToken)
	if err != nil {
		return err
	}

	if err := c.Send(&out.EncryptionResponse{
		EncryptedSharedSecret: encSecret,
		EncryptedVerifyToken:  encToken,
	}); err != nil {
		return err
	}

	cipher, err := wire.NewCipher(sharedSecret)
	if err != nil {
		return err
	}
	c.SetCipher(cipher)
	return nil
}

// loginPluginResponse is the serverbound reply to an unrecognised
// LoginPluginRequest: success=false, no payload.
type loginPluginResponse struct {
	MessageID int32
}

func (*loginPluginResponse) Kind() string { return "LoginPluginResponse" }
func (p *loginPluginResponse) Serialize(buf packets.Writer, _ protocol.Version) error {
	buf.WriteVarInt(p.MessageID)
	buf.WriteBool(false)
	return nil
}
