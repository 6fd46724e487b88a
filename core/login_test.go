package core

import (
	"errors"
	"net"
	"testing"

	"github.com/google/uuid"

	"github.com/Lemiort/mclib/databuffer"
	"github.com/Lemiort/mclib/protocol"
	"github.com/Lemiort/mclib/wire"
)

// fakeServer wraps the server side of a net.Pipe in a frame reader/writer
// so tests can script a Login exchange without a real socket.
type fakeServer struct {
	r *wire.FrameReader
	w *wire.FrameWriter
}

func newFakeServer(conn net.Conn) *fakeServer {
	return &fakeServer{r: wire.NewFrameReader(conn), w: wire.NewFrameWriter(conn)}
}

func (s *fakeServer) expect(t *testing.T, wantID int32) {
	t.Helper()
	id, _, err := s.r.ReadFrame()
	if err != nil {
		t.Fatalf("server: read frame: %v", err)
	}
	if id != wantID {
		t.Fatalf("server: got wire id 0x%02X, want 0x%02X", id, wantID)
	}
}

func (s *fakeServer) send(t *testing.T, id int32, payload *databuffer.DataBuffer) {
	t.Helper()
	if err := s.w.WriteFrame(id, payload.Bytes()); err != nil {
		t.Fatalf("server: write frame: %v", err)
	}
}

func TestLoginOfflineModeSucceeds(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	conn := newConnection(clientConn, protocol.Minecraft_1_12_2, nil)
	srv := newFakeServer(serverConn)

	wantUUID := uuid.New()
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.expect(t, 0x00) // Handshake
		srv.expect(t, 0x00) // LoginStart

		buf := databuffer.New()
		buf.WriteString(wantUUID.String())
		buf.WriteString("Steve")
		srv.send(t, 0x02, buf) // LoginSuccess
	}()

	result, err := conn.Login("localhost", 25565, Credentials{Username: "Steve"})
	<-done
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.Username != "Steve" || result.UUID != wantUUID {
		t.Fatalf("got %+v, want Username=Steve UUID=%s", result, wantUUID)
	}
	if conn.State() != protocol.Play {
		t.Fatalf("state = %v, want Play", conn.State())
	}
}

func TestLoginDisconnectReturnsDisconnected(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	conn := newConnection(clientConn, protocol.Minecraft_1_12_2, nil)
	srv := newFakeServer(serverConn)

	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.expect(t, 0x00) // Handshake
		srv.expect(t, 0x00) // LoginStart

		buf := databuffer.New()
		buf.WriteString("server full")
		srv.send(t, 0x00, buf) // Disconnect
	}()

	_, err := conn.Login("localhost", 25565, Credentials{Username: "Steve"})
	<-done

	var disc *Disconnected
	if !errors.As(err, &disc) {
		t.Fatalf("Login() error = %v, want *Disconnected", err)
	}
	if disc.Reason != "server full" {
		t.Fatalf("reason = %q, want %q", disc.Reason, "server full")
	}
}

func TestLoginSetCompressionAppliesThreshold(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	conn := newConnection(clientConn, protocol.Minecraft_1_12_2, nil)
	srv := newFakeServer(serverConn)

	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.expect(t, 0x00) // Handshake
		srv.expect(t, 0x00) // LoginStart

		comp := databuffer.New()
		comp.WriteVarInt(64)
		srv.send(t, 0x03, comp) // SetCompression
		srv.w.SetCompressionThreshold(64)
		srv.r.SetCompressionThreshold(64)

		success := databuffer.New()
		success.WriteString(uuid.New().String())
		success.WriteString("Steve")
		srv.send(t, 0x02, success) // LoginSuccess
	}()

	_, err := conn.Login("localhost", 25565, Credentials{Username: "Steve"})
	<-done
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
}
