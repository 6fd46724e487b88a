package core

import (
	"errors"
	"net"
	"testing"

	"github.com/Lemiort/mclib/databuffer"
	"github.com/Lemiort/mclib/protocol"
	"github.com/Lemiort/mclib/registry"
)

func newPlayClientAndServer(t *testing.T) (*Client, *fakeServer) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	t.Cleanup(func() { clientConn.Close(); serverConn.Close() })

	conn := newConnection(clientConn, protocol.Minecraft_1_12_2, nil)
	conn.setState(protocol.Play)
	return NewClient(conn, nil), newFakeServer(serverConn)
}

func TestPumpEchoesKeepAlive(t *testing.T) {
	client, srv := newPlayClientAndServer(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := databuffer.New()
		buf.WriteLong(1234)
		srv.send(t, 0x1E, buf)
		srv.expect(t, 0x0B) // echoed KeepAlive
	}()

	if status := client.Pump(); status != Running {
		t.Fatalf("Pump() status = %v, want Running", status)
	}
	<-done
}

func TestPumpRepliesToPlayerPositionAndLook(t *testing.T) {
	client, srv := newPlayClientAndServer(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := databuffer.New()
		buf.WriteDouble(1.0)
		buf.WriteDouble(64.0)
		buf.WriteDouble(-2.0)
		buf.WriteFloat(90)
		buf.WriteFloat(0)
		buf.WriteByte(0)
		buf.WriteVarInt(7)
		srv.send(t, 0x2E, buf)

		srv.expect(t, 0x00) // TeleportConfirm
		srv.expect(t, 0x0D) // PlayerPositionAndLook echo
	}()

	if status := client.Pump(); status != Running {
		t.Fatalf("Pump() status = %v, want Running", status)
	}
	<-done
}

func TestPumpSkipsUnknownPacketByDefault(t *testing.T) {
	client, srv := newPlayClientAndServer(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.send(t, 0x7F, databuffer.New()) // no entry in the Play table
		buf := databuffer.New()
		buf.WriteLong(99)
		srv.send(t, 0x1E, buf) // KeepAlive, should still be reachable
		srv.expect(t, 0x0B)    // echoed KeepAlive

		next := databuffer.New()
		next.WriteLong(100)
		srv.send(t, 0x1E, next) // second KeepAlive, for the second Pump
		srv.expect(t, 0x0B)
	}()

	if status := client.Pump(); status != Running {
		t.Fatalf("Pump() status = %v, want Running (unknown packet should be skipped)", status)
	}
	if status := client.Pump(); status != Running {
		t.Fatalf("Pump() status = %v, want Running", status)
	}
	<-done
}

func TestPumpFailsOnUnknownPacketWhenPolicySetToFail(t *testing.T) {
	client, srv := newPlayClientAndServer(t)
	client.SetUnknownPacketPolicy(FailOnUnknownPackets)

	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.send(t, 0x7F, databuffer.New())
	}()

	status := client.Pump()
	<-done
	if status != ConnectionLost {
		t.Fatalf("Pump() status = %v, want ConnectionLost", status)
	}
	if !errors.Is(client.Err(), registry.ErrUnknownInboundPacket) {
		t.Fatalf("Err() = %v, want ErrUnknownInboundPacket", client.Err())
	}
}

func TestPumpTerminatesOnDisconnect(t *testing.T) {
	client, srv := newPlayClientAndServer(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := databuffer.New()
		buf.WriteString("kicked")
		srv.send(t, 0x19, buf) // Play-state Disconnect
	}()

	status := client.Pump()
	<-done
	if status != StatusDisconnected {
		t.Fatalf("Pump() status = %v, want StatusDisconnected", status)
	}
	var disc *Disconnected
	if client.Err() == nil {
		t.Fatalf("Err() = nil, want non-nil")
	}
	_ = disc

	if status := client.Pump(); status != StatusDisconnected {
		t.Fatalf("Pump() after termination = %v, want StatusDisconnected again", status)
	}
}
