package wire

import (
	"bytes"
	"testing"
)

func TestFrameRoundTripUncompressed(t *testing.T) {
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	if err := w.WriteFrame(0x22, []byte("hello")); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	r := NewFrameReader(&buf)
	id, payload, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if id != 0x22 || string(payload) != "hello" {
		t.Fatalf("got (0x%X, %q), want (0x22, %q)", id, payload, "hello")
	}
}

func TestFrameRoundTripCompressedAboveThreshold(t *testing.T) {
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	w.SetCompressionThreshold(4)

	payload := bytes.Repeat([]byte("x"), 64)
	if err := w.WriteFrame(0x01, payload); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	r := NewFrameReader(&buf)
	r.SetCompressionThreshold(4)
	id, got, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if id != 0x01 || !bytes.Equal(got, payload) {
		t.Fatalf("got (0x%X, %d bytes), want (0x01, %d bytes)", id, len(got), len(payload))
	}
}

func TestFrameRoundTripCompressedBelowThresholdStaysPlain(t *testing.T) {
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	w.SetCompressionThreshold(1024)

	payload := []byte("short")
	if err := w.WriteFrame(0x05, payload); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	r := NewFrameReader(&buf)
	r.SetCompressionThreshold(1024)
	id, got, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if id != 0x05 || !bytes.Equal(got, payload) {
		t.Fatalf("got (0x%X, %q), want (0x05, %q)", id, got, payload)
	}
}

func TestFrameRoundTripEncrypted(t *testing.T) {
	secret := bytes.Repeat([]byte{0x42}, 16)
	writerCipher, err := NewCipher(secret)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	readerCipher, err := NewCipher(secret)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	w.SetCipher(writerCipher)
	if err := w.WriteFrame(0x10, []byte("secret payload")); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	r := NewFrameReader(&buf)
	r.SetCipher(readerCipher)
	id, payload, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if id != 0x10 || string(payload) != "secret payload" {
		t.Fatalf("got (0x%X, %q), want (0x10, %q)", id, payload, "secret payload")
	}
}
