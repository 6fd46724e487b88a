// Package wire implements the framed, length-prefixed, optionally
// compressed, optionally encrypted byte stream that carries Minecraft
// protocol packets, plus the AES/CFB8 stream cipher used once a Connection
// has completed its login-time key exchange.
package wire

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// cfb8Stream implements AES-128 in CFB8 mode by hand: cipher.NewCFBEncrypter
// in the standard library only supports full-block feedback, not the
// byte-granular feedback the Minecraft protocol requires, so mclib drives
// the block cipher's ECB encryption one byte at a time the way the
// protocol spec describes it.
type cfb8Stream struct {
	block cipher.Block
	iv    []byte // shift register, len == block.BlockSize()
	tmp   []byte // scratch for the block cipher output
}

func newCFB8Stream(block cipher.Block, iv []byte) *cfb8Stream {
	reg := make([]byte, len(iv))
	copy(reg, iv)
	return &cfb8Stream{
		block: block,
		iv:    reg,
		tmp:   make([]byte, block.BlockSize()),
	}
}

// xorByte processes a single byte through the shift register and advances
// it by one byte, per CFB8's self-synchronising definition.
func (s *cfb8Stream) xorByte(in byte, encrypt bool) byte {
	s.block.Encrypt(s.tmp, s.iv)
	out := in ^ s.tmp[0]

	copy(s.iv, s.iv[1:])
	if encrypt {
		s.iv[len(s.iv)-1] = out
	} else {
		s.iv[len(s.iv)-1] = in
	}
	return out
}

// Cipher is a bidirectional AES-128/CFB8 stream cipher with two independent
// IV registers, one per direction, as spec.md §4.4 requires.
type Cipher struct {
	encrypt *cfb8Stream
	decrypt *cfb8Stream
}

// NewCipher builds a Cipher from a 16-byte shared secret, used as both the
// AES key and the starting IV for both directions (spec.md §4.6 step 3).
func NewCipher(sharedSecret []byte) (*Cipher, error) {
	if len(sharedSecret) != 16 {
		return nil, fmt.Errorf("wire: shared secret must be 16 bytes, got %d", len(sharedSecret))
	}
	block, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return nil, fmt.Errorf("wire: new AES cipher: %w", err)
	}
	return &Cipher{
		encrypt: newCFB8Stream(block, sharedSecret),
		decrypt: newCFB8Stream(block, sharedSecret),
	}, nil
}

// Encrypt encrypts src into dst in place (dst may alias src).
func (c *Cipher) Encrypt(dst, src []byte) {
	for i, b := range src {
		dst[i] = c.encrypt.xorByte(b, true)
	}
}

// Decrypt decrypts src into dst in place (dst may alias src).
func (c *Cipher) Decrypt(dst, src []byte) {
	for i, b := range src {
		dst[i] = c.decrypt.xorByte(b, false)
	}
}
