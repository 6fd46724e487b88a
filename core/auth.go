package core

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
)

// sessionJoinURL is the Mojang session service endpoint a premium client
// POSTs to before completing encryption (spec.md §6).
const sessionJoinURL = "https://sessionserver.mojang.com/session/minecraft/join"

// generateSharedSecret returns a fresh 16-byte AES-128 key, used as both
// key and starting IV for the CFB8 cipher once encryption begins
// (spec.md §4.6 step 3).
func generateSharedSecret() ([]byte, error) {
	secret := make([]byte, 16)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("core: generate shared secret: %w", err)
	}
	return secret, nil
}

// encryptForServer RSA/PKCS1v1.5-encrypts data with the server's DER
// public key, as EncryptionRequest/EncryptionResponse require (the
// Notchian protocol uses PKCS1v1.5, not OAEP, despite "RSA" alone being
// ambiguous about padding).
func encryptForServer(derPublicKey, data []byte) ([]byte, error) {
	pub, err := x509.ParsePKIXPublicKey(derPublicKey)
	if err != nil {
		return nil, fmt.Errorf("core: parse server public key: %w", err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("core: server public key is not RSA")
	}
	out, err := rsa.EncryptPKCS1v15(rand.Reader, rsaPub, data)
	if err != nil {
		return nil, fmt.Errorf("core: rsa encrypt: %w", err)
	}
	return out, nil
}

// serverHash computes the Mojang session-join "serverId": SHA-1 of
// serverID||sharedSecret||publicKey, interpreted as a signed big-endian
// integer, zero-stripped, printed in hex, with a leading '-' if negative
// (spec.md §4.6 step 3, "the notorious Mojang hash quirk").
func serverHash(serverID string, sharedSecret, publicKey []byte) string {
	h := sha1.New()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(publicKey)
	digest := h.Sum(nil)

	negative := digest[0]&0x80 != 0
	if negative {
		digest = twosComplement(digest)
	}

	hexStr := hex.EncodeToString(digest)
	for len(hexStr) > 1 && hexStr[0] == '0' {
		hexStr = hexStr[1:]
	}
	if negative {
		return "-" + hexStr
	}
	return hexStr
}

// twosComplement negates a big-endian two's-complement byte slice,
// used because Go's hex encoding has no notion of a signed digest.
func twosComplement(b []byte) []byte {
	n := new(big.Int).SetBytes(b)
	n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(b)*8)))
	n.Neg(n)
	out := n.Bytes()
	padded := make([]byte, len(b))
	copy(padded[len(padded)-len(out):], out)
	return padded
}

// sessionJoinRequest is the body POSTed to the Mojang session service.
type sessionJoinRequest struct {
	AccessToken     string `json:"accessToken"`
	SelectedProfile string `json:"selectedProfile"`
	ServerID        string `json:"serverId"`
}

// joinSession notifies the account service that this client is about to
// enter an encrypted session with a server, per spec.md §6. A 204 status
// means the join is allowed; anything else is treated as
// ErrAuthenticationFailed.
func joinSession(accessToken, selectedProfile, serverID string) error {
	body, err := json.Marshal(sessionJoinRequest{
		AccessToken:     accessToken,
		SelectedProfile: selectedProfile,
		ServerID:        serverID,
	})
	if err != nil {
		return fmt.Errorf("core: marshal session join request: %w", err)
	}

	resp, err := http.Post(sessionJoinURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w: session service returned %s", ErrAuthenticationFailed, resp.Status)
	}
	return nil
}
