package core

import "testing"

// These are the canonical test vectors for the Mojang server-hash
// algorithm (sha1(serverId) with no shared secret/public key bytes,
// interpreted as a signed big-endian integer). serverHash writes all
// three inputs into one digest, so passing nil secret/key reduces to
// plain sha1(serverId).
func TestServerHashKnownVectors(t *testing.T) {
	cases := []struct {
		serverID string
		want     string
	}{
		{"Notch", "4ed1f46bbe04bc756bcb17c0c7ce3e4632f06a48"},
		{"jeb_", "-7c9d5b0044c130109a5d7b5fb5c317c02b4e28c1"},
		{"simon", "88e16a1019277b15d58faf0541e11910eb756f6"},
	}
	for _, tc := range cases {
		got := serverHash(tc.serverID, nil, nil)
		if got != tc.want {
			t.Errorf("serverHash(%q) = %q, want %q", tc.serverID, got, tc.want)
		}
	}
}
