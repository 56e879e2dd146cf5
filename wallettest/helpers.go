// Package wallettest provides test doubles and helpers shared by the
// custody module tests.
package wallettest

import (
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"testing"

	"github.com/coventure/vault"
)

var identitySeq int64

// NewIdentity returns a new unique identity. Identities are
// deterministic within a single process run, which keeps test failures
// reproducible.
func NewIdentity() vault.Identity {
	n := atomic.AddInt64(&identitySeq, 1)
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(n))
	return vault.NewIdentity(raw)
}

// HexIdentity takes an identity in hex format and returns its binary
// representation, failing the test on malformed input.
func HexIdentity(t testing.TB, enc string) vault.Identity {
	t.Helper()

	raw, err := hex.DecodeString(enc)
	if err != nil {
		t.Fatalf("cannot decode %q identity: %s", enc, err)
	}
	id := vault.Identity(raw)
	if err := id.Validate(); err != nil {
		t.Fatalf("invalid %q identity: %s", enc, err)
	}
	return id
}
