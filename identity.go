package vault

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/coventure/vault/errors"
)

// IdentityLength is the size in bytes of every identity.
const IdentityLength = 20

// Identity represents a collision-free, one-way digest of whatever
// credential the host authentication layer verified. It is the unit of
// authorization for all custody modules.
//
// It will be of size IdentityLength.
type Identity []byte

// NewIdentity hashes and truncates into the proper size.
func NewIdentity(data []byte) Identity {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return Identity(h[:IdentityLength])
}

// Equals checks if two identities are the same.
func (a Identity) Equals(b Identity) bool {
	return bytes.Equal(a, b)
}

// Clone returns an independent copy of the identity.
func (a Identity) Clone() Identity {
	if a == nil {
		return nil
	}
	cpy := make(Identity, len(a))
	copy(cpy, a)
	return cpy
}

// MarshalJSON provides a hex representation for JSON, to override the
// standard base64 []byte encoding.
func (a Identity) MarshalJSON() ([]byte, error) {
	s := strings.ToUpper(hex.EncodeToString(a))
	return json.Marshal(s)
}

func (a *Identity) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	if len(enc) == 0 {
		*a = nil
		return nil
	}
	val, err := hex.DecodeString(enc)
	if err != nil {
		return errors.Wrap(err, "cannot decode hex")
	}
	if err := Identity(val).Validate(); err != nil {
		return err
	}
	*a = val
	return nil
}

// String returns a human readable hex string.
func (a Identity) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Validate returns an error if the identity is not the valid size.
func (a Identity) Validate() error {
	if len(a) != IdentityLength {
		return errors.Wrapf(errors.ErrInput, "identity: %v", []byte(a))
	}
	return nil
}
