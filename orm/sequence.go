// Package orm provides light persistence helpers on top of the store
// package.
package orm

import (
	"encoding/binary"

	"github.com/coventure/vault/store"
)

// Sequence maintains a counter and generates a series of keys. Each key
// is greater than the last, both NextInt() as well as bytes.Compare()
// on NextVal(). The first issued value is 0.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using the
// following pattern to construct a key:
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal issues the next value of the sequence as 8 bytes.
func (s Sequence) NextVal(db store.KVStore) []byte {
	val := s.issue(db)
	return EncodeSequence(val)
}

// NextInt issues the next value of the sequence as int64.
func (s Sequence) NextInt(db store.KVStore) int64 {
	return s.issue(db)
}

// Peek returns the value the next NextInt call would issue, without
// modifying the sequence state. For a zero-based sequence this equals
// the number of values issued so far.
func (s Sequence) Peek(db store.KVStore) int64 {
	return DecodeSequence(db.Get(s.id))
}

func (s Sequence) issue(db store.KVStore) int64 {
	val := DecodeSequence(db.Get(s.id))
	db.Set(s.id, EncodeSequence(val+1))
	return val
}

// DecodeSequence converts the raw sequence state into int64. A nil
// value decodes to 0.
func DecodeSequence(bz []byte) int64 {
	if bz == nil {
		return 0
	}
	val := binary.BigEndian.Uint64(bz)
	return int64(val)
}

// EncodeSequence converts an int64 into the 8 byte raw sequence state.
func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}
