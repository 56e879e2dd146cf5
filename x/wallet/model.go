package wallet

import (
	"encoding/json"

	"github.com/coventure/vault"
	"github.com/coventure/vault/errors"
	"github.com/coventure/vault/orm"
	"github.com/coventure/vault/store"
)

const (
	// BucketName is the store prefix transactions live under.
	BucketName = "wallet:tx:"
	// SequenceName is the id counter for transactions.
	SequenceName = "id"

	// configKey is where the owner set and threshold are stored.
	configKey = "_c:wallet"

	// maxOwners is the maximum number of owner identities a wallet can
	// be configured with. It also caps the signature count of any
	// transaction.
	maxOwners = 10
)

// Config holds the authorization policy of the wallet: the fixed owner
// set and the signature threshold. Once stored it is only ever replaced
// as a whole.
type Config struct {
	Owners    []vault.Identity `json:"owners"`
	Threshold int64            `json:"threshold"`
}

// Validate enforces owner and threshold boundaries.
func (c *Config) Validate() error {
	if n := len(c.Owners); n > maxOwners {
		return errors.Wrapf(errors.ErrInput, "%d owners, at most %d allowed", n, maxOwners)
	}
	for i, o := range c.Owners {
		if err := o.Validate(); err != nil {
			return errors.Wrapf(err, "owner #%d", i)
		}
		for _, prev := range c.Owners[:i] {
			if o.Equals(prev) {
				return errors.Wrapf(errors.ErrDuplicate, "owner %s", o)
			}
		}
	}
	if c.Threshold < 1 || c.Threshold > int64(len(c.Owners)) {
		return errors.Wrapf(ErrInvalidThreshold,
			"threshold %d with %d owners", c.Threshold, len(c.Owners))
	}
	return nil
}

// IsOwner returns whether the given identity belongs to the owner set.
// Linear scan, the owner set is at most maxOwners entries.
func (c *Config) IsOwner(id vault.Identity) bool {
	for _, o := range c.Owners {
		if o.Equals(id) {
			return true
		}
	}
	return false
}

// Transaction is a proposed outgoing transfer and the signatures
// collected for it so far. Stored forever, executed or not.
type Transaction struct {
	ID         int64            `json:"id"`
	Recipient  vault.Identity   `json:"recipient"`
	Amount     int64            `json:"amount"`
	Expiration int64            `json:"expiration"`
	Executed   bool             `json:"executed"`
	Signatures []vault.Identity `json:"signatures"`
}

// HasSigned returns whether the identity already signed this
// transaction.
func (tx *Transaction) HasSigned(id vault.Identity) bool {
	for _, s := range tx.Signatures {
		if s.Equals(id) {
			return true
		}
	}
	return false
}

var txSeq = orm.NewSequence("wallet", SequenceName)

func txKey(id int64) []byte {
	return append([]byte(BucketName), orm.EncodeSequence(id)...)
}

func loadConfig(db store.KVStore) (*Config, error) {
	raw := db.Get([]byte(configKey))
	if raw == nil {
		return nil, nil
	}
	var conf Config
	if err := json.Unmarshal(raw, &conf); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return &conf, nil
}

func saveConfig(db store.KVStore, conf *Config) error {
	raw, err := json.Marshal(conf)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	db.Set([]byte(configKey), raw)
	return nil
}

func loadTx(db store.KVStore, id int64) (*Transaction, error) {
	raw := db.Get(txKey(id))
	if raw == nil {
		return nil, nil
	}
	var tx Transaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return &tx, nil
}

func saveTx(db store.KVStore, tx *Transaction) error {
	raw, err := json.Marshal(tx)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	db.Set(txKey(tx.ID), raw)
	return nil
}
