package bank

import (
	"encoding/json"
	"math"

	"github.com/coventure/vault"
	"github.com/coventure/vault/errors"
	"github.com/coventure/vault/store"
)

// BucketName is the store prefix all accounts live under.
const BucketName = "bank:acct:"

// Account is a single balance kept for an identity.
type Account struct {
	Address vault.Identity `json:"address"`
	Balance int64          `json:"balance"`
}

// Validate ensures the account is consistent.
func (a *Account) Validate() error {
	if err := a.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if a.Balance < 0 {
		return errors.Wrapf(errors.ErrState, "negative balance %d", a.Balance)
	}
	return nil
}

// Add modifies the balance by the given delta, which may be negative.
func (a *Account) Add(delta int64) error {
	if delta > 0 && a.Balance > math.MaxInt64-delta {
		return errors.Wrapf(errors.ErrOverflow, "balance %d + %d", a.Balance, delta)
	}
	next := a.Balance + delta
	if next < 0 {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, needed %d", a.Balance, -delta)
	}
	a.Balance = next
	return nil
}

func accountKey(addr vault.Identity) []byte {
	return append([]byte(BucketName), addr...)
}

func loadAccount(db store.KVStore, addr vault.Identity) (*Account, error) {
	raw := db.Get(accountKey(addr))
	if raw == nil {
		return nil, nil
	}
	var acct Account
	if err := json.Unmarshal(raw, &acct); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return &acct, nil
}

func saveAccount(db store.KVStore, acct *Account) error {
	if err := acct.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(acct)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	db.Set(accountKey(acct.Address), raw)
	return nil
}
