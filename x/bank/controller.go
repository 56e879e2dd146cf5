package bank

import (
	"github.com/coventure/vault"
	"github.com/coventure/vault/errors"
	"github.com/coventure/vault/store"
)

// CoinMover is the interface custody modules use to trigger the actual
// movement of value. Implementations must be all-or-nothing: on error
// no account may have changed.
type CoinMover interface {
	MoveCoins(db store.KVStore, src, dest vault.Identity, amount int64) error
}

// Controller is the standard CoinMover over the account bucket.
type Controller struct{}

var _ CoinMover = Controller{}

// NewController returns a controller operating on the default account
// bucket.
func NewController() Controller {
	return Controller{}
}

// MoveCoins moves the given amount from src to dest. If src doesn't
// exist, or doesn't have sufficient funds, it fails. Moving a zero
// amount is a valid noop.
func (Controller) MoveCoins(db store.KVStore, src, dest vault.Identity, amount int64) error {
	if amount < 0 {
		return errors.Wrapf(errors.ErrInput, "negative amount %d", amount)
	}
	if amount == 0 {
		return nil
	}

	sender, err := loadAccount(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "account %s", src)
	}
	if err := sender.Add(-amount); err != nil {
		return err
	}

	recipient, err := loadAccount(db, dest)
	if err != nil {
		return err
	}
	if recipient == nil {
		recipient = &Account{Address: dest.Clone()}
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := saveAccount(db, sender); err != nil {
		return err
	}
	return saveAccount(db, recipient)
}

// IssueCoins attempts to add the given amount of funds to the
// destination address. Fails if it overflows the account.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (Controller) IssueCoins(db store.KVStore, dest vault.Identity, amount int64) error {
	recipient, err := loadAccount(db, dest)
	if err != nil {
		return err
	}
	if recipient == nil {
		recipient = &Account{Address: dest.Clone()}
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return saveAccount(db, recipient)
}

// Balance returns the current funds of an address. A missing account
// reports a zero balance.
func (Controller) Balance(db store.KVStore, addr vault.Identity) (int64, error) {
	acct, err := loadAccount(db, addr)
	if err != nil {
		return 0, err
	}
	if acct == nil {
		return 0, nil
	}
	return acct.Balance, nil
}
