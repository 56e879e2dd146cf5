package wallettest

import (
	"github.com/coventure/vault"
	"github.com/coventure/vault/store"
	"github.com/coventure/vault/x/bank"
)

// CoinMover is a mock implementing the bank.CoinMover interface.
//
// Unless an error is set it delegates to the real bank controller, so
// balances behave as in production. It additionally counts the calls,
// which allows tests to assert that a transfer fired exactly once.
type CoinMover struct {
	// Err, if set, is returned by every MoveCoins call before any
	// account is touched.
	Err error

	// MoveCount is incremented on every MoveCoins call, failed or not.
	MoveCount int

	ctrl bank.Controller
}

var _ bank.CoinMover = (*CoinMover)(nil)

func (m *CoinMover) MoveCoins(db store.KVStore, src, dest vault.Identity, amount int64) error {
	m.MoveCount++
	if m.Err != nil {
		return m.Err
	}
	return m.ctrl.MoveCoins(db, src, dest, amount)
}
