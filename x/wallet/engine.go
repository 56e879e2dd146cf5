package wallet

import (
	"context"
	"sync"

	"github.com/coventure/vault"
	"github.com/coventure/vault/errors"
	"github.com/coventure/vault/store"
	"github.com/coventure/vault/x/bank"
)

// Engine is the wallet authorization state machine. It owns the owner
// set, the threshold, the transaction ledger and the id counter.
//
// All public operations are serialized behind a single mutex and every
// mutating operation is applied through a store cache wrap, so a failed
// call leaves the state exactly as it was before.
//
// The caller identity is an explicit argument to every operation. It is
// trusted as-is; verifying it is the job of the host authentication
// layer. The current progress counter is read from the context, see
// vault.WithHeight.
type Engine struct {
	mu      sync.Mutex
	db      store.CacheableKVStore
	bank    bank.CoinMover
	custody vault.Identity
}

// NewEngine returns an engine persisting into db and moving funds out
// of the custody account through the given CoinMover.
func NewEngine(db store.CacheableKVStore, mover bank.CoinMover, custody vault.Identity) *Engine {
	return &Engine{
		db:      db,
		bank:    mover,
		custody: custody.Clone(),
	}
}

// Custody returns the account the executed transfers are paid from.
func (e *Engine) Custody() vault.Identity {
	return e.custody.Clone()
}

// Initialize sets the owner set and the signature threshold. Calling it
// again replaces the previous policy and leaves the transaction ledger
// untouched.
func (e *Engine) Initialize(owners []vault.Identity, threshold int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	conf := Config{Threshold: threshold}
	for _, o := range owners {
		conf.Owners = append(conf.Owners, o.Clone())
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	cache := e.db.CacheWrap()
	if err := saveConfig(cache, &conf); err != nil {
		cache.Discard()
		return err
	}
	cache.Write()
	return nil
}

// Propose creates a new transaction signed by the caller and returns
// its id. Only owners may propose. Amount and expiration are stored as
// given: a zero amount or an expiration that already passed produce a
// transaction that is immediately dead weight, but creating it is not
// an error.
func (e *Engine) Propose(ctx context.Context, recipient vault.Identity, amount int64, expiration int64, caller vault.Identity) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	conf, err := loadConfig(e.db)
	if err != nil {
		return 0, err
	}
	if conf == nil || !conf.IsOwner(caller) {
		return 0, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}

	cache := e.db.CacheWrap()
	tx := &Transaction{
		ID:         txSeq.NextInt(cache),
		Recipient:  recipient.Clone(),
		Amount:     amount,
		Expiration: expiration,
		Executed:   false,
		Signatures: []vault.Identity{caller.Clone()},
	}
	if err := saveTx(cache, tx); err != nil {
		cache.Discard()
		return 0, err
	}
	cache.Write()
	return tx.ID, nil
}

// Sign adds the caller's signature to the transaction. The checks are
// ordered and the first failing one decides the returned error: the
// transaction must exist, must not be expired, must not be executed,
// the caller must be an owner and must not have signed before.
func (e *Engine) Sign(ctx context.Context, id int64, caller vault.Identity) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, conf, err := e.checkTx(ctx, id)
	if err != nil {
		return err
	}
	if conf == nil || !conf.IsOwner(caller) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}
	if tx.HasSigned(caller) {
		return errors.Wrapf(ErrAlreadySigned, "transaction %d by %s", id, caller)
	}
	if len(tx.Signatures) >= maxOwners {
		// unreachable while the owner set is capped at maxOwners
		return errors.Wrapf(errors.ErrHuman, "transaction %d has %d signatures", id, len(tx.Signatures))
	}

	cache := e.db.CacheWrap()
	tx.Signatures = append(tx.Signatures, caller.Clone())
	if err := saveTx(cache, tx); err != nil {
		cache.Discard()
		return err
	}
	cache.Write()
	return nil
}

// Execute performs the transfer of a fully signed transaction. The
// transaction must exist, must not be expired, must not be executed
// and must carry at least threshold signatures. The caller does not
// have to be an owner, see the package documentation.
//
// Marking the transaction executed and moving the funds is one atomic
// step: if the transfer fails, the executed flag is rolled back too.
func (e *Engine) Execute(ctx context.Context, id int64, caller vault.Identity) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, conf, err := e.checkTx(ctx, id)
	if err != nil {
		return err
	}
	if conf == nil {
		// a transaction can only be proposed by an owner, so a ledger
		// without configuration cannot happen
		return errors.Wrapf(errors.ErrHuman, "transaction %d without configuration", id)
	}
	if int64(len(tx.Signatures)) < conf.Threshold {
		return errors.Wrapf(ErrInsufficientSignatures,
			"transaction %d has %d of %d", id, len(tx.Signatures), conf.Threshold)
	}

	cache := e.db.CacheWrap()
	tx.Executed = true
	if err := saveTx(cache, tx); err != nil {
		cache.Discard()
		return err
	}
	if err := e.bank.MoveCoins(cache, e.custody, tx.Recipient, tx.Amount); err != nil {
		cache.Discard()
		return err
	}
	cache.Write()
	return nil
}

// checkTx runs the checks shared by Sign and Execute: the transaction
// must exist, must not be expired and must not be executed yet. The
// current configuration is returned along to save a second lookup.
func (e *Engine) checkTx(ctx context.Context, id int64) (*Transaction, *Config, error) {
	tx, err := loadTx(e.db, id)
	if err != nil {
		return nil, nil, err
	}
	if tx == nil {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "transaction %d", id)
	}
	if vault.IsExpired(ctx, tx.Expiration) {
		return nil, nil, errors.Wrapf(errors.ErrExpired, "transaction %d expired at %d", id, tx.Expiration)
	}
	if tx.Executed {
		return nil, nil, errors.Wrapf(ErrAlreadyExecuted, "transaction %d", id)
	}
	conf, err := loadConfig(e.db)
	if err != nil {
		return nil, nil, err
	}
	return tx, conf, nil
}

// SignatureCount returns the number of signatures collected for the
// transaction, or 0 if no such transaction exists.
func (e *Engine) SignatureCount(id int64) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, err := loadTx(e.db, id)
	if err != nil || tx == nil {
		return 0
	}
	return int64(len(tx.Signatures))
}

// HasSigned returns whether the identity signed the transaction, or
// false if no such transaction exists.
func (e *Engine) HasSigned(id int64, identity vault.Identity) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, err := loadTx(e.db, id)
	if err != nil || tx == nil {
		return false
	}
	return tx.HasSigned(identity)
}

// Owners returns a copy of the current owner set, nil before the first
// successful Initialize.
func (e *Engine) Owners() []vault.Identity {
	e.mu.Lock()
	defer e.mu.Unlock()

	conf, err := loadConfig(e.db)
	if err != nil || conf == nil {
		return nil
	}
	owners := make([]vault.Identity, 0, len(conf.Owners))
	for _, o := range conf.Owners {
		owners = append(owners, o.Clone())
	}
	return owners
}

// Threshold returns the current signature threshold, 0 before the
// first successful Initialize.
func (e *Engine) Threshold() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	conf, err := loadConfig(e.db)
	if err != nil || conf == nil {
		return 0
	}
	return conf.Threshold
}

// Transaction returns a copy of the stored transaction, or false if no
// such transaction exists.
func (e *Engine) Transaction(id int64) (*Transaction, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, err := loadTx(e.db, id)
	if err != nil || tx == nil {
		return nil, false
	}
	return tx, true
}

// TransactionCount returns the number of transactions ever proposed.
func (e *Engine) TransactionCount() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return txSeq.Peek(e.db)
}
