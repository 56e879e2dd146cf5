package wallet

import "github.com/coventure/vault/errors"

// Error codes 1030-1033 are reserved for this package.
var (
	// ErrInvalidThreshold is returned when the configured threshold is
	// zero or exceeds the number of owners.
	ErrInvalidThreshold = errors.Register(1030, "invalid threshold")

	// ErrAlreadySigned is returned when an owner signs the same
	// transaction a second time.
	ErrAlreadySigned = errors.Register(1031, "already signed")

	// ErrInsufficientSignatures is returned when a transaction is
	// executed before the signature quorum is reached.
	ErrInsufficientSignatures = errors.Register(1032, "insufficient signatures")

	// ErrAlreadyExecuted is returned when a transaction that was
	// executed before is signed or executed again.
	ErrAlreadyExecuted = errors.Register(1033, "already executed")
)
