package sim

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/coventure/vault"
	verrors "github.com/coventure/vault/errors"
	"github.com/coventure/vault/store"
	"github.com/coventure/vault/x/bank"
	"github.com/coventure/vault/x/wallet"
)

// failureKinds maps the scripted failure names to the error classes
// the engine produces.
var failureKinds = map[string]*verrors.Error{
	"unauthorized":            verrors.ErrUnauthorized,
	"not found":               verrors.ErrNotFound,
	"expired":                 verrors.ErrExpired,
	"invalid threshold":       wallet.ErrInvalidThreshold,
	"already signed":          wallet.ErrAlreadySigned,
	"insufficient signatures": wallet.ErrInsufficientSignatures,
	"already executed":        wallet.ErrAlreadyExecuted,
	"insufficient funds":      verrors.ErrInsufficientAmount,
}

// CustodyAccount is the scripted name of the account the executed
// transfers are paid from.
const CustodyAccount = "custody"

// Runner replays one scenario against a fresh engine.
type Runner struct {
	conf   *Config
	logger *log.Logger

	eng    *wallet.Engine
	ctrl   bank.Controller
	db     store.CacheableKVStore
	height int64
}

// NewRunner builds a runner with a fresh store, funds the custody
// account and initializes the wallet policy from the scenario.
func NewRunner(conf *Config, logger *log.Logger) (*Runner, error) {
	db := store.MemStore()
	ctrl := bank.NewController()
	custody := identity(CustodyAccount)

	if err := ctrl.IssueCoins(db, custody, conf.CustodyBalance); err != nil {
		return nil, verrors.Wrap(err, "fund custody")
	}

	eng := wallet.NewEngine(db, ctrl, custody)
	owners := make([]vault.Identity, 0, len(conf.Owners))
	for _, name := range conf.Owners {
		owners = append(owners, identity(name))
	}
	if err := eng.Initialize(owners, conf.Threshold); err != nil {
		return nil, verrors.Wrap(err, "initialize wallet")
	}

	return &Runner{
		conf:   conf,
		logger: logger,
		eng:    eng,
		ctrl:   ctrl,
		db:     db,
	}, nil
}

// identity derives a stable identity from a scripted name.
func identity(name string) vault.Identity {
	return vault.NewIdentity([]byte(name))
}

// Run replays all steps in order. It stops at the first step whose
// outcome does not match the script and returns the reason.
func (r *Runner) Run() error {
	session := uuid.New().String()
	logger := r.logger.WithFields(log.Fields{
		"session": session,
		"owners":  len(r.conf.Owners),
		"quorum":  r.conf.Threshold,
	})
	logger.Info("scenario start")

	for i, step := range r.conf.Steps {
		stepLog := logger.WithFields(log.Fields{"step": i, "op": step.Op})
		if err := r.apply(stepLog, step); err != nil {
			stepLog.WithError(err).Error("scenario aborted")
			return verrors.Wrapf(err, "step %d", i)
		}
	}

	logger.WithField("transactions", r.eng.TransactionCount()).Info("scenario done")
	return nil
}

func (r *Runner) apply(logger *log.Entry, step Step) error {
	if step.Op == OpAdvance {
		if step.Height <= r.height {
			return verrors.Wrapf(verrors.ErrInput,
				"height %d is not above %d, the progress counter only moves forward",
				step.Height, r.height)
		}
		r.height = step.Height
		logger.WithField("height", r.height).Info("advanced")
		return nil
	}

	ctx := vault.WithHeight(context.Background(), r.height)
	caller := identity(step.Caller)

	var err error
	switch step.Op {
	case OpPropose:
		var id int64
		id, err = r.eng.Propose(ctx, identity(step.Recipient), step.Amount, step.Expiration, caller)
		if err == nil {
			logger.WithFields(log.Fields{
				"tx":        id,
				"recipient": step.Recipient,
				"amount":    step.Amount,
			}).Info("proposed")
		}
	case OpSign:
		err = r.eng.Sign(ctx, step.Tx, caller)
		if err == nil {
			logger.WithFields(log.Fields{
				"tx":         step.Tx,
				"signatures": r.eng.SignatureCount(step.Tx),
			}).Info("signed")
		}
	case OpExecute:
		err = r.eng.Execute(ctx, step.Tx, caller)
		if err == nil {
			logger.WithField("tx", step.Tx).Info("executed")
		}
	default:
		return verrors.Wrapf(verrors.ErrHuman, "unknown op %q", step.Op)
	}

	return r.outcome(logger, step, err)
}

// outcome compares what happened against what the script expects.
func (r *Runner) outcome(logger *log.Entry, step Step, err error) error {
	if step.WantErr == "" {
		return err
	}
	want := failureKinds[step.WantErr]
	if !want.Is(err) {
		return verrors.Wrapf(verrors.ErrState, "want %q failure, got %v", step.WantErr, err)
	}
	logger.WithField("failure", step.WantErr).Info("failed as scripted")
	return nil
}

// Balance reports the current funds of a scripted account name.
func (r *Runner) Balance(name string) (int64, error) {
	return r.ctrl.Balance(r.db, identity(name))
}

// Engine exposes the wallet under test for inspection.
func (r *Runner) Engine() *wallet.Engine {
	return r.eng
}
