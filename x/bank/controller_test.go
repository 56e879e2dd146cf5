package bank

import (
	"testing"

	"github.com/coventure/vault"
	"github.com/coventure/vault/errors"
	"github.com/coventure/vault/store"
	"github.com/stretchr/testify/assert"
)

func TestMoveCoins(t *testing.T) {
	alice := vault.NewIdentity([]byte("alice"))
	bob := vault.NewIdentity([]byte("bob"))

	ctrl := NewController()

	cases := map[string]struct {
		fund    int64
		move    int64
		wantErr *errors.Error
		wantSrc int64
		wantDst int64
	}{
		"happy path": {
			fund: 100, move: 60,
			wantSrc: 40, wantDst: 60,
		},
		"whole balance": {
			fund: 100, move: 100,
			wantSrc: 0, wantDst: 100,
		},
		"zero move is a noop": {
			fund: 100, move: 0,
			wantSrc: 100, wantDst: 0,
		},
		"insufficient funds": {
			fund: 10, move: 11,
			wantErr: errors.ErrInsufficientAmount,
			wantSrc: 10, wantDst: 0,
		},
		"negative amount": {
			fund: 10, move: -1,
			wantErr: errors.ErrInput,
			wantSrc: 10, wantDst: 0,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			assert.NoError(t, ctrl.IssueCoins(db, alice, tc.fund))

			err := ctrl.MoveCoins(db, alice, bob, tc.move)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %v, got %+v", tc.wantErr, err)
				}
			} else {
				assert.NoError(t, err)
			}

			src, err := ctrl.Balance(db, alice)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantSrc, src)

			dst, err := ctrl.Balance(db, bob)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantDst, dst)
		})
	}
}

func TestMoveCoinsMissingAccount(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	src := vault.NewIdentity([]byte("ghost"))
	dst := vault.NewIdentity([]byte("bob"))

	err := ctrl.MoveCoins(db, src, dst, 5)
	if !errors.ErrEmpty.Is(err) {
		t.Fatalf("want ErrEmpty, got %+v", err)
	}
}

func TestBalanceMissingAccount(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	bal, err := ctrl.Balance(db, vault.NewIdentity([]byte("nobody")))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), bal)
}

func TestIssueNegative(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	addr := vault.NewIdentity([]byte("alice"))

	assert.NoError(t, ctrl.IssueCoins(db, addr, 50))
	assert.NoError(t, ctrl.IssueCoins(db, addr, -20))

	bal, err := ctrl.Balance(db, addr)
	assert.NoError(t, err)
	assert.Equal(t, int64(30), bal)

	err = ctrl.IssueCoins(db, addr, -100)
	if !errors.ErrInsufficientAmount.Is(err) {
		t.Fatalf("want ErrInsufficientAmount, got %+v", err)
	}
}
