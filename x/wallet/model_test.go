package wallet

import (
	"testing"

	"github.com/coventure/vault"
	"github.com/coventure/vault/errors"
	"github.com/coventure/vault/wallettest"
	"github.com/coventure/vault/wallettest/assert"
)

func TestConfigValidate(t *testing.T) {
	var owners []vault.Identity
	for i := 0; i < 11; i++ {
		owners = append(owners, wallettest.NewIdentity())
	}

	cases := map[string]struct {
		conf    Config
		wantErr *errors.Error
	}{
		"single owner": {
			conf: Config{Owners: owners[:1], Threshold: 1},
		},
		"ten owners full quorum": {
			conf: Config{Owners: owners[:10], Threshold: 10},
		},
		"eleven owners": {
			conf:    Config{Owners: owners[:11], Threshold: 1},
			wantErr: errors.ErrInput,
		},
		"zero threshold": {
			conf:    Config{Owners: owners[:3], Threshold: 0},
			wantErr: ErrInvalidThreshold,
		},
		"threshold above owners": {
			conf:    Config{Owners: owners[:3], Threshold: 4},
			wantErr: ErrInvalidThreshold,
		},
		"empty owner set": {
			conf:    Config{Threshold: 1},
			wantErr: ErrInvalidThreshold,
		},
		"duplicate owners": {
			conf:    Config{Owners: []vault.Identity{owners[0], owners[0]}, Threshold: 1},
			wantErr: errors.ErrDuplicate,
		},
		"malformed owner": {
			conf:    Config{Owners: []vault.Identity{vault.Identity("bad")}, Threshold: 1},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.conf.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestConfigIsOwner(t *testing.T) {
	a := wallettest.NewIdentity()
	b := wallettest.NewIdentity()
	conf := Config{Owners: []vault.Identity{a}, Threshold: 1}

	assert.Equal(t, true, conf.IsOwner(a))
	assert.Equal(t, false, conf.IsOwner(b))
	assert.Equal(t, false, conf.IsOwner(nil))
}

func TestTransactionHasSigned(t *testing.T) {
	a := wallettest.NewIdentity()
	b := wallettest.NewIdentity()
	tx := Transaction{Signatures: []vault.Identity{a}}

	assert.Equal(t, true, tx.HasSigned(a))
	assert.Equal(t, false, tx.HasSigned(b))
}
