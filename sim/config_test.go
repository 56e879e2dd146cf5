package sim

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScenario = `
owners: [alice, bob, carol]
threshold: 2
custodyBalance: 10000
steps:
  - op: advance
    height: 100
  - op: propose
    caller: alice
    recipient: dave
    amount: 1000
    expiration: 200
  - op: sign
    tx: 0
    caller: bob
  - op: execute
    tx: 0
    caller: eve
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	conf, err := LoadConfigFromFile(writeScenario(t, sampleScenario))
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob", "carol"}, conf.Owners)
	assert.Equal(t, int64(2), conf.Threshold)
	assert.Equal(t, int64(10000), conf.CustodyBalance)
	require.Len(t, conf.Steps, 4)
	assert.Equal(t, OpAdvance, conf.Steps[0].Op)
	assert.Equal(t, "alice", conf.Steps[1].Caller)
	assert.Equal(t, int64(1000), conf.Steps[1].Amount)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]struct {
		conf    Config
		wantErr bool
	}{
		"minimal": {
			conf: Config{Owners: []string{"a"}, Threshold: 1},
		},
		"no owners": {
			conf:    Config{Threshold: 1},
			wantErr: true,
		},
		"negative custody balance": {
			conf:    Config{Owners: []string{"a"}, Threshold: 1, CustodyBalance: -1},
			wantErr: true,
		},
		"unknown op": {
			conf: Config{Owners: []string{"a"}, Threshold: 1,
				Steps: []Step{{Op: "cancel"}}},
			wantErr: true,
		},
		"advance without height": {
			conf: Config{Owners: []string{"a"}, Threshold: 1,
				Steps: []Step{{Op: OpAdvance}}},
			wantErr: true,
		},
		"propose without recipient": {
			conf: Config{Owners: []string{"a"}, Threshold: 1,
				Steps: []Step{{Op: OpPropose, Caller: "a"}}},
			wantErr: true,
		},
		"sign without caller": {
			conf: Config{Owners: []string{"a"}, Threshold: 1,
				Steps: []Step{{Op: OpSign, Tx: 0}}},
			wantErr: true,
		},
		"unknown failure kind": {
			conf: Config{Owners: []string{"a"}, Threshold: 1,
				Steps: []Step{{Op: OpSign, Caller: "a", WantErr: "bogus"}}},
			wantErr: true,
		},
		"known failure kind": {
			conf: Config{Owners: []string{"a"}, Threshold: 1,
				Steps: []Step{{Op: OpSign, Caller: "a", WantErr: "already signed"}}},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.conf.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
