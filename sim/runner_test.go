package sim

import (
	"io/ioutil"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}

func TestRunHappyPath(t *testing.T) {
	conf := &Config{
		Owners:         []string{"alice", "bob", "carol"},
		Threshold:      2,
		CustodyBalance: 10000,
		Steps: []Step{
			{Op: OpAdvance, Height: 100},
			{Op: OpPropose, Caller: "alice", Recipient: "dave", Amount: 1000, Expiration: 200},
			{Op: OpSign, Tx: 0, Caller: "bob"},
			// executing a second time must fail as scripted
			{Op: OpExecute, Tx: 0, Caller: "eve"},
			{Op: OpExecute, Tx: 0, Caller: "alice", WantErr: "already executed"},
		},
	}
	require.NoError(t, conf.Validate())

	runner, err := NewRunner(conf, quietLogger())
	require.NoError(t, err)
	require.NoError(t, runner.Run())

	got, err := runner.Balance("dave")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got)

	left, err := runner.Balance(CustodyAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(9000), left)

	assert.Equal(t, int64(1), runner.Engine().TransactionCount())
}

func TestRunExpiredProposal(t *testing.T) {
	conf := &Config{
		Owners:         []string{"alice", "bob"},
		Threshold:      2,
		CustodyBalance: 100,
		Steps: []Step{
			{Op: OpAdvance, Height: 100},
			// expiration equals current height, immediately expired
			{Op: OpPropose, Caller: "alice", Recipient: "dave", Amount: 10, Expiration: 100},
			{Op: OpSign, Tx: 0, Caller: "bob", WantErr: "expired"},
			{Op: OpExecute, Tx: 0, Caller: "alice", WantErr: "expired"},
		},
	}

	runner, err := NewRunner(conf, quietLogger())
	require.NoError(t, err)
	require.NoError(t, runner.Run())

	got, err := runner.Balance("dave")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestRunUnexpectedOutcomeAborts(t *testing.T) {
	conf := &Config{
		Owners:         []string{"alice"},
		Threshold:      1,
		CustodyBalance: 100,
		Steps: []Step{
			{Op: OpAdvance, Height: 10},
			// stranger proposing must fail, the script claims success
			{Op: OpPropose, Caller: "mallory", Recipient: "dave", Amount: 10, Expiration: 20},
		},
	}

	runner, err := NewRunner(conf, quietLogger())
	require.NoError(t, err)
	assert.Error(t, runner.Run())
}

func TestRunHeightOnlyMovesForward(t *testing.T) {
	conf := &Config{
		Owners:         []string{"alice"},
		Threshold:      1,
		CustodyBalance: 100,
		Steps: []Step{
			{Op: OpAdvance, Height: 10},
			{Op: OpAdvance, Height: 10},
		},
	}

	runner, err := NewRunner(conf, quietLogger())
	require.NoError(t, err)
	assert.Error(t, runner.Run())
}

func TestRunnerRejectsBadPolicy(t *testing.T) {
	conf := &Config{
		Owners:    []string{"alice"},
		Threshold: 5,
	}
	_, err := NewRunner(conf, quietLogger())
	assert.Error(t, err)
}
