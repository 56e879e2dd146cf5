// Package sim replays scripted custody scenarios against a fresh
// wallet engine. It exists for manual experimentation and smoke
// testing from the command line.
package sim

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/coventure/vault/errors"
)

// Step operations.
const (
	OpAdvance = "advance"
	OpPropose = "propose"
	OpSign    = "sign"
	OpExecute = "execute"
)

// Step is a single scripted operation.
type Step struct {
	Op string `yaml:"op"`

	// advance
	Height int64 `yaml:"height"`

	// propose / sign / execute
	Caller string `yaml:"caller"`

	// propose
	Recipient  string `yaml:"recipient"`
	Amount     int64  `yaml:"amount"`
	Expiration int64  `yaml:"expiration"`

	// sign / execute
	Tx int64 `yaml:"tx"`

	// WantErr names the failure kind this step is expected to produce.
	// Empty means the step must succeed.
	WantErr string `yaml:"wantErr"`
}

// Config is a full scenario script.
type Config struct {
	Owners         []string `yaml:"owners"`
	Threshold      int64    `yaml:"threshold"`
	CustodyBalance int64    `yaml:"custodyBalance"`
	Steps          []Step   `yaml:"steps"`
}

// LoadConfigFromFile reads and validates a scenario file.
func LoadConfigFromFile(path string) (*Config, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "read %s: %s", path, err)
	}
	var conf Config
	if err := yaml.Unmarshal(raw, &conf); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "parse %s: %s", path, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks the scenario for mistakes that would make the replay
// meaningless. The wallet engine has its own validation, this only
// covers the script syntax.
func (c *Config) Validate() error {
	if len(c.Owners) == 0 {
		return errors.Wrap(errors.ErrInput, "no owners")
	}
	if c.CustodyBalance < 0 {
		return errors.Wrapf(errors.ErrInput, "negative custody balance %d", c.CustodyBalance)
	}
	for i, s := range c.Steps {
		switch s.Op {
		case OpAdvance:
			if s.Height <= 0 {
				return errors.Wrapf(errors.ErrInput, "step %d: advance needs a positive height", i)
			}
		case OpPropose:
			if s.Caller == "" || s.Recipient == "" {
				return errors.Wrapf(errors.ErrInput, "step %d: propose needs caller and recipient", i)
			}
		case OpSign, OpExecute:
			if s.Caller == "" {
				return errors.Wrapf(errors.ErrInput, "step %d: %s needs a caller", i, s.Op)
			}
		default:
			return errors.Wrapf(errors.ErrInput, "step %d: unknown op %q", i, s.Op)
		}
		if s.WantErr != "" {
			if _, ok := failureKinds[s.WantErr]; !ok {
				return errors.Wrapf(errors.ErrInput, "step %d: unknown failure kind %q", i, s.WantErr)
			}
		}
	}
	return nil
}
