// Package config holds the run configuration of an ensemble: chain
// parameters, elections to track and where samples go. It is read from YAML
// and can be overridden from RECOM_* environment variables or a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/recom/accept"
	"github.com/katalvlaran/recom/spanning"
)

// ErrInvalidConfig wraps every parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Proposal names.
const (
	ProposalReCom = "recom"
	ProposalFlip  = "flip"
)

// Recorder kinds.
const (
	RecorderNone   = "none"
	RecorderMemory = "memory"
	RecorderRedis  = "redis"
	RecorderBadger = "badger"
)

// Party maps a party to the node attribute holding its votes.
type Party struct {
	Name   string `yaml:"name"`
	Column string `yaml:"column"`
}

// Election is a named set of parties. Party order is kept.
type Election struct {
	Name    string  `yaml:"name"`
	Parties []Party `yaml:"parties"`
}

// RecorderConfig selects the sample sink.
type RecorderConfig struct {
	Kind       string `yaml:"kind"`
	RedisAddr  string `yaml:"redis_addr,omitempty"`
	RedisKey   string `yaml:"redis_key,omitempty"`
	BadgerPath string `yaml:"badger_path,omitempty"`
}

// Config is the full run configuration.
type Config struct {
	PopCol                string         `yaml:"pop_col"`
	PopTarget             float64        `yaml:"pop_target"`                   // 0: ideal population of the initial plan
	Epsilon               float64        `yaml:"epsilon"`
	NodeRepeats           int            `yaml:"node_repeats"`
	TotalSteps            int            `yaml:"total_steps"`
	CompactnessMultiplier float64        `yaml:"compactness_bound_multiplier"` // 0 disables the bound
	Accept                string         `yaml:"accept"`
	Beta                  float64        `yaml:"beta"`                         // metropolis score exp(-beta·cut edges)
	Proposal              string         `yaml:"proposal"`
	TreeMethod            string         `yaml:"tree_method"`
	Assignment            string         `yaml:"assignment"`
	Geographic            bool           `yaml:"geographic"`
	Elections             []Election     `yaml:"elections"`
	Seed                  int64          `yaml:"seed"`
	Replicates            int            `yaml:"replicates"`
	MaxProposalRetries    int            `yaml:"max_proposal_retries"`
	Recorder              RecorderConfig `yaml:"recorder"`
}

// Default returns the configuration of the classic Pennsylvania ReCom run.
func Default() *Config {
	return &Config{
		PopCol:                "TOT_POP",
		Epsilon:               0.02,
		NodeRepeats:           2,
		TotalSteps:            1000,
		CompactnessMultiplier: 2,
		Accept:                accept.NameAlways,
		Beta:                  1,
		Proposal:              ProposalReCom,
		TreeMethod:            spanning.MethodWilson,
		Assignment:            "2011_PLA_1",
		Geographic:            true,
		Elections: []Election{
			twoParty("SEN10", "SEN10D", "SEN10R"),
			twoParty("SEN12", "USS12D", "USS12R"),
			twoParty("SEN16", "T16SEND", "T16SENR"),
			twoParty("PRES12", "PRES12D", "PRES12R"),
			twoParty("PRES16", "T16PRESD", "T16PRESR"),
		},
		Seed:               1,
		Replicates:         1,
		MaxProposalRetries: 100,
		Recorder:           RecorderConfig{Kind: RecorderMemory, RedisKey: "recom"},
	}
}

func twoParty(name, dem, rep string) Election {
	return Election{Name: name, Parties: []Party{{"Democratic", dem}, {"Republican", rep}}}
}

// Parse reads YAML from r over Default and validates the result.
// Unknown fields are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load parses the YAML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every problem found, joined; each wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.PopCol == "" {
		bad("pop_col is required")
	}
	if c.PopTarget < 0 {
		bad("pop_target=%g must be >= 0", c.PopTarget)
	}
	if c.Epsilon <= 0 || c.Epsilon >= 1 {
		bad("epsilon=%g must be in (0,1)", c.Epsilon)
	}
	if c.NodeRepeats <= 0 {
		bad("node_repeats=%d must be > 0", c.NodeRepeats)
	}
	if c.TotalSteps < 0 {
		bad("total_steps=%d must be >= 0", c.TotalSteps)
	}
	if c.CompactnessMultiplier < 0 {
		bad("compactness_bound_multiplier=%g must be >= 0", c.CompactnessMultiplier)
	}
	switch c.Accept {
	case accept.NameAlways:
	case accept.NameMetropolis:
		if c.Beta <= 0 {
			bad("beta=%g must be > 0 for metropolis", c.Beta)
		}
	default:
		bad("accept=%q must be %q or %q", c.Accept, accept.NameAlways, accept.NameMetropolis)
	}
	if c.Proposal != ProposalReCom && c.Proposal != ProposalFlip {
		bad("proposal=%q must be %q or %q", c.Proposal, ProposalReCom, ProposalFlip)
	}
	if _, err := spanning.ParseMethod(c.TreeMethod); err != nil {
		bad("tree_method=%q", c.TreeMethod)
	}
	if c.Assignment == "" {
		bad("assignment is required")
	}
	if c.Replicates <= 0 {
		bad("replicates=%d must be > 0", c.Replicates)
	}
	if c.MaxProposalRetries < 0 {
		bad("max_proposal_retries=%d must be >= 0", c.MaxProposalRetries)
	}

	names := make(map[string]bool, len(c.Elections))
	for i, e := range c.Elections {
		if e.Name == "" {
			bad("elections[%d]: name is required", i)
		} else if names[e.Name] {
			bad("elections[%d]: duplicate name %q", i, e.Name)
		}
		names[e.Name] = true
		if len(e.Parties) == 0 {
			bad("election %q: no parties", e.Name)
		}
		parties := make(map[string]bool, len(e.Parties))
		for _, p := range e.Parties {
			if p.Name == "" || p.Column == "" {
				bad("election %q: party needs name and column", e.Name)
			} else if parties[p.Name] {
				bad("election %q: duplicate party %q", e.Name, p.Name)
			}
			parties[p.Name] = true
		}
	}

	switch c.Recorder.Kind {
	case "", RecorderNone, RecorderMemory:
	case RecorderRedis:
		if c.Recorder.RedisAddr == "" {
			bad("recorder: redis_addr is required")
		}
	case RecorderBadger:
		if c.Recorder.BadgerPath == "" {
			bad("recorder: badger_path is required")
		}
	default:
		bad("recorder kind %q", c.Recorder.Kind)
	}

	return errors.Join(errs...)
}
