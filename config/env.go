// File: env.go
// Role: RECOM_* environment overrides, from a map or a .env file.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every recognized environment variable.
const EnvPrefix = "RECOM_"

// ApplyEnv overrides fields from env. Keys without EnvPrefix and unknown keys
// are ignored. The result is validated.
func (c *Config) ApplyEnv(env map[string]string) error {
	var err error
	for key, val := range env {
		name, ok := strings.CutPrefix(key, EnvPrefix)
		if !ok {
			continue
		}

		switch name {
		case "POP_COL":
			c.PopCol = val
		case "POP_TARGET":
			c.PopTarget, err = strconv.ParseFloat(val, 64)
		case "EPSILON":
			c.Epsilon, err = strconv.ParseFloat(val, 64)
		case "NODE_REPEATS":
			c.NodeRepeats, err = strconv.Atoi(val)
		case "TOTAL_STEPS":
			c.TotalSteps, err = strconv.Atoi(val)
		case "COMPACTNESS_BOUND_MULTIPLIER":
			c.CompactnessMultiplier, err = strconv.ParseFloat(val, 64)
		case "ACCEPT":
			c.Accept = val
		case "BETA":
			c.Beta, err = strconv.ParseFloat(val, 64)
		case "PROPOSAL":
			c.Proposal = val
		case "TREE_METHOD":
			c.TreeMethod = val
		case "ASSIGNMENT":
			c.Assignment = val
		case "GEOGRAPHIC":
			c.Geographic, err = strconv.ParseBool(val)
		case "SEED":
			c.Seed, err = strconv.ParseInt(val, 10, 64)
		case "REPLICATES":
			c.Replicates, err = strconv.Atoi(val)
		case "MAX_PROPOSAL_RETRIES":
			c.MaxProposalRetries, err = strconv.Atoi(val)
		case "RECORDER":
			c.Recorder.Kind = val
		case "REDIS_ADDR":
			c.Recorder.RedisAddr = val
		case "REDIS_KEY":
			c.Recorder.RedisKey = val
		case "BADGER_PATH":
			c.Recorder.BadgerPath = val
		}
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, val, err)
		}
	}

	return c.Validate()
}

// LoadEnvFile applies the RECOM_* entries of a .env file.
func (c *Config) LoadEnvFile(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return c.ApplyEnv(env)
}

// ApplyProcessEnv applies the RECOM_* variables of the current process.
func (c *Config) ApplyProcessEnv() error {
	env := make(map[string]string)
	for _, item := range os.Environ() {
		key, val, ok := strings.Cut(item, "=")
		if ok && strings.HasPrefix(key, EnvPrefix) {
			env[key] = val
		}
	}

	return c.ApplyEnv(env)
}
