package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recom/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.02, cfg.Epsilon)
	assert.Equal(t, 2, cfg.NodeRepeats)
	assert.Equal(t, 1000, cfg.TotalSteps)
	assert.Equal(t, 2.0, cfg.CompactnessMultiplier)
	assert.Equal(t, "always", cfg.Accept)
	assert.Equal(t, config.ProposalReCom, cfg.Proposal)
	require.Len(t, cfg.Elections, 5)
	assert.Equal(t, "SEN12", cfg.Elections[1].Name)
	assert.Equal(t, config.Party{Name: "Democratic", Column: "USS12D"}, cfg.Elections[1].Parties[0])
}

func TestParse(t *testing.T) {
	doc := `
pop_col: population
epsilon: 0.1
total_steps: 50
tree_method: kruskal
assignment: district
geographic: false
elections:
  - name: E1
    parties:
      - {name: A, column: votes_a}
      - {name: B, column: votes_b}
recorder:
  kind: badger
  badger_path: /tmp/recom
`
	cfg, err := config.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "population", cfg.PopCol)
	assert.Equal(t, 0.1, cfg.Epsilon)
	assert.Equal(t, 50, cfg.TotalSteps)
	assert.Equal(t, "kruskal", cfg.TreeMethod)
	assert.False(t, cfg.Geographic)
	require.Len(t, cfg.Elections, 1)
	assert.Equal(t, []config.Party{{Name: "A", Column: "votes_a"}, {Name: "B", Column: "votes_b"}}, cfg.Elections[0].Parties)
	assert.Equal(t, config.RecorderBadger, cfg.Recorder.Kind)
	// Untouched fields keep their defaults.
	assert.Equal(t, 2, cfg.NodeRepeats)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown field":  "pop_column: x\n",
		"bad type":       "total_steps: many\n",
		"epsilon":        "epsilon: 1.5\n",
		"node repeats":   "node_repeats: 0\n",
		"accept":         "accept: sometimes\n",
		"proposal":       "proposal: swap\n",
		"tree method":    "tree_method: prim\n",
		"beta":           "accept: metropolis\nbeta: 0\n",
		"redis addr":     "recorder: {kind: redis}\n",
		"recorder kind":  "recorder: {kind: kafka}\n",
		"dup election":   "elections: [{name: X, parties: [{name: A, column: a}]}, {name: X, parties: [{name: A, column: a}]}]\n",
		"dup party":      "elections: [{name: X, parties: [{name: A, column: a}, {name: A, column: b}]}]\n",
		"no parties":     "elections: [{name: X}]\n",
		"negative steps": "total_steps: -1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Epsilon = 0
	cfg.Replicates = 0
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "epsilon")
	assert.Contains(t, err.Error(), "replicates")
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	err := cfg.ApplyEnv(map[string]string{
		"RECOM_EPSILON":     "0.05",
		"RECOM_TOTAL_STEPS": "20",
		"RECOM_GEOGRAPHIC":  "false",
		"RECOM_SEED":        "42",
		"RECOM_ACCEPT":      "metropolis",
		"RECOM_BETA":        "0.5",
		"RECOM_UNKNOWN":     "ignored",
		"PATH":              "/bin",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.Epsilon)
	assert.Equal(t, 20, cfg.TotalSteps)
	assert.False(t, cfg.Geographic)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "metropolis", cfg.Accept)
	assert.Equal(t, 0.5, cfg.Beta)

	err = config.Default().ApplyEnv(map[string]string{"RECOM_NODE_REPEATS": "two"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	err = config.Default().ApplyEnv(map[string]string{"RECOM_EPSILON": "2"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadAndEnvFile(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("total_steps: 7\nrecorder: {kind: none}\n"), 0o600))
	env := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(env, []byte("RECOM_TOTAL_STEPS=9\nRECOM_REPLICATES=3\n"), 0o600))

	cfg, err := config.Load(yml)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.TotalSteps)
	assert.Equal(t, config.RecorderNone, cfg.Recorder.Kind)

	require.NoError(t, cfg.LoadEnvFile(env))
	assert.Equal(t, 9, cfg.TotalSteps)
	assert.Equal(t, 3, cfg.Replicates)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Error(t, cfg.LoadEnvFile(filepath.Join(dir, "missing.env")))
}

func TestApplyProcessEnv(t *testing.T) {
	t.Setenv("RECOM_TOTAL_STEPS", "11")
	cfg := config.Default()
	require.NoError(t, cfg.ApplyProcessEnv())
	assert.Equal(t, 11, cfg.TotalSteps)
}

func TestMarshal(t *testing.T) {
	out, err := config.Default().Marshal()
	require.NoError(t, err)
	cfg, err := config.Parse(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
