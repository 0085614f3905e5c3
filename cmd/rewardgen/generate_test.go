package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aevon-lab/reward-points/internal/core/rewards"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LinesParse(t *testing.T) {
	opts := defaultOptions()
	opts.Users = 3
	opts.PerUser = 50
	opts.Months = []int{2, 11}

	var buf bytes.Buffer
	calls := 0
	require.NoError(t, generate(&buf, opts, rand.New(rand.NewSource(7)), func() { calls++ }))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 150)
	require.Equal(t, 150, calls)

	identities := make(map[string]struct{})
	for _, line := range lines {
		tx, err := rewards.ParseLine(line)
		require.NoError(t, err, line)
		require.Equal(t, 2023, tx.Year())
		require.Contains(t, []int{2, 11}, tx.Month())
		require.GreaterOrEqual(t, tx.RewardPoints, int64(0))
		identities[tx.Identity] = struct{}{}
	}
	require.Len(t, identities, 3)
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := defaultOptions()
	opts.Users = 2
	opts.PerUser = 10

	var a, b bytes.Buffer
	require.NoError(t, generate(&a, opts, rand.New(rand.NewSource(42)), nil))
	require.NoError(t, generate(&b, opts, rand.New(rand.NewSource(42)), nil))

	require.Equal(t, a.String(), b.String())
}

func TestOptions_Validate(t *testing.T) {
	opts := defaultOptions()
	require.NoError(t, opts.validate())

	opts.Months = []int{0}
	require.ErrorContains(t, opts.validate(), "not a month")

	opts = defaultOptions()
	opts.Users = 0
	require.ErrorContains(t, opts.validate(), "--users")

	opts = defaultOptions()
	opts.Year = 202
	require.ErrorContains(t, opts.validate(), "four digit year")
}

func TestRootCmd_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	cmd := rootCmd()
	cmd.SetArgs([]string{"--users", "2", "--per-user", "5", "--months", "1,2", "--seed", "1", "--quiet", "--out", out})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, 10, strings.Count(string(data), "\n"))
}
