package experiments

import (
	"checkers/config"
	"checkers/engine"
	"checkers/experiments/metrics"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunDepthExperiment(t *testing.T) {
	cfg := config.Default()
	cfg.Game.MaxTurns = 30
	cfg.Search.Metrics = true
	cfg.Experiments.Games = 2
	cfg.Experiments.Depths = []int{1, 2}
	cfg.Experiments.OutDir = t.TempDir()

	dir, err := RunDepthExperiment(cfg)

	require.NoError(t, err)
	require.DirExists(t, dir)

	count := func(name string) int {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		defer f.Close()
		records, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return len(records) - 1 // Header
	}
	require.Equal(t, 3, count("agent_configs.csv"), "Random baseline plus one agent per depth")
	require.Equal(t, 4, count("game_records.csv"), "Two games per depth")
	require.Positive(t, count("move_records.csv"))
}

func TestCreateAgent(t *testing.T) {
	cfg := config.Default()

	random := createAgent(metrics.AgentConfig{Kind: KindRandom}, 1, cfg)
	require.IsType(t, &engine.RandomAgent{}, random)

	search := createAgent(metrics.AgentConfig{Kind: KindSearch, Depth: 3}, 1, cfg)
	require.IsType(t, &engine.SearchAgent{}, search)
}
