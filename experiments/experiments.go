package experiments

import (
	"checkers/config"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	KindSearch = "search"
	KindRandom = "random"
)

// RunDepthExperiment pits a search agent of every configured depth, playing
// the computer side, against a random agent, and stores the results as CSV
// files. It returns the directory the files were written to.
func RunDepthExperiment(cfg config.Config) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom}
	configs := []metrics.AgentConfig{baseline}
	for i, depth := range cfg.Experiments.Depths {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Kind: KindSearch, Depth: depth})
	}

	// Each matchup pairs a search agent against the random baseline
	matchUps := [][]metrics.AgentConfig{}
	for _, agent := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{agent, baseline})
	}

	return runExperiment("depth", cfg, configs, matchUps)
}

func runExperiment(name string, cfg config.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	games := cfg.Experiments.Games

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		computer, human := matchUp[0], matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between computer=%+v and human=%+v...", mi+1, len(matchUps), computer, human)

		wins := 0
		for i := 0; i < games; i++ {
			seed := cfg.Experiments.Seed + uint64(count)
			winner, gameMetric, moveMetrics, err := runGame(computer, human, seed, cfg)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			if winner == game.Computer {
				wins++
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Computer:   computer.ID,
				Human:      human.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, games, winner)
		}
		log.Info().Msgf("completed matchup %d of %d, computer won %d of %d", mi+1, len(matchUps), wins, games)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.Experiments.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game between two agents and returns the winner
func runGame(computer, human metrics.AgentConfig, seed uint64, cfg config.Config) (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.NewLocalEngine(
		createAgent(human, seed, cfg),
		createAgent(computer, seed, cfg),
		engine.WithMaxTurns(cfg.Game.MaxTurns),
	)
	return e.Run()
}

func createAgent(agent metrics.AgentConfig, seed uint64, cfg config.Config) engine.Agent {
	if agent.Kind == KindRandom {
		return engine.NewRandomAgent(seed)
	}

	options := []searcher.Option{searcher.WithDepth(agent.Depth)}
	if cfg.Search.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	return engine.NewSearchAgent(searcher.NewMinimax(options...))
}
