package main

import (
	"checkers/config"
	"checkers/engine"
	"checkers/experiments"
	"checkers/searcher"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	depth := flag.Int("depth", 0, "Search depth in plies, overrides the config")
	level := flag.String("log-level", "", "Log level, overrides the config")
	experiment := flag.Bool("experiment", false, "Run the depth experiment instead of playing")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *depth, *level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}
	setupLogging(cfg)

	if *experiment {
		dir, err := experiments.RunDepthExperiment(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Str("dir", dir).Msg("experiment results stored")
		return
	}

	if err := play(cfg); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func loadConfig(path string, depth int, level string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}
	if depth != 0 {
		cfg.Search.Depth = depth
	}
	if level != "" {
		cfg.Log.Level = level
	}
	return cfg, cfg.Validate()
}

func setupLogging(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.LogLevel())
	if cfg.Log.Format == config.FormatConsole {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// play runs an interactive game on stdin and stdout, the computer answering
// every human move.
func play(cfg config.Config) error {
	options := []searcher.Option{searcher.WithDepth(cfg.Search.Depth)}
	if cfg.Search.Metrics {
		options = append(options, searcher.WithMetrics())
	}

	e := engine.NewLocalEngine(
		engine.NewHumanAgent(os.Stdin, os.Stdout),
		engine.NewSearchAgent(searcher.NewMinimax(options...)),
		engine.WithMaxTurns(cfg.Game.MaxTurns),
		engine.WithOutput(os.Stdout),
	)
	_, _, _, err := e.Run()
	return err
}
