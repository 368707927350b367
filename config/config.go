package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Search      Search      `yaml:"search"`
	Game        Game        `yaml:"game"`
	Log         Log         `yaml:"log"`
	Experiments Experiments `yaml:"experiments"`
}

type Search struct {
	Depth   int  `yaml:"depth"`   // Plies searched below each candidate
	Metrics bool `yaml:"metrics"` // Collect node and cutoff counts
}

type Game struct {
	MaxTurns int `yaml:"max_turns"` // Plies before a game is called a draw
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

type Experiments struct {
	Games  int    `yaml:"games"` // Per depth
	Depths []int  `yaml:"depths"`
	Seed   uint64 `yaml:"seed"`
	OutDir string `yaml:"out_dir"`
}

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

func Default() Config {
	return Config{
		Search: Search{Depth: 12},
		Game:   Game{MaxTurns: 300},
		Log:    Log{Level: "info", Format: FormatConsole},
		Experiments: Experiments{
			Games:  10,
			Depths: []int{1, 2, 4, 6},
			Seed:   1,
			OutDir: "experiments",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Search.Depth < 1 {
		result = multierror.Append(result, fmt.Errorf("search.depth must be at least 1, got %d", c.Search.Depth))
	}
	if c.Game.MaxTurns < 1 {
		result = multierror.Append(result, fmt.Errorf("game.max_turns must be at least 1, got %d", c.Game.MaxTurns))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != FormatConsole && c.Log.Format != FormatJSON {
		result = multierror.Append(result, fmt.Errorf("log.format must be %q or %q, got %q", FormatConsole, FormatJSON, c.Log.Format))
	}
	if c.Experiments.Games < 1 {
		result = multierror.Append(result, fmt.Errorf("experiments.games must be at least 1, got %d", c.Experiments.Games))
	}
	if len(c.Experiments.Depths) == 0 {
		result = multierror.Append(result, errors.New("experiments.depths must not be empty"))
	}
	for _, depth := range c.Experiments.Depths {
		if depth < 1 {
			result = multierror.Append(result, fmt.Errorf("experiments.depths must be at least 1, got %d", depth))
		}
	}
	return result.ErrorOrNil()
}

// LogLevel is the parsed log level, info if it does not parse.
func (c Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
