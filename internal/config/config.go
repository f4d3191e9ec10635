// Package config loads game rules and UI preferences from YAML, with
// an embedded default so the binary works with no files installed.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// Config is the full on-disk configuration.
type Config struct {
	Rules      RulesConfig      `yaml:"rules"`
	Scoreboard ScoreboardConfig `yaml:"scoreboard"`
}

// RulesConfig holds the game-rule parameters.
type RulesConfig struct {
	// WinningTile is the tile value that wins the game. Must be a
	// power of two, at least 8. Defaults to 2048.
	WinningTile int `yaml:"winning_tile"`

	// SpawnFourChance is the probability that a spawned tile is a 4
	// instead of a 2. Defaults to 0.10.
	SpawnFourChance float64 `yaml:"spawn_four_chance"`
}

// ScoreboardConfig holds scoreboard display preferences.
type ScoreboardConfig struct {
	// Limit is how many results the scoreboard shows. Defaults to 10.
	Limit int `yaml:"limit"`
}

// Default returns the built-in configuration: classic 2048 rules.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			WinningTile:     2048,
			SpawnFourChance: 0.10,
		},
		Scoreboard: ScoreboardConfig{
			Limit: 10,
		},
	}
}

// Validate checks the configuration for values the engine cannot play.
func (c Config) Validate() error {
	w := c.Rules.WinningTile
	if w < 8 || w&(w-1) != 0 {
		return fmt.Errorf("config: winning_tile %d must be a power of two >= 8", w)
	}
	if c.Rules.SpawnFourChance < 0 || c.Rules.SpawnFourChance > 1 {
		return fmt.Errorf("config: spawn_four_chance %v must be within [0, 1]", c.Rules.SpawnFourChance)
	}
	if c.Scoreboard.Limit <= 0 {
		return fmt.Errorf("config: scoreboard limit %d must be positive", c.Scoreboard.Limit)
	}
	return nil
}

// GameRules converts the config into engine rules.
func (c Config) GameRules() game.Rules {
	return game.Rules{
		WinningTile:     c.Rules.WinningTile,
		SpawnFourChance: c.Rules.SpawnFourChance,
	}
}
