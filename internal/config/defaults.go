package config

import (
	_ "embed"
)

//go:embed defaults/hangman.yaml
var defaultHangmanYAML []byte

// Default returns the default configuration: six attempts for the
// regular tiers, a single attempt for impossible.
func Default() Config {
	return Config{
		Attempts: AttemptsConfig{
			Easy:       6,
			Medium:     6,
			Hard:       6,
			Impossible: 1,
		},
	}
}
