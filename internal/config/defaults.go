package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used if the embedded file is unreadable.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Bird: Bird{
			X:           80,
			Radius:      12,
			Gravity:     0.6,
			JumpImpulse: -8,
		},
		Pipes: Pipes{
			Width:         60,
			Gap:           160,
			Speed:         6,
			SpawnDistance: 300,
			Margin:        50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
