// Package config provides YAML-based game configuration loading and
// validation.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// FlappyConfig contains all tunables of the game.
type FlappyConfig struct {
	Playfield Playfield `yaml:"playfield"`
	Bird      Bird      `yaml:"bird"`
	Pipes     Pipes     `yaml:"pipes"`
}

// Playfield is the fixed logical drawing area. Hosts scale it to their
// actual output.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Bird defines the player actor.
type Bird struct {
	X           float64 `yaml:"x"`
	Radius      float64 `yaml:"radius"`
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// Pipes defines obstacle geometry and cadence.
type Pipes struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	Speed         float64 `yaml:"speed"`
	SpawnDistance float64 `yaml:"spawn_distance"`
	Margin        float64 `yaml:"margin"`
}

// GapRange returns the interval gap tops are drawn from.
func (c FlappyConfig) GapRange() (lo, hi float64) {
	return c.Pipes.Margin, c.Playfield.Height - c.Pipes.Gap - c.Pipes.Margin
}

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	case c.Bird.Radius <= 0:
		return fmt.Errorf("%w: bird radius must be positive, got %v", ErrInvalid, c.Bird.Radius)
	case c.Bird.X-c.Bird.Radius < 0 || c.Bird.X+c.Bird.Radius > c.Playfield.Width:
		return fmt.Errorf("%w: bird x %v does not fit the playfield", ErrInvalid, c.Bird.X)
	case c.Pipes.Width <= 0 || c.Pipes.Gap <= 0:
		return fmt.Errorf("%w: pipe width and gap must be positive", ErrInvalid)
	case c.Pipes.Speed <= 0:
		return fmt.Errorf("%w: pipe speed must be positive, got %v", ErrInvalid, c.Pipes.Speed)
	case c.Pipes.SpawnDistance <= 0:
		return fmt.Errorf("%w: spawn distance must be positive, got %v", ErrInvalid, c.Pipes.SpawnDistance)
	case c.Pipes.Margin < 0:
		return fmt.Errorf("%w: margin must not be negative, got %v", ErrInvalid, c.Pipes.Margin)
	}

	if lo, hi := c.GapRange(); hi < lo {
		return fmt.Errorf("%w: gap %v plus margins %v do not fit height %v",
			ErrInvalid, c.Pipes.Gap, 2*c.Pipes.Margin, c.Playfield.Height)
	}
	return nil
}
