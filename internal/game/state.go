// Package game implements the flapper simulation: a bird falling under
// gravity that must pass through gaps between scrolling pipes.
//
// All state lives in a single State value owned by a Game. Hosts drive the
// simulation by calling Game.Input from their input sources and Game.Frame
// once per display refresh; the package itself never schedules anything.
package game

import (
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// Mode governs which components run each frame and how input is interpreted.
type Mode int

const (
	ModeIdle   Mode = iota // Waiting for the first input
	ModeActive             // Simulation running
	ModeEnded              // Crashed, waiting for input to reset
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeActive:
		return "active"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Bird is the player actor. X and Radius never change during a game.
type Bird struct {
	X           float64
	Y           float64
	Velocity    float64 // Positive is down
	Radius      float64
	Gravity     float64
	JumpImpulse float64
}

// Bounds returns the bird's axis-aligned bounding box.
func (b Bird) Bounds() core.Rect {
	return core.NewRect(b.X-b.Radius, b.Y-b.Radius, 2*b.Radius, 2*b.Radius)
}

// Pipe is one obstacle: a top pipe ending at TopHeight and a bottom pipe
// starting at BottomY.
type Pipe struct {
	X         float64
	TopHeight float64
	BottomY   float64
	Passed    bool
}

// Column returns the full-height horizontal extent of the pipe.
func (p Pipe) Column(width, height float64) core.Rect {
	return core.NewRect(p.X, 0, width, height)
}

// State is the complete simulation state.
type State struct {
	Bird  Bird
	Pipes PipeQueue
	Score int
	Mode  Mode
}

// NewState returns the initial idle state for cfg.
func NewState(cfg config.FlappyConfig) State {
	s := State{
		Bird: Bird{
			X:           cfg.Bird.X,
			Radius:      cfg.Bird.Radius,
			Gravity:     cfg.Bird.Gravity,
			JumpImpulse: cfg.Bird.JumpImpulse,
		},
	}
	s.Reset(cfg.Playfield)
	return s
}

// Reset puts the bird back mid-playfield at rest, removes every pipe and
// zeroes the score. The mode returns to idle.
func (s *State) Reset(field config.Playfield) {
	s.Bird.Y = field.Height / 2
	s.Bird.Velocity = 0
	s.Pipes.Clear()
	s.Score = 0
	s.Mode = ModeIdle
}
