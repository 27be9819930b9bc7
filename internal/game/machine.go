package game

import "github.com/vovakirdan/flapper/internal/config"

// HandleInput applies the game's single input to s.
//
//	idle   -> active, bird gets the jump impulse
//	active -> active, velocity is set (not added) to the jump impulse
//	ended  -> idle, state reset
//
// A crashed game therefore needs two inputs to start flying again.
func HandleInput(s *State, cfg config.FlappyConfig) {
	switch s.Mode {
	case ModeIdle:
		s.Mode = ModeActive
		s.Bird.Velocity = s.Bird.JumpImpulse
	case ModeActive:
		s.Bird.Velocity = s.Bird.JumpImpulse
	case ModeEnded:
		s.Reset(cfg.Playfield)
	}
}
