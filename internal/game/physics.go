package game

import "github.com/vovakirdan/flapper/internal/config"

// StepBird applies one tick of gravity: velocity first, then position.
// Touching either vertical edge of the playfield ends the game. Nothing is
// clamped; the bird may be drawn partly outside the playfield on the frame
// it crashes.
func StepBird(s *State, field config.Playfield) {
	b := &s.Bird
	b.Velocity += b.Gravity
	b.Y += b.Velocity

	if b.Y+b.Radius > field.Height || b.Y-b.Radius < 0 {
		s.Mode = ModeEnded
	}
}
