package game

import "github.com/vovakirdan/flapper/internal/config"

// CheckCollisions ends the game if the bird overlaps a pipe column and sits
// above its gap top or below its gap bottom. It reports whether a collision
// was found.
func CheckCollisions(s *State, cfg config.FlappyConfig) bool {
	bird := s.Bird.Bounds()
	hit := false

	for _, p := range s.Pipes.Slice() {
		if !bird.OverlapsX(p.Column(cfg.Pipes.Width, cfg.Playfield.Height)) {
			continue
		}
		if bird.Y < p.TopHeight || bird.Bottom() > p.BottomY {
			hit = true
		}
	}

	if hit {
		s.Mode = ModeEnded
	}
	return hit
}

// UpdateScore awards one point for every pipe the bird's center has moved
// past for the first time. It returns the number of points awarded.
func UpdateScore(s *State, pipes config.Pipes) int {
	awarded := 0
	live := s.Pipes.Slice()
	for i := range live {
		p := &live[i]
		if !p.Passed && s.Bird.X > p.X+pipes.Width {
			p.Passed = true
			s.Score++
			awarded++
		}
	}
	return awarded
}
