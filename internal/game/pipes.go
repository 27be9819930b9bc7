package game

import (
	"math/rand"

	"github.com/vovakirdan/flapper/internal/config"
)

// Generator spawns pipes with randomly placed gaps.
// The same seed always yields the same sequence of gaps.
type Generator struct {
	rng *rand.Rand
	cfg config.FlappyConfig
}

// NewGenerator creates a generator for cfg seeded with seed.
func NewGenerator(cfg config.FlappyConfig, seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// MaybeSpawn appends a pipe at the right edge when there are no pipes or
// the newest one has moved more than the spawn distance away from it.
// It reports whether a pipe was spawned.
func (g *Generator) MaybeSpawn(s *State) bool {
	newest, ok := s.Pipes.Back()
	if ok && newest.X >= g.cfg.Playfield.Width-g.cfg.Pipes.SpawnDistance {
		return false
	}
	s.Pipes.PushBack(g.Spawn())
	return true
}

// Spawn returns a new pipe at the right edge of the playfield.
func (g *Generator) Spawn() Pipe {
	top := GapTop(g.rng.Float64(), g.cfg)
	return Pipe{
		X:         g.cfg.Playfield.Width,
		TopHeight: top,
		BottomY:   top + g.cfg.Pipes.Gap,
	}
}

// GapTop maps r in [0, 1) onto the range of valid gap tops, keeping the gap
// at least margin away from both playfield edges.
func GapTop(r float64, cfg config.FlappyConfig) float64 {
	lo, hi := cfg.GapRange()
	return r*(hi-lo) + lo
}

// ScrollPipes moves every pipe left by the pipe speed, then drops the oldest
// pipe if it has fully left the playfield. Pipes are spawned far enough
// apart that at most one can leave per tick.
func ScrollPipes(s *State, pipes config.Pipes) {
	live := s.Pipes.Slice()
	for i := range live {
		live[i].X -= pipes.Speed
	}

	if oldest, ok := s.Pipes.Front(); ok && oldest.X+pipes.Width < 0 {
		s.Pipes.PopFront()
	}
}
