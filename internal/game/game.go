package game

import (
	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// Game owns a State and drives it one frame at a time.
// A Game is not safe for concurrent use; hosts call Input and Frame from a
// single goroutine.
type Game struct {
	cfg    config.FlappyConfig
	state  State
	gen    *Generator
	seed   int64
	frames int
	rec    *Recorder
}

// New creates an idle game. cfg is expected to have passed Validate.
func New(cfg config.FlappyConfig, seed int64) *Game {
	return &Game{
		cfg:   cfg,
		state: NewState(cfg),
		gen:   NewGenerator(cfg, seed),
		seed:  seed,
	}
}

// Title returns the display name of the game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Input handles a key press, click or tap. It may be called any number of
// times between frames.
func (g *Game) Input() {
	if g.rec != nil {
		g.rec.Record(g.frames)
	}
	HandleInput(&g.state, g.cfg)
}

// Frame advances the simulation by one tick and draws the result onto dst.
// The branch is picked from the mode at the start of the frame, so a crash
// halfway through an active frame still lets the rest of it run.
func (g *Game) Frame(dst core.Surface) {
	dst.Clear()

	switch g.state.Mode {
	case ModeIdle:
		drawStartScreen(dst, g.cfg)
		drawBird(dst, g.state.Bird)

	case ModeActive:
		s := &g.state
		StepBird(s, g.cfg.Playfield)
		ScrollPipes(s, g.cfg.Pipes)
		drawPipes(dst, s, g.cfg)
		CheckCollisions(s, g.cfg)
		UpdateScore(s, g.cfg.Pipes)
		drawScore(dst, s.Score, g.cfg)
		drawBird(dst, s.Bird)
		g.gen.MaybeSpawn(s)

	case ModeEnded:
		drawGameOverScreen(dst, g.state.Score, g.cfg)
		drawBird(dst, g.state.Bird)
	}

	g.frames++
}

// SetRecorder attaches a recorder that captures every subsequent input.
// Pass nil to stop recording.
func (g *Game) SetRecorder(r *Recorder) {
	g.rec = r
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.state.Mode
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird {
	return g.state.Bird
}

// Pipes returns a copy of the pipes on screen, oldest first.
func (g *Game) Pipes() []Pipe {
	return append([]Pipe(nil), g.state.Pipes.Slice()...)
}

// Frames returns the number of frames run so far.
func (g *Game) Frames() int {
	return g.frames
}

// Seed returns the seed pipe gaps are drawn with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the game configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
