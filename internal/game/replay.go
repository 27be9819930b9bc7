package game

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// ReplayVersion is the current replay format version.
const ReplayVersion = 1

// ErrBadReplay is wrapped by every replay decoding failure.
var ErrBadReplay = errors.New("bad replay")

// Recorder captures the frame index of every input a game receives.
type Recorder struct {
	inputs []int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record notes an input received before frame.
func (r *Recorder) Record(frame int) {
	r.inputs = append(r.inputs, frame)
}

// Inputs returns a copy of the recorded frame indices.
func (r *Recorder) Inputs() []int {
	return slices.Clone(r.inputs)
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.inputs = r.inputs[:0]
}

// Replay is everything needed to re-run a session exactly: the same
// configuration, seed and input timing always produce the same game.
type Replay struct {
	Version int                 `yaml:"version"`
	Seed    int64               `yaml:"seed"`
	Frames  int                 `yaml:"frames"`
	Score   int                 `yaml:"score"`
	Inputs  []int               `yaml:"inputs,flow"`
	Config  config.FlappyConfig `yaml:"config"`
}

// Replay returns the replay of the session so far. Without a recorder the
// input list is empty.
func (g *Game) Replay() Replay {
	var inputs []int
	if g.rec != nil {
		inputs = g.rec.Inputs()
	}
	return Replay{
		Version: ReplayVersion,
		Seed:    g.seed,
		Frames:  g.frames,
		Score:   g.state.Score,
		Inputs:  inputs,
		Config:  g.cfg,
	}
}

// Encode serializes the replay as YAML.
func (r Replay) Encode() ([]byte, error) {
	return yaml.Marshal(r)
}

// DecodeReplay parses and checks a YAML replay.
func DecodeReplay(data []byte) (Replay, error) {
	var r Replay
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Replay{}, fmt.Errorf("%w: %w", ErrBadReplay, err)
	}
	if err := r.Validate(); err != nil {
		return Replay{}, err
	}
	return r, nil
}

// Validate checks that the replay can be simulated.
func (r Replay) Validate() error {
	if r.Version != ReplayVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrBadReplay, r.Version)
	}
	if r.Frames < 0 {
		return fmt.Errorf("%w: negative frame count %d", ErrBadReplay, r.Frames)
	}
	if !slices.IsSorted(r.Inputs) {
		return fmt.Errorf("%w: inputs out of order", ErrBadReplay)
	}
	if len(r.Inputs) > 0 && r.Inputs[0] < 0 {
		return fmt.Errorf("%w: negative input frame %d", ErrBadReplay, r.Inputs[0])
	}
	if err := r.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadReplay, err)
	}
	return nil
}

// Simulate re-runs r headlessly and returns the resulting game. Only the
// last frame is drawn onto dst; pass core.Discard to draw nothing. Inputs
// recorded after the last frame are applied once all frames have run.
func Simulate(r Replay, dst core.Surface) *Game {
	g := New(r.Config, r.Seed)
	next := 0

	for f := 0; f < r.Frames; f++ {
		for next < len(r.Inputs) && r.Inputs[next] <= f {
			g.Input()
			next++
		}
		target := core.Discard
		if f == r.Frames-1 {
			target = dst
		}
		g.Frame(target)
	}

	for ; next < len(r.Inputs); next++ {
		g.Input()
	}
	return g
}
