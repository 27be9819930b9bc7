package game

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// playRecorded runs a session flapping every period frames.
func playRecorded(frames, period int) *Game {
	g := New(config.DefaultFlappyConfig(), 99)
	g.SetRecorder(NewRecorder())
	for i := range frames {
		if i%period == 0 {
			g.Input()
		}
		g.Frame(core.Discard)
	}
	return g
}

func TestRecorderCapturesFrameIndices(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), 1)
	rec := NewRecorder()
	g.SetRecorder(rec)

	g.Input()
	g.Frame(core.Discard)
	g.Frame(core.Discard)
	g.Input()
	g.Input()

	expected := []int{0, 2, 2}
	if got := rec.Inputs(); !slices.Equal(got, expected) {
		t.Errorf("Inputs() = %v, expected %v", got, expected)
	}

	rec.Reset()
	if len(rec.Inputs()) != 0 {
		t.Error("Reset() should forget recorded inputs")
	}
}

func TestSimulateReproducesSession(t *testing.T) {
	g := playRecorded(900, 17)
	r := g.Replay()

	if r.Frames != 900 || r.Seed != 99 || r.Score != g.Score() {
		t.Fatalf("Replay() header = %+v", r)
	}

	got := Simulate(r, core.Discard)

	if got.Score() != g.Score() {
		t.Errorf("Score() = %d, expected %d", got.Score(), g.Score())
	}
	if got.Bird() != g.Bird() {
		t.Errorf("Bird() = %+v, expected %+v", got.Bird(), g.Bird())
	}
	if !slices.Equal(got.Pipes(), g.Pipes()) {
		t.Error("Pipes() differ after simulation")
	}
	if got.Mode() != g.Mode() {
		t.Errorf("Mode() = %v, expected %v", got.Mode(), g.Mode())
	}
}

func TestSimulateDrawsOnlyLastFrame(t *testing.T) {
	r := playRecorded(50, 10).Replay()
	spy := &spySurface{}
	Simulate(r, spy)

	clears := 0
	for _, c := range spy.calls {
		if c == "Clear" {
			clears++
		}
	}
	if clears != 1 {
		t.Errorf("Clear called %d times, expected 1", clears)
	}
}

func TestSimulateTrailingInputs(t *testing.T) {
	r := Replay{
		Version: ReplayVersion,
		Seed:    1,
		Frames:  0,
		Inputs:  []int{0},
		Config:  config.DefaultFlappyConfig(),
	}
	g := Simulate(r, core.Discard)
	if g.Mode() != ModeActive {
		t.Errorf("trailing input should be applied, Mode() = %v", g.Mode())
	}
}

func TestReplayEncodeDecode(t *testing.T) {
	r := playRecorded(120, 30).Replay()

	data, err := r.Encode()
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if !strings.Contains(string(data), "inputs: [0, 30, 60, 90]") {
		t.Errorf("inputs should be encoded in flow style, got:\n%s", data)
	}

	back, err := DecodeReplay(data)
	if err != nil {
		t.Fatalf("DecodeReplay() failed: %v", err)
	}
	if back.Seed != r.Seed || back.Frames != r.Frames || back.Config != r.Config {
		t.Errorf("DecodeReplay() = %+v, expected %+v", back, r)
	}
	if !slices.Equal(back.Inputs, r.Inputs) {
		t.Errorf("Inputs = %v, expected %v", back.Inputs, r.Inputs)
	}
}

func TestDecodeReplayErrors(t *testing.T) {
	valid := playRecorded(10, 5).Replay()

	tests := []struct {
		name   string
		modify func(*Replay)
	}{
		{"wrong version", func(r *Replay) { r.Version = 2 }},
		{"negative frames", func(r *Replay) { r.Frames = -1 }},
		{"unsorted inputs", func(r *Replay) { r.Inputs = []int{5, 1} }},
		{"negative input", func(r *Replay) { r.Inputs = []int{-1, 3} }},
		{"invalid config", func(r *Replay) { r.Config.Pipes.Gap = 1000 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			r.Inputs = slices.Clone(valid.Inputs)
			tc.modify(&r)
			data, err := r.Encode()
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			if _, err := DecodeReplay(data); !errors.Is(err, ErrBadReplay) {
				t.Errorf("DecodeReplay() error = %v, expected ErrBadReplay", err)
			}
		})
	}

	if _, err := DecodeReplay([]byte("version: [")); !errors.Is(err, ErrBadReplay) {
		t.Errorf("malformed YAML error = %v, expected ErrBadReplay", err)
	}
}
