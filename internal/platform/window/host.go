// Package window runs the game in a desktop window with Ebitengine.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/storage"
)

// Options configures a window session.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; required for recording
	Logger  *log.Logger    // Optional
	Scale   float64        // Initial window size relative to the playfield
}

// Host adapts a game to ebiten.Game. Frames run in Update at the configured
// tick rate onto an offscreen image that Draw scales to the window.
type Host struct {
	game     *game.Game
	frame    *ebiten.Image
	surface  *surface
	opts     Options
	logger   *log.Logger
	keys     []ebiten.Key
	touches  []ebiten.TouchID
	lastMode game.Mode
}

// NewHost creates a host for a new game.
func NewHost(opts Options) (*Host, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	g := game.New(opts.Game, opts.Runtime.Seed)
	if opts.Runtime.Record {
		g.SetRecorder(game.NewRecorder())
	}

	field := opts.Game.Playfield
	frame := ebiten.NewImage(int(field.Width), int(field.Height))
	surf, err := newSurface(frame)
	if err != nil {
		return nil, err
	}

	return &Host{
		game:     g,
		frame:    frame,
		surface:  surf,
		opts:     opts,
		logger:   logger,
		lastMode: g.Mode(),
	}, nil
}

// Update reads input and runs one frame.
func (h *Host) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if h.game.Mode() == game.ModeActive {
			h.saveRun()
		}
		return ebiten.Termination
	}

	for range h.justPressed() {
		h.game.Input()
	}

	h.game.Frame(h.surface)
	h.trackMode()
	return nil
}

// justPressed counts the keys, mouse buttons and touches pressed since the
// last update. Each one is a separate input.
func (h *Host) justPressed() int {
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	h.touches = inpututil.AppendJustPressedTouchIDs(h.touches[:0])
	return countPresses(len(h.keys), len(h.touches), inpututil.IsMouseButtonJustPressed)
}

// flapButtons are the mouse buttons that flap.
var flapButtons = []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle}

// countPresses adds the pressed flap buttons to the key and touch counts.
func countPresses(keys, touches int, pressed func(ebiten.MouseButton) bool) int {
	n := keys + touches
	for _, b := range flapButtons {
		if pressed(b) {
			n++
		}
	}
	return n
}

// Draw scales the last frame to the window.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.DrawImage(h.frame, nil)
}

// Layout keeps the logical screen at playfield size; ebiten scales it to the
// window.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.frame.Bounds().Dx(), h.frame.Bounds().Dy()
}

func (h *Host) trackMode() {
	mode := h.game.Mode()
	if mode == h.lastMode {
		return
	}
	h.logger.Debug("mode changed", "from", h.lastMode, "to", mode, "score", h.game.Score(), "frame", h.game.Frames())
	h.lastMode = mode
	if mode == game.ModeEnded {
		h.saveRun()
	}
}

// saveRun stores the session's replay if recording is enabled.
func (h *Host) saveRun() {
	if !h.opts.Runtime.Record || h.opts.Store == nil || h.game.Frames() == 0 {
		return
	}
	r := h.game.Replay()
	data, err := r.Encode()
	if err != nil {
		h.logger.Error("cannot encode replay", "error", err)
		return
	}
	id, err := h.opts.Store.SaveRun(storage.Run{Seed: r.Seed, Frames: r.Frames, Score: r.Score, Replay: data})
	if err != nil {
		h.logger.Error("cannot save run", "error", err)
		return
	}
	h.logger.Info("run saved", "id", id, "score", r.Score, "frames", r.Frames)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	h, err := NewHost(opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	field := opts.Game.Playfield
	ebiten.SetWindowSize(int(field.Width*scale), int(field.Height*scale))
	ebiten.SetWindowTitle(h.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	h.logger.Debug("window opened", "seed", h.game.Seed())
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
