package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
	"github.com/vovakirdan/flapper/internal/storage"
)

// Options configures a terminal play session.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; required for recording
	Logger  *log.Logger    // Optional
	Replay  *game.Replay   // Watch this replay instead of playing
	Width   int            // Initial terminal size, updated by resize messages
	Height  int
}

// Model is the Bubble Tea model for a play or replay session.
type Model struct {
	game     *game.Game
	canvas   *Canvas
	keys     KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	recorder *game.Recorder
	playback *playback
	lastMode game.Mode
	status   string
	quitting bool
}

// playback feeds recorded inputs back into a game.
type playback struct {
	replay game.Replay
	next   int
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var (
		g  *game.Game
		pb *playback
	)
	if opts.Replay != nil {
		g = game.New(opts.Replay.Config, opts.Replay.Seed)
		pb = &playback{replay: *opts.Replay}
	} else {
		// Use time-based seed if not specified
		if opts.Runtime.Seed == 0 {
			opts.Runtime.Seed = time.Now().UnixNano()
		}
		g = game.New(opts.Game, opts.Runtime.Seed)
	}

	var rec *game.Recorder
	if opts.Runtime.Record && pb == nil {
		rec = game.NewRecorder()
		g.SetRecorder(rec)
	}

	screen := core.NewScreen(opts.Width, max(opts.Height-1, 0))
	h := help.New()
	h.Width = opts.Width

	return Model{
		game:     g,
		canvas:   NewCanvas(screen, g.Config().Playfield),
		keys:     DefaultKeyMap(),
		help:     h,
		opts:     opts,
		logger:   logger,
		recorder: rec,
		playback: pb,
		lastMode: g.Mode(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "seed", m.game.Seed(), "replay", m.playback != nil)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(MapMouse(msg))

	case tea.WindowSizeMsg:
		// Keep the last line for the help bar
		m.canvas.Screen().Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		// Ended runs were stored when they ended
		if m.game.Mode() == game.ModeActive {
			m.saveRun()
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.status = "saved " + filepath.Base(path)
		}

	case core.ActionFlap:
		// Replays ignore the viewer's input
		if m.playback == nil {
			m.game.Input()
		}
	}
	return m, nil
}

// handleTick runs one frame and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if pb := m.playback; pb != nil {
		if m.game.Frames() >= pb.replay.Frames {
			// Keep showing the last frame
			m.status = fmt.Sprintf("replay finished, score %d", m.game.Score())
			return m, nil
		}
		for pb.next < len(pb.replay.Inputs) && pb.replay.Inputs[pb.next] <= m.game.Frames() {
			m.game.Input()
			pb.next++
		}
	}

	m.game.Frame(m.canvas)
	m.trackMode()

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// trackMode logs mode transitions and stores runs that just ended.
func (m *Model) trackMode() {
	mode := m.game.Mode()
	if mode == m.lastMode {
		return
	}
	m.logger.Debug("mode changed", "from", m.lastMode, "to", mode, "score", m.game.Score(), "frame", m.game.Frames())
	m.lastMode = mode

	if mode == game.ModeEnded {
		m.status = ""
		m.saveRun()
	}
}

// saveRun stores the session's replay if recording is enabled.
func (m *Model) saveRun() {
	if m.recorder == nil || m.opts.Store == nil || m.game.Frames() == 0 {
		return
	}

	r := m.game.Replay()
	data, err := r.Encode()
	if err != nil {
		m.logger.Error("cannot encode replay", "error", err)
		return
	}

	id, err := m.opts.Store.SaveRun(storage.Run{
		Seed:   r.Seed,
		Frames: r.Frames,
		Score:  r.Score,
		Replay: data,
	})
	if err != nil {
		m.logger.Error("cannot save run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "score", r.Score, "frames", r.Frames)
	m.status = fmt.Sprintf("run #%d saved", id)
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".flapper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// View renders the current frame and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	bar := helpStyle.Render(m.help.View(m.keys))
	if m.playback != nil {
		bar = helpStyle.Render("replay  q/esc quit")
	}
	if m.status != "" {
		bar += "  " + statusStyle.Render(m.status)
	}
	return RenderScreen(m.canvas.Screen()) + "\n" + bar
}

// Game returns the running game.
func (m Model) Game() *game.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	_, err := p.Run()
	return err
}
