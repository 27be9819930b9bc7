package game

import (
	"image/color"
	"strconv"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// Colors
var (
	overlayColor  = color.NRGBA{A: 89} // Black at 35%
	panelColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	textColor     = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	gameOverColor = color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}
	scoreColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	pipeColor     = color.NRGBA{G: 0x80, A: 0xff}
	birdColor     = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
)

// Panel geometry
const (
	PanelWidth  = 420
	PanelHeight = 200
	PanelRadius = 16
)

// Texts
const (
	StartTitle    = "Flappy Bird"
	StartHint     = "Tap or press any key to start"
	GameOverTitle = "Game Over"
	GameOverHint  = "Press any key to play again"
)

// PanelRect returns the centered message panel.
func PanelRect(field config.Playfield) core.Rect {
	return core.NewRect((field.Width-PanelWidth)/2, (field.Height-PanelHeight)/2, PanelWidth, PanelHeight)
}

func drawPanel(dst core.Surface, field config.Playfield) {
	dst.FillRect(0, 0, field.Width, field.Height, overlayColor)
	p := PanelRect(field)
	dst.FillRoundedRect(p.X, p.Y, p.W, p.H, PanelRadius, panelColor)
}

func drawStartScreen(dst core.Surface, cfg config.FlappyConfig) {
	f := cfg.Playfield
	drawPanel(dst, f)

	dst.FillText(StartTitle, f.Width/2, f.Height/2-30, core.TextStyle{Size: 36, Align: core.AlignCenter, Color: textColor})
	dst.FillText(StartHint, f.Width/2, f.Height/2+20, core.TextStyle{Size: 18, Align: core.AlignCenter, Color: textColor})
}

func drawGameOverScreen(dst core.Surface, score int, cfg config.FlappyConfig) {
	f := cfg.Playfield
	drawPanel(dst, f)

	dst.FillText(GameOverTitle, f.Width/2, f.Height/2-40, core.TextStyle{Size: 36, Align: core.AlignCenter, Color: gameOverColor})
	dst.FillText("Score: "+strconv.Itoa(score), f.Width/2, f.Height/2, core.TextStyle{Size: 20, Align: core.AlignCenter, Color: textColor})
	dst.FillText(GameOverHint, f.Width/2, f.Height/2+40, core.TextStyle{Size: 16, Align: core.AlignCenter, Color: textColor})
}

func drawPipes(dst core.Surface, s *State, cfg config.FlappyConfig) {
	w, h := cfg.Pipes.Width, cfg.Playfield.Height
	for _, p := range s.Pipes.Slice() {
		dst.FillRect(p.X, 0, w, p.TopHeight, pipeColor)
		dst.FillRect(p.X, p.BottomY, w, h-p.BottomY, pipeColor)
	}
}

func drawScore(dst core.Surface, score int, cfg config.FlappyConfig) {
	dst.FillText(strconv.Itoa(score), cfg.Playfield.Width/2, 40, core.TextStyle{Size: 22, Align: core.AlignCenter, Color: scoreColor})
}

func drawBird(dst core.Surface, b Bird) {
	dst.FillCircle(b.X, b.Y, b.Radius, birdColor)
}
