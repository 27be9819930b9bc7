package tui

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// Glyphs used by the canvas
const (
	FillChar = '█'
	BirdChar = '●'
)

// textMidline is the fraction of the font size between the baseline and the
// vertical middle of a line of text.
const textMidline = 0.35

// Canvas rasterizes playfield drawing calls onto a character screen.
// Every playfield unit is scaled to the screen's current size, so the whole
// playfield is always visible regardless of terminal dimensions.
type Canvas struct {
	screen *core.Screen
	field  config.Playfield
}

// NewCanvas creates a canvas drawing the given playfield onto screen.
func NewCanvas(screen *core.Screen, field config.Playfield) *Canvas {
	return &Canvas{screen: screen, field: field}
}

// Screen returns the underlying screen buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// cells returns the screen cells covered by a playfield rectangle.
func (c *Canvas) cells(r core.Rect) (x0, y0, x1, y1 int) {
	return r.Cells(c.screen.Width(), c.screen.Height(), c.field.Width, c.field.Height)
}

// toScreen maps a playfield point to fractional screen coordinates.
func (c *Canvas) toScreen(x, y float64) (float64, float64) {
	return x * float64(c.screen.Width()) / c.field.Width, y * float64(c.screen.Height()) / c.field.Height
}

// toField maps fractional screen coordinates back to the playfield.
func (c *Canvas) toField(x, y float64) (float64, float64) {
	return x * c.field.Width / float64(c.screen.Width()), y * c.field.Height / float64(c.screen.Height())
}

// Clear blanks the screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect fills the covered cells. Translucent colors dim whatever is
// already drawn instead of covering it.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	x0, y0, x1, y1 := c.cells(core.NewRect(x, y, w, h))

	if core.IsTranslucent(clr) {
		c.screen.Recolor(x0, y0, x1, y1, core.ColorGray)
		return
	}
	c.screen.FillCells(x0, y0, x1, y1, FillChar, core.NearestColor(clr))
}

// FillCircle marks every cell whose center lies inside the circle. Circles
// smaller than a cell still occupy the cell containing their center.
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	col := core.NearestColor(clr)
	x0, y0, x1, y1 := c.cells(core.NewRect(cx-r, cy-r, 2*r, 2*r))

	drawn := false
	for row := y0; row < y1; row++ {
		for x := x0; x < x1; x++ {
			px, py := c.toField(float64(x)+0.5, float64(row)+0.5)
			dx, dy := px-cx, py-cy
			if dx*dx+dy*dy <= r*r {
				c.screen.SetCell(x, row, BirdChar, col)
				drawn = true
			}
		}
	}

	if !drawn {
		sx, sy := c.toScreen(cx, cy)
		c.screen.SetCell(int(math.Floor(sx)), int(math.Floor(sy)), BirdChar, col)
	}
}

// FillRoundedRect blanks the covered cells and outlines them with a
// rounded box.
func (c *Canvas) FillRoundedRect(x, y, w, h, _ float64, clr color.Color) {
	x0, y0, x1, y1 := c.cells(core.NewRect(x, y, w, h))

	c.screen.FillCells(x0, y0, x1, y1, ' ', core.ColorDefault)
	c.screen.DrawBox(x0, y0, x1, y1, core.NearestColor(clr))
}

// FillText writes s on the row containing the middle of the text.
func (c *Canvas) FillText(s string, x, y float64, style core.TextStyle) {
	sx, sy := c.toScreen(x, y-style.Size*textMidline)
	col, row := int(math.Floor(sx)), int(math.Floor(sy))

	n := utf8.RuneCountInString(s)
	switch style.Align {
	case core.AlignCenter:
		col -= n / 2
	case core.AlignRight:
		col -= n
	}

	c.screen.DrawText(col, row, s, core.NearestColor(style.Color))
}
