package core

import "image/color"

// Align controls horizontal text placement relative to the anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how FillText renders a string.
type TextStyle struct {
	Size  float64 // Font size in playfield pixels
	Align Align
	Color color.Color
}

// Surface is the drawing target a frame is composed onto.
// Coordinates are playfield units (origin top-left, Y down); implementations
// scale them to whatever they actually paint on. Text y is the baseline.
type Surface interface {
	// Clear erases the whole surface.
	Clear()

	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.Color)

	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, c color.Color)

	// FillRoundedRect fills a rectangle whose corners have radius r.
	FillRoundedRect(x, y, w, h, r float64, c color.Color)

	// FillText draws a single line of text.
	FillText(s string, x, y float64, style TextStyle)
}

// Discard is a Surface that ignores every call.
// Headless simulation and replays draw into it.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear()                                               {}
func (discard) FillRect(_, _, _, _ float64, _ color.Color)           {}
func (discard) FillCircle(_, _, _ float64, _ color.Color)            {}
func (discard) FillRoundedRect(_, _, _, _, _ float64, _ color.Color) {}
func (discard) FillText(_ string, _, _ float64, _ TextStyle)         {}
