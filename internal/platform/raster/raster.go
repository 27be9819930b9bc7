// Package raster renders frames into an in-memory image with gogpu/gg, for
// PNG snapshots of live games and replays.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
)

// SkyColor is the background every frame starts from.
var SkyColor = color.NRGBA{R: 0x70, G: 0xc5, B: 0xce, A: 0xff}

// Surface is a core.Surface backed by a gg software context.
// Drawing errors are sticky: the first one is kept and reported by Err,
// SavePNG and EncodePNG.
type Surface struct {
	ctx   *gg.Context
	scale float64
	font  *text.FontSource
	faces map[float64]text.Face
	err   error
}

// New creates a surface for field rendered at scale pixels per playfield unit.
func New(field config.Playfield, scale float64) (*Surface, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("raster: scale must be positive, got %v", scale)
	}
	w, h := int(field.Width*scale), int(field.Height*scale)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: empty image %dx%d", w, h)
	}

	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: cannot load font: %w", err)
	}

	s := &Surface{
		ctx:   gg.NewContext(w, h),
		scale: scale,
		font:  src,
		faces: make(map[float64]text.Face),
	}
	s.Clear()
	return s, nil
}

func (s *Surface) fill() {
	if err := s.ctx.Fill(); err != nil && s.err == nil {
		s.err = err
	}
}

// Clear paints the sky.
func (s *Surface) Clear() {
	s.ctx.ClearWithColor(gg.FromColor(SkyColor))
}

// FillRect fills an axis-aligned rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	k := s.scale
	s.ctx.SetColor(c)
	s.ctx.DrawRectangle(x*k, y*k, w*k, h*k)
	s.fill()
}

// FillCircle fills a circle.
func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	k := s.scale
	s.ctx.SetColor(c)
	s.ctx.DrawCircle(cx*k, cy*k, r*k)
	s.fill()
}

// FillRoundedRect fills a rectangle with rounded corners.
func (s *Surface) FillRoundedRect(x, y, w, h, r float64, c color.Color) {
	k := s.scale
	s.ctx.SetColor(c)
	s.ctx.DrawRoundedRectangle(x*k, y*k, w*k, h*k, r*k)
	s.fill()
}

// FillText draws a line of text with its baseline at y.
func (s *Surface) FillText(str string, x, y float64, style core.TextStyle) {
	k := s.scale
	s.ctx.SetFont(s.face(style.Size * k))
	s.ctx.SetColor(style.Color)

	var ax float64
	switch style.Align {
	case core.AlignCenter:
		ax = 0.5
	case core.AlignRight:
		ax = 1
	}
	s.ctx.DrawStringAnchored(str, x*k, y*k, ax, 0)
}

// face returns a cached face of the given pixel size.
func (s *Surface) face(size float64) text.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := s.font.Face(size)
	s.faces[size] = f
	return f
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

// Err returns the first drawing error, if any.
func (s *Surface) Err() error {
	return s.err
}

// SavePNG writes the image to path.
func (s *Surface) SavePNG(path string) error {
	if s.err != nil {
		return fmt.Errorf("raster: drawing failed: %w", s.err)
	}
	if err := s.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("raster: cannot save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the image to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return fmt.Errorf("raster: drawing failed: %w", s.err)
	}
	if err := s.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: cannot encode png: %w", err)
	}
	return nil
}

// Close releases the context and font.
func (s *Surface) Close() error {
	return errors.Join(s.ctx.Close(), s.font.Close())
}
