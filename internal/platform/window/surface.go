package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/flapper/internal/core"
)

// skyColor is the background every frame starts from.
var skyColor = color.NRGBA{R: 0x70, G: 0xc5, B: 0xce, A: 0xff}

// surface draws frames onto an ebiten image in playfield coordinates.
type surface struct {
	dst   *ebiten.Image
	font  *opentype.Font
	faces map[float64]font.Face
}

func newSurface(dst *ebiten.Image) (*surface, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("window: cannot parse font: %w", err)
	}
	return &surface{
		dst:   dst,
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

func (s *surface) Clear() {
	s.dst.Fill(skyColor)
}

func (s *surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

// FillRoundedRect fills the parts from roundedRect. c must be opaque,
// overlapping parts would blend twice otherwise.
func (s *surface) FillRoundedRect(x, y, w, h, r float64, c color.Color) {
	bars, corners, r := roundedRect(x, y, w, h, r)
	for _, b := range bars {
		s.FillRect(b.X, b.Y, b.W, b.H, c)
	}
	for _, p := range corners {
		s.FillCircle(p[0], p[1], r, c)
	}
}

// roundedRect splits a rounded rectangle into a cross of two bars and the
// centers of its four corner circles. The radius is clamped to half the
// shorter side and returned.
func roundedRect(x, y, w, h, r float64) (bars [2]core.Rect, corners [4][2]float64, radius float64) {
	r = max(min(r, w/2, h/2), 0)
	bars = [2]core.Rect{
		core.NewRect(x+r, y, w-2*r, h),
		core.NewRect(x, y+r, w, h-2*r),
	}
	corners = [4][2]float64{
		{x + r, y + r},
		{x + w - r, y + r},
		{x + r, y + h - r},
		{x + w - r, y + h - r},
	}
	return bars, corners, r
}

func (s *surface) FillText(str string, x, y float64, style core.TextStyle) {
	face, err := s.face(style.Size)
	if err != nil {
		return
	}

	switch style.Align {
	case core.AlignCenter:
		x -= float64(font.MeasureString(face, str).Round()) / 2
	case core.AlignRight:
		x -= float64(font.MeasureString(face, str).Round())
	}
	text.Draw(s.dst, str, face, int(x), int(y), style.Color)
}

// face returns a cached face of the given pixel size.
func (s *surface) face(size float64) (font.Face, error) {
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	s.faces[size] = f
	return f, nil
}
