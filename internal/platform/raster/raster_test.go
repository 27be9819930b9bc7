package raster

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/game"
)

func newTestSurface(t *testing.T, scale float64) *Surface {
	t.Helper()
	s, err := New(config.DefaultFlappyConfig().Playfield, scale)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// near reports whether got is within tol of want on every channel.
func near(got color.Color, want color.NRGBA, tol int) bool {
	g := color.NRGBAModel.Convert(got).(color.NRGBA)
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			return -d
		}
		return d
	}
	return diff(g.R, want.R) <= tol && diff(g.G, want.G) <= tol && diff(g.B, want.B) <= tol
}

func TestNewRejectsBadScale(t *testing.T) {
	if _, err := New(config.DefaultFlappyConfig().Playfield, 0); err == nil {
		t.Error("New() with zero scale should fail")
	}
}

func TestImageSize(t *testing.T) {
	s := newTestSurface(t, 0.5)
	b := s.Image().Bounds()
	if b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("image = %dx%d, expected 400x300", b.Dx(), b.Dy())
	}
}

func TestClearPaintsSky(t *testing.T) {
	s := newTestSurface(t, 1)
	s.FillRect(0, 0, 800, 600, color.NRGBA{R: 0xff, A: 0xff})
	s.Clear()

	if px := s.Image().At(10, 10); !near(px, SkyColor, 2) {
		t.Errorf("pixel after Clear = %v, expected sky %v", px, SkyColor)
	}
}

func TestStartScreen(t *testing.T) {
	s := newTestSurface(t, 1)
	g := game.New(config.DefaultFlappyConfig(), 1)
	g.Frame(s)

	if err := s.Err(); err != nil {
		t.Fatalf("drawing failed: %v", err)
	}

	img := s.Image()
	if px := img.At(80, 300); !near(px, color.NRGBA{R: 0xff, G: 0xff}, 4) {
		t.Errorf("bird pixel = %v, expected yellow", px)
	}
	if px := img.At(300, 385); !near(px, color.NRGBA{R: 0xff, G: 0xff, B: 0xff}, 4) {
		t.Errorf("panel pixel = %v, expected white", px)
	}

	// The overlay dims the sky
	dimmed := color.NRGBAModel.Convert(img.At(10, 10)).(color.NRGBA)
	if dimmed.B >= SkyColor.B || dimmed.B < SkyColor.B/2 {
		t.Errorf("overlay pixel = %v, expected sky dimmed by about a third", dimmed)
	}
}

func TestActiveFrameDrawsPipes(t *testing.T) {
	s := newTestSurface(t, 1)
	g := game.New(config.DefaultFlappyConfig(), 5)
	g.Input()
	for range 30 {
		g.Frame(s)
	}

	pipes := g.Pipes()
	if len(pipes) == 0 {
		t.Fatal("expected a pipe after 30 frames")
	}
	p := pipes[0]
	x := int(p.X) + 30
	if px := s.Image().At(x, int(p.TopHeight)/2); !near(px, color.NRGBA{G: 0x80}, 4) {
		t.Errorf("top pipe pixel = %v, expected green", px)
	}
	if px := s.Image().At(x, int(p.TopHeight+p.BottomY)/2); !near(px, SkyColor, 4) {
		t.Errorf("gap pixel = %v, expected sky", px)
	}
}

func TestSaveAndEncodePNG(t *testing.T) {
	s := newTestSurface(t, 0.25)
	game.New(config.DefaultFlappyConfig(), 1).Frame(s)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("EncodePNG() should write a PNG")
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("SavePNG() did not write %s: %v", path, err)
	}
}
