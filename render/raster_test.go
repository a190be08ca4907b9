package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fireworks"
)

func alphaAt(s *RasterSurface, x, y int) uint8 {
	return s.img.RGBAAt(x, y).A
}

func TestTrailFadeConverges(t *testing.T) {
	s := NewRasterSurface(4, 4)
	s.img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	prev := alphaAt(s, 1, 1)
	frames := 0
	for alphaAt(s, 1, 1) > 2 {
		s.Fade(config.Render.TrailFade)
		frames++
		a := alphaAt(s, 1, 1)
		if a > prev {
			t.Fatalf("Expected alpha to never grow, went %d -> %d", prev, a)
		}
		prev = a
		if frames > 100 {
			t.Fatalf("Expected trail to fade, still at %d", a)
		}
	}
	if frames > 45 {
		t.Errorf("Expected below 1%% opacity within 45 frames, took %d", frames)
	}
	for i := 0; i < 40; i++ {
		s.Fade(config.Render.TrailFade)
	}
	if a := alphaAt(s, 1, 1); a != 0 {
		t.Errorf("Expected the pixel to reach zero, got %d", a)
	}
}

func TestStrokeCoverage(t *testing.T) {
	red := fireworks.Red.RGBA()
	tests := []struct {
		name    string
		lineCap fireworks.LineCap
		x, y    int
		covered bool
	}{
		{"Centre", fireworks.CapButt, 20, 10, true},
		{"Row above", fireworks.CapButt, 20, 9, true},
		{"Outside width", fireworks.CapButt, 20, 12, false},
		{"Butt end", fireworks.CapButt, 8, 10, false},
		{"Square end", fireworks.CapSquare, 9, 10, true},
		{"Round end", fireworks.CapRound, 8, 10, true},
		{"Far away", fireworks.CapRound, 40, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRasterSurface(64, 64)
			s.StrokeSegments([]fireworks.Segment{{X0: 10, Y0: 10, X1: 30, Y1: 10}}, fireworks.Stroke{Color: red, Width: 3, Cap: tt.lineCap})
			got := alphaAt(s, tt.x, tt.y) > 0
			if got != tt.covered {
				t.Errorf("Expected covered=%v at (%d,%d), got alpha %d", tt.covered, tt.x, tt.y, alphaAt(s, tt.x, tt.y))
			}
		})
	}

	s := NewRasterSurface(64, 64)
	s.StrokeSegments([]fireworks.Segment{{X0: 10, Y0: 10, X1: 30, Y1: 10}}, fireworks.Stroke{Color: red, Width: 3})
	if got := s.img.RGBAAt(20, 10); got != red {
		t.Errorf("Expected solid %v at the centre, got %v", red, got)
	}
}

func TestStrokeScale(t *testing.T) {
	s := NewRasterSurface(64, 64)
	s.SetScale(2)
	s.StrokeSegments([]fireworks.Segment{{X0: 5, Y0: 5, X1: 15, Y1: 5}}, fireworks.Stroke{Color: fireworks.White.RGBA(), Width: 1})
	if alphaAt(s, 20, 10) == 0 {
		t.Errorf("Expected scaled segment at (20,10)")
	}
	if alphaAt(s, 8, 5) != 0 {
		t.Errorf("Expected nothing at unscaled coordinates")
	}
	s.ResetTransform()
	if s.scale != 1 {
		t.Errorf("Expected transform reset")
	}
}

func TestCompositeModes(t *testing.T) {
	seg := []fireworks.Segment{{X0: 2, Y0: 5, X1: 12, Y1: 5}}
	red, blue := fireworks.Red.RGBA(), fireworks.Blue.RGBA()

	tests := []struct {
		name string
		mode fireworks.Composite
		want color.RGBA
	}{
		{"Source over", fireworks.CompositeSourceOver, blue},
		{"Lighten", fireworks.CompositeLighten, color.RGBA{
			R: max(red.R, blue.R),
			G: max(red.G, blue.G),
			B: max(red.B, blue.B),
			A: 255,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRasterSurface(16, 16)
			s.SetComposite(tt.mode)
			s.StrokeSegments(seg, fireworks.Stroke{Color: red, Width: 4})
			s.StrokeSegments(seg, fireworks.Stroke{Color: blue, Width: 4})
			if got := s.img.RGBAAt(7, 5); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBurstFlash(t *testing.T) {
	s := NewRasterSurface(100, 100)
	s.FillBurstFlash(50, 50, 40)

	if got := s.img.RGBAAt(50, 50); got.A != 255 || got.R != 255 || got.G != 255 {
		t.Errorf("Expected a white core, got %v", got)
	}
	mid := s.img.RGBAAt(62, 50)
	if mid.A == 0 || mid.A == 255 {
		t.Errorf("Expected a translucent halo, got %v", mid)
	}
	if got := s.img.RGBAAt(50, 95); got.A != 0 {
		t.Errorf("Expected nothing outside the radius, got %v", got)
	}
}

func TestClear(t *testing.T) {
	s := NewRasterSurface(8, 8)
	s.FillBurstFlash(4, 4, 4)
	s.Clear()
	for _, v := range s.img.Pix {
		if v != 0 {
			t.Fatalf("Expected a cleared surface")
		}
	}
}

func TestComposite(t *testing.T) {
	trails, main := NewRasterSurface(4, 1), NewRasterSurface(4, 1)
	trails.img.SetRGBA(1, 0, color.RGBA{R: 200, A: 200})
	main.img.SetRGBA(2, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	dst := image.NewRGBA(image.Rect(0, 0, 4, 1))
	sky := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	Composite(dst, sky, trails, main)

	if got := dst.RGBAAt(0, 0); got != sky {
		t.Errorf("Expected sky, got %v", got)
	}
	if got := dst.RGBAAt(1, 0); got.R != 200 || got.G != 20 || got.A != 255 {
		t.Errorf("Expected trails lightened over sky, got %v", got)
	}
	if got := dst.RGBAAt(2, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Expected main on top, got %v", got)
	}
}

func TestStageRendersOntoRasterSurfaces(t *testing.T) {
	trails, main := NewRasterSurface(320, 180), NewRasterSurface(320, 180)
	opts := config.DefaultOptions()
	opts.ShellSize = 0
	stage := fireworks.NewStage(fireworks.StageOptions{
		Options: opts,
		Trails:  trails,
		Main:    main,
		Width:   320,
		Height:  180,
		Seed:    7,
	})
	for i := 0; i < 90; i++ {
		stage.Tick(1000.0 / 60)
	}

	lit := 0
	for i := 3; i < len(trails.img.Pix); i += 4 {
		if trails.img.Pix[i] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Errorf("Expected trails to hold drawn particles")
	}
}
