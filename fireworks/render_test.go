package fireworks

import (
	"reflect"
	"testing"

	"github.com/automoto/fireworks/config"
)

func TestRenderOrder(t *testing.T) {
	ctx := newTestContext(61)
	ctx.Stars.Add(10, 10, Red, 0, 1, 100, 0, 0)
	ctx.Stars.Add(20, 10, Red, 0, 1, 100, 0, 0)
	ctx.Stars.Add(30, 10, Blue, 0, 1, 100, 0, 0)
	ctx.Stars.Add(40, 10, Invisible, 0, 1, 100, 0, 0)
	ctx.Sparks.Add(10, 10, Gold, 0, 1, 100)
	ctx.Flashes.Add(10, 10, 50)

	trails, main := &recordingSurface{}, &recordingSurface{}
	ctx.Render(trails, main, 2, 1)

	wantTrails := []string{"scale", "fade", "composite", "flash", "composite", "stroke", "stroke", "stroke", "reset"}
	if got := trails.ops(); !reflect.DeepEqual(got, wantTrails) {
		t.Errorf("Expected trails calls %v, got %v", wantTrails, got)
	}
	wantMain := []string{"scale", "clear", "composite", "stroke", "reset"}
	if got := main.ops(); !reflect.DeepEqual(got, wantMain) {
		t.Errorf("Expected main calls %v, got %v", wantMain, got)
	}

	if trails.calls[1].alpha != config.Render.TrailFade {
		t.Errorf("Expected fade %v, got %v", config.Render.TrailFade, trails.calls[1].alpha)
	}
	if trails.calls[2].mode != CompositeSourceOver || trails.calls[4].mode != CompositeLighten {
		t.Errorf("Expected flashes source-over then strokes lighten")
	}

	red := trails.calls[5]
	if red.segs != 2 || red.stroke.Color != Red.RGBA() || red.stroke.Width != config.Render.StarDrawWidth || red.stroke.Cap != CapRound {
		t.Errorf("Expected one red batch of two stars, got %+v", red)
	}
	spark := trails.calls[7]
	if spark.segs != 1 || spark.stroke.Cap != CapSquare || spark.stroke.Width != config.Render.SparkDrawWidth {
		t.Errorf("Expected a thin square-capped spark batch, got %+v", spark)
	}

	heads := main.calls[3]
	if heads.segs != 3 || heads.stroke.Color != config.Render.HeadColor {
		t.Errorf("Expected white heads for the three visible stars, got %+v", heads)
	}

	if len(ctx.Flashes.Active) != 0 {
		t.Errorf("Expected flashes to last a single pass")
	}
	if main.scale != 1 || trails.scale != 1 {
		t.Errorf("Expected transforms to be reset")
	}
}

func TestRenderSkipsHiddenStrobeStars(t *testing.T) {
	ctx := newTestContext(62)
	st := ctx.Stars.Add(10, 10, Green, 0, 1, 100, 0, 0)
	st.Visible = false

	trails, main := &recordingSurface{}, &recordingSurface{}
	ctx.Render(trails, main, 1, 1)
	for _, c := range append(trails.calls, main.calls...) {
		if c.op == "stroke" {
			t.Fatalf("Expected nothing stroked for a hidden star, got %+v", c)
		}
	}
}

func TestRenderLowQualityUsesSquareCaps(t *testing.T) {
	ctx := newTestContext(63)
	ctx.Options.Quality = config.QualityLow
	ctx.Stars.Add(10, 10, Purple, 0, 1, 100, 0, 0)

	trails, main := &recordingSurface{}, &recordingSurface{}
	ctx.Render(trails, main, 1, 1)
	for _, c := range trails.calls {
		if c.op == "stroke" && c.stroke.Cap != CapSquare {
			t.Errorf("Expected square caps at low quality, got %v", c.stroke.Cap)
		}
	}
}

func TestRenderWithoutSurfaces(t *testing.T) {
	ctx := newTestContext(64)
	ctx.Flashes.Add(1, 1, 10)
	ctx.Render(nil, nil, 1, 1)
	if len(ctx.Flashes.Active) != 0 {
		t.Errorf("Expected flashes to be dropped without surfaces")
	}
}

func TestFlashColorAt(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		a    uint8
	}{
		{"Core", 0, 255},
		{"First stop", 0.024, 255},
		{"Second stop", 0.125, 51},
		{"Third stop", 0.32, 28},
		{"Edge", 1, 0},
		{"Outside", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlashColorAt(tt.t); got.A != tt.a {
				t.Errorf("Expected alpha %d, got %d", tt.a, got.A)
			}
		})
	}

	mid := FlashColorAt(0.66)
	if mid.A == 0 || mid.A >= 28 {
		t.Errorf("Expected alpha between the outer stops, got %d", mid.A)
	}
}

func TestSkyFollowsStars(t *testing.T) {
	ctx := newTestContext(65)
	for i := 0; i < 500; i++ {
		ctx.Stars.Add(0, 0, Red, 0, 0, 1000, 0, 0)
	}
	for i := 0; i < 200; i++ {
		ctx.Sky.update(ctx, 1)
	}
	c := ctx.Sky.Color()
	peak := float64(ctx.Options.SkyLighting) * config.Sky.SaturationPerLevel
	if float64(c.R) < peak-1 || c.G != 0 {
		t.Errorf("Expected a red sky near %v, got %+v", peak, c)
	}

	ctx.Options.SkyLighting = 0
	for i := 0; i < 200; i++ {
		ctx.Sky.update(ctx, 1)
	}
	if c := ctx.Sky.Color(); c.R != 0 {
		t.Errorf("Expected sky lighting off to fade to black, got %+v", c)
	}
}
