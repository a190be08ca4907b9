package fireworks

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/fireworks/config"
)

func TestBuildKinds(t *testing.T) {
	tests := []struct {
		shellType config.ShellType
		want      ShellKind
	}{
		{config.ShellChrysanthemum, KindChrysanthemum},
		{config.ShellPalm, KindPalm},
		{config.ShellRing, KindRing},
		{config.ShellCrossette, KindCrossette},
		{config.ShellCrackle, KindCrackle},
		{config.ShellFloral, KindFloral},
		{config.ShellFallingLeaves, KindFallingLeaves},
		{config.ShellHorsetail, KindHorsetail},
		{config.ShellStrobe, KindStrobe},
	}

	r := rand.New(rand.NewPCG(3, 4))
	for _, tt := range tests {
		t.Run(string(tt.shellType), func(t *testing.T) {
			for i := 0; i < 50; i++ {
				s := Build(r, tt.shellType, 2)
				if s.Kind != tt.want {
					t.Fatalf("Expected kind %v, got %v", tt.want, s.Kind)
				}
				if s.StarCount < 6 {
					t.Errorf("Expected at least 6 stars, got %v", s.StarCount)
				}
				if s.StarLifeVariation <= 0 || s.GlitterColor == NoColor || s.Color == NoColor {
					t.Errorf("Expected defaults to be filled, got %+v", s)
				}
				if s.Pistil && !s.PistilColor.Visible() {
					t.Errorf("Expected a visible pistil colour, got %v", s.PistilColor)
				}
			}
		})
	}
}

func TestRandomShellIsUniform(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	counts := map[ShellKind]int{}
	const n = 6000
	for i := 0; i < n; i++ {
		counts[RandomShell(r, 2).Kind]++
	}
	if len(counts) != 3 {
		t.Fatalf("Expected only the three core archetypes, got %v", counts)
	}
	for kind, c := range counts {
		share := float64(c) / n
		if share < 0.30 || share > 0.37 {
			t.Errorf("Expected %v near one third, got %.3f", kind, share)
		}
	}
}

func TestShellSizeScaling(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	for size := 0; size <= config.MaxShellSize; size++ {
		c := Chrysanthemum(r, size)
		if c.SpreadSize != 300+float64(size)*100 || c.StarLife != 900+float64(size)*200 {
			t.Errorf("size %d: unexpected chrysanthemum spread %v life %v", size, c.SpreadSize, c.StarLife)
		}
		ring := Ring(r, size)
		if want := 2.2 * 2 * math.Pi * float64(size+1); math.Abs(ring.StarCount-want) > 1e-9 {
			t.Errorf("size %d: expected ring star count %v, got %v", size, want, ring.StarCount)
		}
		palm := Palm(r, size)
		if palm.StarDensity != 0.15 && palm.StarDensity != 0.4 {
			t.Errorf("Expected palm density 0.15 or 0.4, got %v", palm.StarDensity)
		}
		if palm.Glitter != GlitterThick && palm.Glitter != GlitterHeavy {
			t.Errorf("Expected palm glitter to be thick or heavy, got %v", palm.Glitter)
		}
	}
}

func TestChrysanthemumRules(t *testing.T) {
	r := rand.New(rand.NewPCG(10, 10))
	var single, pistils, glitter int
	const n = 4000
	for i := 0; i < n; i++ {
		s := Chrysanthemum(r, 2)
		if s.TwoColor() {
			if s.Pistil || s.SecondColor != NoColor {
				t.Fatalf("Expected two-colour shells without pistil or second colour")
			}
			if s.PairColor == s.Color {
				t.Fatalf("Expected two different colours")
			}
		} else {
			single++
			if s.Pistil {
				pistils++
			}
			if s.Color == White && s.SecondColor == NoColor {
				t.Fatalf("Expected white shells to transition to a second colour")
			}
		}
		if s.Color == White && !s.TwoColor() && s.Streamers {
			t.Fatalf("Expected no streamers on white shells")
		}
		if s.Glitter == GlitterLight {
			glitter++
			if s.StarDensity != 1.1 {
				t.Errorf("Expected glitter density 1.1, got %v", s.StarDensity)
			}
		}
	}
	if share := float64(single) / n; math.Abs(share-0.72) > 0.03 {
		t.Errorf("Expected ~72%% single colour, got %.3f", share)
	}
	if share := float64(pistils) / float64(single); math.Abs(share-0.42) > 0.04 {
		t.Errorf("Expected ~42%% pistils, got %.3f", share)
	}
	if share := float64(glitter) / n; math.Abs(share-0.25) > 0.03 {
		t.Errorf("Expected ~25%% glitter, got %.3f", share)
	}
}

func TestGlitterProfiles(t *testing.T) {
	tests := []struct {
		glitter Glitter
		quality config.Quality
		want    sparkProfile
	}{
		{GlitterLight, config.QualityNormal, sparkProfile{200, 0.3, 300, 2}},
		{GlitterMedium, config.QualityLow, sparkProfile{200, 0.44, 700, 2}},
		{GlitterHeavy, config.QualityNormal, sparkProfile{40, 0.8, 1400, 2}},
		{GlitterThick, config.QualityNormal, sparkProfile{8, 1.5, 380, 2}},
		{GlitterThick, config.QualityHigh, sparkProfile{16.0 / 3, 1.65, 380, 2}},
		{GlitterWillow, config.QualityNormal, sparkProfile{60, 0.34, 1400, 3.8}},
	}

	for _, tt := range tests {
		t.Run(tt.glitter.String(), func(t *testing.T) {
			got, ok := tt.glitter.profile(tt.quality)
			if !ok || got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}

	if _, ok := GlitterNone.profile(config.QualityNormal); ok {
		t.Errorf("Expected no profile without glitter")
	}
}

func TestPaletteColors(t *testing.T) {
	tests := []struct {
		c    Color
		r, g uint8
		b    uint8
	}{
		{Red, 0xff, 0x00, 0x43},
		{Green, 0x14, 0xfc, 0x56},
		{Gold, 0xff, 0xbf, 0x36},
		{White, 0xff, 0xff, 0xff},
	}
	for _, tt := range tests {
		got := tt.c.RGBA()
		if got.R != tt.r || got.G != tt.g || got.B != tt.b || got.A != 255 {
			t.Errorf("%v: expected #%02x%02x%02x, got %+v", tt.c, tt.r, tt.g, tt.b, got)
		}
	}
	if Invisible.RGBA().A != 0 {
		t.Errorf("Expected invisible to be transparent")
	}
}
