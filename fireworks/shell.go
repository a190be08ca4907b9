package fireworks

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/fireworks/config"
)

// ShellKind tags the archetype a shell was generated from
type ShellKind uint8

const (
	KindChrysanthemum ShellKind = iota
	KindPalm
	KindRing
	KindCrossette
	KindCrackle
	KindFloral
	KindFallingLeaves
	KindHorsetail
	KindStrobe
)

var kindNames = [...]string{
	"Chrysanthemum", "Palm", "Ring", "Crossette", "Crackle",
	"Floral", "FallingLeaves", "Horsetail", "Strobe",
}

func (k ShellKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Glitter selects a spark trail profile for burst stars
type Glitter uint8

const (
	GlitterNone Glitter = iota
	GlitterLight
	GlitterMedium
	GlitterHeavy
	GlitterThick
	GlitterWillow
)

func (g Glitter) String() string {
	switch g {
	case GlitterLight:
		return "light"
	case GlitterMedium:
		return "medium"
	case GlitterHeavy:
		return "heavy"
	case GlitterThick:
		return "thick"
	case GlitterWillow:
		return "willow"
	default:
		return ""
	}
}

type sparkProfile struct {
	freq      float64
	speed     float64
	life      float64
	variation float64
}

// profile returns the spark emission of g with the frequency divided by quality
func (g Glitter) profile(q config.Quality) (sparkProfile, bool) {
	var p sparkProfile
	switch g {
	case GlitterLight:
		p = sparkProfile{freq: 400, speed: 0.3, life: 300, variation: 2}
	case GlitterMedium:
		p = sparkProfile{freq: 200, speed: 0.44, life: 700, variation: 2}
	case GlitterHeavy:
		p = sparkProfile{freq: 80, speed: 0.8, life: 1400, variation: 2}
	case GlitterThick:
		p = sparkProfile{freq: 16, speed: 1.5, life: 380, variation: 2}
		if q == config.QualityHigh {
			p.speed = 1.65
		}
	case GlitterWillow:
		p = sparkProfile{freq: 120, speed: 0.34, life: 1400, variation: 3.8}
	default:
		return p, false
	}
	p.freq /= float64(q)
	return p, true
}

func (p sparkProfile) apply(s *Star, c Color, r *rand.Rand) {
	s.SparkFreq = p.freq
	s.SparkSpeed = p.speed
	s.SparkLife = p.life
	s.SparkLifeVariation = p.variation
	s.SparkColor = c
	s.SparkTimer = r.Float64() * p.freq
}

// Effects are the optional behaviours any archetype may carry. Where more
// than one on-death effect is set, falling leaves beats floral beats crackle
// beats crossette.
type Effects struct {
	Pistil      bool
	PistilColor Color
	Streamers   bool

	Crossette     bool
	Crackle       bool
	Floral        bool
	FallingLeaves bool
	Horsetail     bool

	Strobe      bool
	StrobeColor Color

	Glitter      Glitter
	GlitterColor Color
}

func (e Effects) onDeath() Effect {
	effect := EffectNone
	if e.Crossette {
		effect = EffectCrossette
	}
	if e.Crackle {
		effect = EffectCrackle
	}
	if e.Floral {
		effect = EffectFloral
	}
	if e.FallingLeaves {
		effect = EffectFallingLeaves
	}
	return effect
}

// Shell is a firework definition: it ascends as a comet and bursts when the comet dies
type Shell struct {
	Kind ShellKind
	Size int

	// Color is the star colour, or the first colour of a two-colour shell
	Color Color
	// PairColor is the second colour of a two-colour shell, NoColor otherwise
	PairColor   Color
	SecondColor Color

	SpreadSize        float64
	StarLife          float64
	StarLifeVariation float64
	StarDensity       float64
	StarCount         float64

	Effects

	comet *Star
}

func newShell(kind ShellKind, size int) *Shell {
	return &Shell{
		Kind:        kind,
		Size:        size,
		Color:       NoColor,
		PairColor:   NoColor,
		SecondColor: NoColor,
		Effects: Effects{
			PistilColor:  NoColor,
			StrobeColor:  NoColor,
			GlitterColor: NoColor,
		},
	}
}

// finish fills the defaults left unset by a builder
func (s *Shell) finish(r *rand.Rand) *Shell {
	if s.StarLifeVariation == 0 {
		s.StarLifeVariation = 0.125
	}
	if s.Color == NoColor {
		s.Color = randomColor(r, false)
	}
	if s.GlitterColor == NoColor {
		s.GlitterColor = s.Color
		if !s.GlitterColor.Visible() {
			s.GlitterColor = White
		}
	}
	if s.StarCount == 0 {
		density := s.StarDensity
		if density == 0 {
			density = 1
		}
		scaled := s.SpreadSize / 54
		s.StarCount = math.Max(6, scaled*scaled*density)
	}
	return s
}

// TwoColor reports whether the shell splits its burst between two colours
func (s *Shell) TwoColor() bool {
	return s.PairColor != NoColor
}

// cometColor is the shell colour for single-colour shells, white otherwise
func (s *Shell) cometColor() Color {
	if s.TwoColor() || s.Color == RandomColor || s.Color == NoColor {
		return White
	}
	return s.Color
}
