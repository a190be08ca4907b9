package fireworks

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/fireworks/config"
)

// Chrysanthemum is the classic filled sphere of stars
func Chrysanthemum(r *rand.Rand, size int) *Shell {
	s := newShell(KindChrysanthemum, size)
	glitter := r.Float64() < 0.25
	single := r.Float64() < 0.72
	if single {
		s.Color = randomColor(r, true)
	} else {
		s.Color = randomColor(r, false)
		s.PairColor = randomColorExcept(r, s.Color, false)
	}
	s.Pistil = single && r.Float64() < 0.42
	if s.Pistil {
		s.PistilColor = pistilColor(r, s.Color)
	}
	if single && (r.Float64() < 0.2 || s.Color == White) {
		if s.Pistil {
			s.SecondColor = s.PistilColor
		} else {
			s.SecondColor = randomColorExcept(r, s.Color, true)
		}
	}
	s.Streamers = (s.TwoColor() || s.Color != White) && r.Float64() < 0.42

	s.SpreadSize = 300 + float64(size)*100
	s.StarLife = 900 + float64(size)*200
	s.StarDensity = 1.25
	if glitter {
		s.StarDensity = 1.1
		s.Glitter = GlitterLight
	}
	s.GlitterColor = whiteOrGold(r)
	return s.finish(r)
}

// Palm throws few, long lived stars with thick glitter trails
func Palm(r *rand.Rand, size int) *Shell {
	s := newShell(KindPalm, size)
	s.Color = randomColor(r, false)
	thick := r.Float64() < 0.5
	s.SpreadSize = 250 + float64(size)*75
	s.StarLife = 1800 + float64(size)*200
	if thick {
		s.StarDensity = 0.15
		s.Glitter = GlitterThick
	} else {
		s.StarDensity = 0.4
		s.Glitter = GlitterHeavy
	}
	return s.finish(r)
}

// Ring bursts into a thin halo, usually around a pistil
func Ring(r *rand.Rand, size int) *Shell {
	s := newShell(KindRing, size)
	s.Color = randomColor(r, false)
	s.Pistil = r.Float64() < 0.75
	s.PistilColor = pistilColor(r, s.Color)
	s.SpreadSize = 300 + float64(size)*100
	s.StarLife = 900 + float64(size)*200
	s.StarCount = 2.2 * 2 * math.Pi * float64(size+1)
	if !s.Pistil {
		s.Glitter = GlitterLight
	}
	s.GlitterColor = White
	if s.Color == Gold {
		s.GlitterColor = Gold
	}
	s.Streamers = r.Float64() < 0.3
	return s.finish(r)
}

// Crossette stars split into four when they die
func Crossette(r *rand.Rand, size int) *Shell {
	s := newShell(KindCrossette, size)
	s.Color = randomColor(r, true)
	s.SpreadSize = 300 + float64(size)*100
	s.StarLife = 750 + float64(size)*160
	s.StarLifeVariation = 0.4
	s.StarDensity = 0.85
	s.Crossette = true
	s.Pistil = r.Float64() < 0.5
	if s.Pistil {
		s.PistilColor = pistilColor(r, s.Color)
	}
	return s.finish(r)
}

// Crackle stars pop into a ring of gold sparks
func Crackle(r *rand.Rand, size int) *Shell {
	s := newShell(KindCrackle, size)
	s.Color = Gold
	if r.Float64() >= 0.75 {
		s.Color = randomColor(r, false)
	}
	s.Pistil = r.Float64() < 0.65
	s.SpreadSize = 380 + float64(size)*75
	s.StarDensity = 0.5
	if s.Pistil {
		s.StarDensity = 0.65
		s.PistilColor = pistilColor(r, s.Color)
	}
	s.StarLife = 600 + float64(size)*100
	s.StarLifeVariation = 0.32
	s.Glitter = GlitterLight
	s.GlitterColor = Gold
	s.Crackle = true
	return s.finish(r)
}

// Floral stars re-burst into small flowers
func Floral(r *rand.Rand, size int) *Shell {
	s := newShell(KindFloral, size)
	s.SpreadSize = 300 + float64(size)*120
	s.StarDensity = 0.12
	s.StarLife = 500 + float64(size)*50
	s.StarLifeVariation = 0.5
	switch {
	case r.Float64() < 0.65:
		s.Color = RandomColor
	case r.Float64() < 0.15:
		s.Color = randomColor(r, false)
	default:
		s.Color = randomColor(r, false)
		s.PairColor = randomColorExcept(r, s.Color, false)
	}
	s.Floral = true
	return s.finish(r)
}

// FallingLeaves bursts invisible carriers that drift down trailing gold sparks
func FallingLeaves(r *rand.Rand, size int) *Shell {
	s := newShell(KindFallingLeaves, size)
	s.Color = Invisible
	s.SpreadSize = 300 + float64(size)*120
	s.StarDensity = 0.12
	s.StarLife = 500 + float64(size)*50
	s.StarLifeVariation = 0.5
	s.Glitter = GlitterMedium
	s.GlitterColor = Gold
	s.FallingLeaves = true
	return s.finish(r)
}

// Horsetail shells burst early and their stars keep the comet's momentum
func Horsetail(r *rand.Rand, size int) *Shell {
	s := newShell(KindHorsetail, size)
	s.Color = randomColor(r, false)
	s.SpreadSize = 250 + float64(size)*38
	s.StarDensity = 0.9
	s.StarLife = 2500 + float64(size)*300
	s.Glitter = GlitterMedium
	if r.Float64() < 0.5 {
		s.GlitterColor = whiteOrGold(r)
	} else {
		s.GlitterColor = s.Color
	}
	s.Strobe = s.Color == White
	s.Horsetail = true
	return s.finish(r)
}

// Strobe stars blink through the second half of their life
func Strobe(r *rand.Rand, size int) *Shell {
	s := newShell(KindStrobe, size)
	s.Color = randomColor(r, true)
	s.SpreadSize = 280 + float64(size)*92
	s.StarLife = 1100 + float64(size)*200
	s.StarLifeVariation = 0.4
	s.StarDensity = 1.1
	s.Strobe = true
	if r.Float64() < 0.5 {
		s.StrobeColor = White
	}
	s.Pistil = r.Float64() < 0.5
	if s.Pistil {
		s.PistilColor = pistilColor(r, s.Color)
	}
	return s.finish(r)
}

// RandomShell picks one of the three core archetypes with equal weight
func RandomShell(r *rand.Rand, size int) *Shell {
	switch r.IntN(3) {
	case 0:
		return Chrysanthemum(r, size)
	case 1:
		return Palm(r, size)
	default:
		return Ring(r, size)
	}
}

// Build generates a shell of the requested type
func Build(r *rand.Rand, t config.ShellType, size int) *Shell {
	switch t {
	case config.ShellChrysanthemum:
		return Chrysanthemum(r, size)
	case config.ShellPalm:
		return Palm(r, size)
	case config.ShellRing:
		return Ring(r, size)
	case config.ShellCrossette:
		return Crossette(r, size)
	case config.ShellCrackle:
		return Crackle(r, size)
	case config.ShellFloral:
		return Floral(r, size)
	case config.ShellFallingLeaves:
		return FallingLeaves(r, size)
	case config.ShellHorsetail:
		return Horsetail(r, size)
	case config.ShellStrobe:
		return Strobe(r, size)
	default:
		return RandomShell(r, size)
	}
}
