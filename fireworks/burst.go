package fireworks

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/fireworks/config"
	"go.uber.org/zap"
)

// particleArc calls fn count times at even steps along an arc, each angle
// jittered forward by up to randomness steps.
func particleArc(r *rand.Rand, start, arc, count, randomness float64, fn func(angle float64)) {
	if count <= 0 {
		return
	}
	delta := arc / count
	end := start + arc - delta*0.5
	if end > start {
		for a := start; a < end; a += delta {
			fn(a + r.Float64()*delta*randomness)
		}
		return
	}
	for a := start; a > end; a += delta {
		fn(a + r.Float64()*delta*randomness)
	}
}

// sphereBurst spreads roughly count particles over a disk as the projection
// of a sphere: concentric rings whose particle count and speed follow the
// cosine of the ring's latitude.
func sphereBurst(r *rand.Rand, count, start, arc float64, fn func(angle, speedMult float64)) {
	radius := 0.5 * math.Sqrt(count/math.Pi)
	circ := 2 * radius * math.Pi
	half := circ / 2
	for i := 0; float64(i) <= half; i++ {
		ringSize := math.Cos(float64(i) / half * math.Pi / 2)
		fullRing := circ * ringSize
		parts := fullRing * (arc / (2 * math.Pi))
		inc := 2 * math.Pi / fullRing
		offset := r.Float64()*inc + start
		jitter := inc * config.Burst.AngleJitter
		for j := 0; float64(j) < parts; j++ {
			fn(inc*float64(j)+offset+r.Float64()*jitter, ringSize)
		}
	}
}

// ringSpeedBias scales the horizontal speed of a ring star; the power curve
// keeps most samples low so the ring stays a thin tilted halo.
func ringSpeedBias(r *rand.Rand) float64 {
	floor := config.Burst.RingBiasFloor
	return math.Pow(r.Float64(), config.Burst.RingBiasExponent)*(1-floor) + floor
}

// pointAngle is the angle of (dx, dy) in the sin/cos convention of Particle.place
func pointAngle(dx, dy float64) float64 {
	return math.Pi/2 + math.Atan2(dy, dx)
}

// Launch fires the shell's comet from normalised position (0 left, 1 right)
// to normalised apex height (0 lowest, 1 highest).
func (s *Shell) Launch(ctx *Context, position, height float64) *Star {
	lc := config.Launch
	w, h := ctx.Width, ctx.Height
	minHeight := h - h*lc.MinHeightPercent

	launchX := position*(w-lc.HPad*2) + lc.HPad
	launchY := h
	burstY := minHeight - height*(minHeight-lc.VPad)
	velocity := math.Pow((launchY-burstY)*lc.VelocityScale, lc.VelocityExponent)

	speed, life := velocity, velocity*lc.CometLifeFactor
	if s.Horsetail {
		speed, life = velocity*lc.HorsetailSpeed, velocity*lc.HorsetailLife
	}

	comet := ctx.Stars.Add(launchX, launchY, s.cometColor(), math.Pi, speed, life, 0, 0)
	comet.Heavy = true
	comet.SparkFreq = 32 / ctx.quality()
	comet.SparkLife = 320
	comet.SparkLifeVariation = 3
	if s.Glitter == GlitterWillow || s.FallingLeaves {
		comet.SparkFreq = 20 / ctx.quality()
		comet.SparkSpeed = 0.5
		comet.SparkLife = 500
	}
	if s.Color == Invisible {
		comet.SparkColor = Gold
	}
	comet.OnDeath = EffectShellBurst
	comet.shell = s
	s.comet = comet
	ctx.shells++

	zap.S().Debugw("shell launched", "kind", s.Kind, "color", s.Color, "x", launchX, "apex", burstY)
	return comet
}

// Burst spawns the shell's stars, its pistil and a flash at (x, y)
func (s *Shell) Burst(ctx *Context, x, y float64) {
	s.burst(ctx, x, y, false)
}

func (s *Shell) burst(ctx *Context, x, y float64, nested bool) {
	r := ctx.Rand
	speed := s.SpreadSize / config.Burst.SpeedDivisor
	onDeath := s.onDeath()
	glitter, hasGlitter := s.Glitter.profile(ctx.Options.Quality)

	offX, offY := 0.0, -s.SpreadSize/config.Burst.DriftDivisor
	if s.Horsetail {
		offX, offY = 0, 0
		if s.comet != nil {
			offX, offY = s.comet.SpeedX, s.comet.SpeedY
		}
	}

	spawned := 0
	star := func(c Color, angle, speedMult float64) {
		if c == RandomColor {
			c = randomColor(r, false)
		}
		life := s.StarLife + r.Float64()*s.StarLife*s.StarLifeVariation
		st := ctx.Stars.Add(x, y, c, angle, speedMult*speed, life, offX, offY)
		if s.SecondColor != NoColor {
			st.TransitionTime = s.StarLife * (r.Float64()*0.05 + 0.32)
			st.SecondColor = s.SecondColor
		}
		if s.Strobe {
			st.TransitionTime = s.StarLife * (r.Float64()*0.08 + 0.46)
			st.Strobe = true
			st.StrobeFreq = r.Float64()*20 + 40
			if s.StrobeColor != NoColor {
				st.SecondColor = s.StrobeColor
			}
		}
		st.OnDeath = onDeath
		if hasGlitter {
			glitter.apply(st, s.GlitterColor, r)
		}
		spawned++
	}

	switch {
	case s.TwoColor():
		if r.Float64() < 0.5 {
			start := r.Float64() * math.Pi
			sphereBurst(r, s.StarCount, start, math.Pi, func(a, m float64) { star(s.Color, a, m) })
			sphereBurst(r, s.StarCount, start+math.Pi, math.Pi, func(a, m float64) { star(s.PairColor, a, m) })
		} else {
			sphereBurst(r, s.StarCount/2, 0, 2*math.Pi, func(a, m float64) { star(s.Color, a, m) })
			sphereBurst(r, s.StarCount/2, 0, 2*math.Pi, func(a, m float64) { star(s.PairColor, a, m) })
		}
	case s.Kind == KindRing:
		particleArc(r, 0, 2*math.Pi, s.StarCount, 0, func(angle float64) {
			initX := math.Sin(angle) * speed * ringSpeedBias(r)
			initY := math.Cos(angle) * speed
			c := s.Color
			if c == RandomColor {
				c = randomColor(r, false)
			}
			life := s.StarLife + r.Float64()*s.StarLife*s.StarLifeVariation
			st := ctx.Stars.Add(x, y, c, pointAngle(initX, initY)+r.Float64()*math.Pi, math.Hypot(initX, initY), life, 0, 0)
			if hasGlitter {
				glitter.apply(st, s.GlitterColor, r)
			}
			spawned++
		})
	default:
		sphereBurst(r, s.StarCount, 0, 2*math.Pi, func(a, m float64) { star(s.Color, a, m) })
	}

	if s.Streamers {
		spawned += s.streamers(ctx, x, y, speed)
	}

	if s.Pistil {
		pistil := newShell(KindChrysanthemum, s.Size)
		pistil.SpreadSize = s.SpreadSize * 0.5
		pistil.StarLife = s.StarLife * 0.6
		pistil.StarLifeVariation = s.StarLifeVariation
		pistil.StarDensity = 1.4
		pistil.Color = s.PistilColor
		pistil.Glitter = GlitterLight
		pistil.GlitterColor = White
		if s.PistilColor == Gold {
			pistil.GlitterColor = Gold
		}
		pistil.finish(r).burst(ctx, x, y, true)
	}

	ctx.Flashes.Add(x, y, s.SpreadSize/config.Burst.FlashDivisor)
	ctx.emit(BurstEvent{Kind: s.Kind, Ring: s.Kind == KindRing, Nested: nested, X: x, Y: y, Stars: spawned})
	zap.S().Debugw("shell burst", "kind", s.Kind, "nested", nested, "stars", spawned)
}

// streamers adds an arc of white heavy-glitter stars that outlive the main burst
func (s *Shell) streamers(ctx *Context, x, y, speed float64) int {
	r := ctx.Rand
	glitter, _ := GlitterHeavy.profile(ctx.Options.Quality)
	n := 0
	particleArc(r, 0, 2*math.Pi, config.Burst.StreamerCount, 1, func(angle float64) {
		st := ctx.Stars.Add(x, y, White, angle, speed*(r.Float64()*0.4+0.6), s.StarLife*1.1, 0, 0)
		glitter.apply(st, White, r)
		n++
	})
	return n
}
