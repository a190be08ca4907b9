package fireworks

import (
	"math"

	"github.com/automoto/fireworks/config"
)

// expire runs the on-death effect of a star that has already left its bucket
func (ctx *Context) expire(st *Star) {
	switch st.OnDeath {
	case EffectCrossette:
		ctx.crossette(st)
	case EffectCrackle:
		ctx.crackle(st)
	case EffectFloral:
		ctx.floral(st)
	case EffectFallingLeaves:
		ctx.fallingLeaves(st)
	case EffectShellBurst:
		if sh := st.shell; sh != nil {
			sh.Burst(ctx, st.X, st.Y)
			sh.comet = nil
		}
	}
}

func (ctx *Context) crossette(st *Star) {
	r := ctx.Rand
	particleArc(r, r.Float64()*math.Pi/2, 2*math.Pi, 4, 0.5, func(angle float64) {
		ctx.Stars.Add(st.X, st.Y, st.Color, angle, r.Float64()*0.6+0.75, 600, 0, 0)
	})
}

func (ctx *Context) crackle(st *Star) {
	r := ctx.Rand
	count := 16.0
	if ctx.Options.Quality == config.QualityHigh {
		count = 32
	}
	particleArc(r, 0, 2*math.Pi, count, 1.8, func(angle float64) {
		ctx.Sparks.Add(st.X, st.Y, Gold, angle, math.Pow(r.Float64(), 0.45)*2.4, 300+r.Float64()*200)
	})
}

func (ctx *Context) floral(st *Star) {
	r := ctx.Rand
	count := 12 + 6*ctx.quality()
	sphereBurst(r, count, 0, 2*math.Pi, func(angle, speedMult float64) {
		ctx.Stars.Add(st.X, st.Y, st.Color, angle, speedMult*2.4, 1000+r.Float64()*300, st.SpeedX, st.SpeedY)
	})
	ctx.Flashes.Add(st.X, st.Y, config.Burst.EffectFlash)
}

func (ctx *Context) fallingLeaves(st *Star) {
	r := ctx.Rand
	sphereBurst(r, 7, 0, 2*math.Pi, func(angle, speedMult float64) {
		leaf := ctx.Stars.Add(st.X, st.Y, Invisible, angle, speedMult*2.4, 2400+r.Float64()*600, st.SpeedX, st.SpeedY)
		leaf.SparkColor = Gold
		leaf.SparkFreq = 144 / ctx.quality()
		leaf.SparkSpeed = 0.28
		leaf.SparkLife = 750
		leaf.SparkLifeVariation = 3.2
	})
	ctx.Flashes.Add(st.X, st.Y, config.Burst.EffectFlash)
}
